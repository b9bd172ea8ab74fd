package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	financialdto "github.com/parkgate-inc/parkgate/internal/application/financial/dto"
	"github.com/parkgate-inc/parkgate/internal/application/financial/usecases"
	"github.com/parkgate-inc/parkgate/internal/interfaces/http/handlers/testutil"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
)

type mockGetResumeByDateUC struct {
	result    *financialdto.ResumeResult
	err       error
	lastQuery usecases.GetResumeByDateQuery
}

func (m *mockGetResumeByDateUC) Execute(ctx context.Context, query usecases.GetResumeByDateQuery) (*financialdto.ResumeResult, error) {
	m.lastQuery = query
	return m.result, m.err
}

type mockGetResumeByRangeUC struct {
	result    *financialdto.ResumeResult
	err       error
	lastQuery usecases.GetResumeByRangeQuery
}

func (m *mockGetResumeByRangeUC) Execute(ctx context.Context, query usecases.GetResumeByRangeQuery) (*financialdto.ResumeResult, error) {
	m.lastQuery = query
	return m.result, m.err
}

func testResumeResult() *financialdto.ResumeResult {
	return &financialdto.ResumeResult{
		DateStart:         "2024-03-10",
		DateEnd:           "2024-03-10",
		TotalCents:        12000,
		SessionCount:      2,
		AverageCents:      6000,
		TotalRevenueCents: 162000,
		Currency:          "COP",
		Memberships: financialdto.MembershipSales{
			Total: 1, Cars: 1, TotalCents: 150000, AverageCents: 150000,
		},
	}
}

func TestFinancialHandler_GetResumeByDate_Success(t *testing.T) {
	mockUC := &mockGetResumeByDateUC{result: testResumeResult()}
	handler := NewFinancialHandler(mockUC, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/financial/resume/date/2024-03-10", nil)
	testutil.SetBusinessContext(c, 1, "biz_test1")
	testutil.SetURLParam(c, "date", "2024-03-10")

	handler.GetResumeByDate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(1), mockUC.lastQuery.BusinessID)
	assert.Equal(t, "2024-03-10", mockUC.lastQuery.Date)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestFinancialHandler_GetResumeByDate_MalformedDate(t *testing.T) {
	mockUC := &mockGetResumeByDateUC{err: errors.NewValidationError("date must use the YYYY-MM-DD layout")}
	handler := NewFinancialHandler(mockUC, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/financial/resume/date/10-03-2024", nil)
	testutil.SetBusinessContext(c, 1, "biz_test1")
	testutil.SetURLParam(c, "date", "10-03-2024")

	handler.GetResumeByDate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFinancialHandler_GetResumeByDate_NoBusinessContext(t *testing.T) {
	handler := NewFinancialHandler(&mockGetResumeByDateUC{}, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/financial/resume/date/2024-03-10", nil)
	testutil.SetURLParam(c, "date", "2024-03-10")

	handler.GetResumeByDate(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFinancialHandler_GetResumeByRange_Success(t *testing.T) {
	result := testResumeResult()
	result.DateStart = "2024-03-01"
	result.DateEnd = "2024-03-31"
	mockUC := &mockGetResumeByRangeUC{result: result}
	handler := NewFinancialHandler(nil, mockUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/financial/resume/range", nil)
	testutil.SetBusinessContext(c, 1, "biz_test1")
	testutil.SetQueryParams(c, map[string]string{
		"date_start": "2024-03-01",
		"date_end":   "2024-03-31",
	})

	handler.GetResumeByRange(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2024-03-01", mockUC.lastQuery.DateStart)
	assert.Equal(t, "2024-03-31", mockUC.lastQuery.DateEnd)
}

func TestFinancialHandler_GetResumeByRange_InvertedRange(t *testing.T) {
	mockUC := &mockGetResumeByRangeUC{err: errors.NewValidationError("date_end must not be before date_start")}
	handler := NewFinancialHandler(nil, mockUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/financial/resume/range", nil)
	testutil.SetBusinessContext(c, 1, "biz_test1")
	testutil.SetQueryParams(c, map[string]string{
		"date_start": "2024-03-31",
		"date_end":   "2024-03-01",
	})

	handler.GetResumeByRange(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
