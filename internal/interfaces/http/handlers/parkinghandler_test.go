package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	parkingdto "github.com/parkgate-inc/parkgate/internal/application/parking/dto"
	"github.com/parkgate-inc/parkgate/internal/application/parking/usecases"
	"github.com/parkgate-inc/parkgate/internal/interfaces/http/handlers/testutil"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockOpenSessionUC struct {
	result  *parkingdto.SessionResult
	err     error
	lastCmd usecases.OpenSessionCommand
}

func (m *mockOpenSessionUC) Execute(ctx context.Context, cmd usecases.OpenSessionCommand) (*parkingdto.SessionResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockCloseSessionUC struct {
	result  *parkingdto.SessionResult
	err     error
	lastCmd usecases.CloseSessionCommand
}

func (m *mockCloseSessionUC) Execute(ctx context.Context, cmd usecases.CloseSessionCommand) (*parkingdto.SessionResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockGetOpenSessionUC struct {
	result *parkingdto.SessionResult
	err    error
}

func (m *mockGetOpenSessionUC) Execute(ctx context.Context, query usecases.GetOpenSessionQuery) (*parkingdto.SessionResult, error) {
	return m.result, m.err
}

type mockListSessionsUC struct {
	result    *usecases.ListSessionsResult
	err       error
	lastQuery usecases.ListSessionsQuery
}

func (m *mockListSessionsUC) Execute(ctx context.Context, query usecases.ListSessionsQuery) (*usecases.ListSessionsResult, error) {
	m.lastQuery = query
	return m.result, m.err
}

type mockSoftDeleteSessionUC struct {
	result  *parkingdto.SessionResult
	err     error
	lastCmd usecases.SoftDeleteSessionCommand
	called  bool
}

func (m *mockSoftDeleteSessionUC) Execute(ctx context.Context, cmd usecases.SoftDeleteSessionCommand) (*parkingdto.SessionResult, error) {
	m.called = true
	m.lastCmd = cmd
	return m.result, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

func openSessionResult() *parkingdto.SessionResult {
	return &parkingdto.SessionResult{
		SID:          "ps_abc123",
		Status:       "open",
		PlateNumber:  "ABC123",
		VehicleClass: "car",
		EntryTime:    time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC),
		Currency:     "COP",
	}
}

func newTestParkingHandler(
	openUC openSessionUseCase,
	closeUC closeSessionUseCase,
	getOpenUC getOpenSessionUseCase,
	listUC listSessionsUseCase,
	softDeleteUC softDeleteSessionUseCase,
) *ParkingHandler {
	return NewParkingHandler(openUC, closeUC, getOpenUC, listUC, softDeleteUC, testutil.NewMockLogger())
}

// =====================================================================
// TestParkingHandler_VehicleEntry
// =====================================================================

func TestParkingHandler_VehicleEntry_Success(t *testing.T) {
	mockUC := &mockOpenSessionUC{result: openSessionResult()}
	handler := newTestParkingHandler(mockUC, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/parking/entry", VehicleEntryRequest{
		PlateNumber:  "abc123",
		VehicleClass: "car",
	})
	testutil.SetBusinessContext(c, 1, "biz_test1")

	handler.VehicleEntry(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(1), mockUC.lastCmd.BusinessID)
	assert.Equal(t, "abc123", mockUC.lastCmd.PlateNumber)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestParkingHandler_VehicleEntry_MissingPlate(t *testing.T) {
	handler := newTestParkingHandler(&mockOpenSessionUC{}, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/parking/entry", map[string]string{"vehicle_class": "car"})
	testutil.SetBusinessContext(c, 1, "biz_test1")

	handler.VehicleEntry(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestParkingHandler_VehicleEntry_NoBusinessContext(t *testing.T) {
	handler := newTestParkingHandler(&mockOpenSessionUC{}, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/parking/entry", VehicleEntryRequest{PlateNumber: "ABC123"})

	handler.VehicleEntry(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestParkingHandler_VehicleEntry_Conflict(t *testing.T) {
	mockUC := &mockOpenSessionUC{err: errors.NewConflictError("vehicle is already parked")}
	handler := newTestParkingHandler(mockUC, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/parking/entry", VehicleEntryRequest{PlateNumber: "ABC123"})
	testutil.SetBusinessContext(c, 1, "biz_test1")

	handler.VehicleEntry(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// =====================================================================
// TestParkingHandler_VehicleExit
// =====================================================================

func TestParkingHandler_VehicleExit_Success(t *testing.T) {
	exit := time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC)
	method := "cash"
	result := openSessionResult()
	result.Status = "closed"
	result.ExitTime = &exit
	result.DurationMinutes = 150
	result.CostCents = 9000
	result.PaymentMethod = &method

	mockUC := &mockCloseSessionUC{result: result}
	handler := newTestParkingHandler(nil, mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/parking/exit", VehicleExitRequest{
		PlateNumber:   "ABC123",
		CostCents:     9000,
		PaymentMethod: "cash",
	})
	testutil.SetBusinessContext(c, 1, "biz_test1")

	handler.VehicleExit(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(9000), mockUC.lastCmd.CostCents)
	assert.Equal(t, "cash", mockUC.lastCmd.PaymentMethod)
}

func TestParkingHandler_VehicleExit_InvalidPaymentMethod(t *testing.T) {
	handler := newTestParkingHandler(nil, &mockCloseSessionUC{}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/parking/exit", map[string]interface{}{
		"plate":          "ABC123",
		"cost_cents":     9000,
		"payment_method": "barter",
	})
	testutil.SetBusinessContext(c, 1, "biz_test1")

	handler.VehicleExit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParkingHandler_VehicleExit_NoOpenSession(t *testing.T) {
	mockUC := &mockCloseSessionUC{err: errors.NewNotFoundError("no open session for plate")}
	handler := newTestParkingHandler(nil, mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/parking/exit", VehicleExitRequest{
		PlateNumber:   "ABC123",
		PaymentMethod: "cash",
	})
	testutil.SetBusinessContext(c, 1, "biz_test1")

	handler.VehicleExit(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// TestParkingHandler_GetOpenSession
// =====================================================================

func TestParkingHandler_GetOpenSession_Success(t *testing.T) {
	mockUC := &mockGetOpenSessionUC{result: openSessionResult()}
	handler := newTestParkingHandler(nil, nil, mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/parking/open/ABC123", nil)
	testutil.SetBusinessContext(c, 1, "biz_test1")
	testutil.SetURLParam(c, "plate", "abc123")

	handler.GetOpenSession(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestParkingHandler_GetOpenSession_NotParked(t *testing.T) {
	mockUC := &mockGetOpenSessionUC{err: errors.NewNotFoundError("no open session for plate")}
	handler := newTestParkingHandler(nil, nil, mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/parking/open/XYZ789", nil)
	testutil.SetBusinessContext(c, 1, "biz_test1")
	testutil.SetURLParam(c, "plate", "XYZ789")

	handler.GetOpenSession(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// TestParkingHandler_ListSessions
// =====================================================================

func TestParkingHandler_ListSessions_Success(t *testing.T) {
	mockUC := &mockListSessionsUC{result: &usecases.ListSessionsResult{
		Sessions: []*parkingdto.SessionResult{openSessionResult()},
		Total:    1,
	}}
	handler := newTestParkingHandler(nil, nil, nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/parking/sessions", nil)
	testutil.SetBusinessContext(c, 1, "biz_test1")
	testutil.SetQueryParams(c, map[string]string{
		"date_start": "2024-03-01",
		"date_end":   "2024-03-31",
		"page":       "2",
		"page_size":  "10",
	})

	handler.ListSessions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2024-03-01", mockUC.lastQuery.DateStart)
	assert.Equal(t, "2024-03-31", mockUC.lastQuery.DateEnd)
	assert.Equal(t, 2, mockUC.lastQuery.Page)
	assert.Equal(t, 10, mockUC.lastQuery.PageSize)
}

func TestParkingHandler_ListSessions_InvalidRange(t *testing.T) {
	mockUC := &mockListSessionsUC{err: errors.NewValidationError("date_end must not be before date_start")}
	handler := newTestParkingHandler(nil, nil, nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/parking/sessions", nil)
	testutil.SetBusinessContext(c, 1, "biz_test1")
	testutil.SetQueryParams(c, map[string]string{
		"date_start": "2024-03-31",
		"date_end":   "2024-03-01",
	})

	handler.ListSessions(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestParkingHandler_SoftDeleteSession
// =====================================================================

func TestParkingHandler_SoftDeleteSession_Success(t *testing.T) {
	deleted := openSessionResult()
	deleted.Deleted = true
	mockUC := &mockSoftDeleteSessionUC{result: deleted}
	handler := newTestParkingHandler(nil, nil, nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodDelete, "/parking/sessions/ps_abc123", nil)
	testutil.SetBusinessContext(c, 1, "biz_test1")
	testutil.SetURLParam(c, "sid", "ps_abc123")

	handler.SoftDeleteSession(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ps_abc123", mockUC.lastCmd.SID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestParkingHandler_SoftDeleteSession_WrongPrefix(t *testing.T) {
	mockUC := &mockSoftDeleteSessionUC{}
	handler := newTestParkingHandler(nil, nil, nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodDelete, "/parking/sessions/veh_abc123", nil)
	testutil.SetBusinessContext(c, 1, "biz_test1")
	testutil.SetURLParam(c, "sid", "veh_abc123")

	handler.SoftDeleteSession(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockUC.called)
}
