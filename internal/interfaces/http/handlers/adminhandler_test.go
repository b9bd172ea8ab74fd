package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parkgate-inc/parkgate/internal/application/parking/usecases"
	"github.com/parkgate-inc/parkgate/internal/interfaces/http/handlers/testutil"
	"github.com/parkgate-inc/parkgate/internal/shared/errors"
)

type mockReassignTenantUC struct {
	result  *usecases.ReassignTenantResult
	err     error
	lastCmd usecases.ReassignTenantCommand
}

func (m *mockReassignTenantUC) Execute(ctx context.Context, cmd usecases.ReassignTenantCommand) (*usecases.ReassignTenantResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

func TestAdminHandler_ReassignTenant_Success(t *testing.T) {
	mockUC := &mockReassignTenantUC{result: &usecases.ReassignTenantResult{
		Vehicles:        12,
		ParkingSessions: 340,
		Memberships:     5,
	}}
	handler := NewAdminHandler(mockUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/tenants/reassign", ReassignTenantRequest{
		From: "biz_old123",
		To:   "biz_new456",
	})
	testutil.SetBusinessContext(c, 1, "biz_test1")

	handler.ReassignTenant(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "biz_old123", mockUC.lastCmd.FromBusinessSID)
	assert.Equal(t, "biz_new456", mockUC.lastCmd.ToBusinessSID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestAdminHandler_ReassignTenant_MissingTarget(t *testing.T) {
	handler := NewAdminHandler(&mockReassignTenantUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/tenants/reassign", map[string]string{"from": "biz_old123"})
	testutil.SetBusinessContext(c, 1, "biz_test1")

	handler.ReassignTenant(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminHandler_ReassignTenant_UnknownBusiness(t *testing.T) {
	mockUC := &mockReassignTenantUC{err: errors.NewNotFoundError("source business not found")}
	handler := NewAdminHandler(mockUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/tenants/reassign", ReassignTenantRequest{
		From: "biz_old123",
		To:   "biz_new456",
	})
	testutil.SetBusinessContext(c, 1, "biz_test1")

	handler.ReassignTenant(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
