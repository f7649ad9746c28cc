package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/contentpilot/console-api/internal/listview"
	"github.com/contentpilot/console-api/internal/models"
	appErrors "github.com/contentpilot/console-api/pkg/errors"
)

type mockAdminAPI struct {
	admins      []models.Admin
	added       *models.Admin
	listCalls   int
	addCalls    int
	removeCalls int
	removeErr   error
}

func (m *mockAdminAPI) ListAdmins(ctx context.Context, token string) ([]models.Admin, error) {
	m.listCalls++
	return m.admins, nil
}

func (m *mockAdminAPI) AddAdmin(ctx context.Context, token string, userID int) (*models.Admin, error) {
	m.addCalls++
	return m.added, nil
}

func (m *mockAdminAPI) RemoveAdmin(ctx context.Context, token string, userID int) error {
	m.removeCalls++
	return m.removeErr
}

func newAdminService(api *mockAdminAPI) *AdminService {
	return NewAdminService(api, listview.NewStore(time.Minute), nil, validator.New(), zap.NewNop())
}

func TestAdminAddValidation(t *testing.T) {
	api := &mockAdminAPI{}
	svc := newAdminService(api)

	_, err := svc.Add(context.Background(), testSession(), AddAdminRequest{UserID: 0})
	require.Error(t, err)
	assert.Equal(t, 0, api.addCalls)
}

func TestAdminAddInvalidatesList(t *testing.T) {
	api := &mockAdminAPI{added: &models.Admin{UserID: 5}}
	svc := newAdminService(api)
	ctx := context.Background()

	_, err := svc.List(ctx, testSession())
	require.NoError(t, err)

	admin, err := svc.Add(ctx, testSession(), AddAdminRequest{UserID: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, admin.UserID)

	_, err = svc.List(ctx, testSession())
	require.NoError(t, err)
	assert.Equal(t, 2, api.listCalls)
}

func TestAdminRemovePassesThroughUpstreamError(t *testing.T) {
	api := &mockAdminAPI{removeErr: appErrors.FromUpstream(404, "User is not an admin")}
	svc := newAdminService(api)

	err := svc.Remove(context.Background(), testSession(), 9)
	require.Error(t, err)
	assert.Equal(t, "User is not an admin", appErrors.FromError(err).Message)
}
