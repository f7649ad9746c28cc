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
	"github.com/contentpilot/console-api/internal/upstream"
)

type mockSiteAPI struct {
	sites       []models.Site
	created     *models.Site
	updated     *models.Site
	listCalls   int
	createCalls int
	updateCalls int
	lastCreate  upstream.SiteCreate
	lastUpdate  upstream.SiteUpdate
}

func (m *mockSiteAPI) ListSites(ctx context.Context, token string, q models.ListQuery) ([]models.Site, error) {
	m.listCalls++
	return m.sites, nil
}

func (m *mockSiteAPI) CreateSite(ctx context.Context, token string, req upstream.SiteCreate) (*models.Site, error) {
	m.createCalls++
	m.lastCreate = req
	return m.created, nil
}

func (m *mockSiteAPI) UpdateSite(ctx context.Context, token string, id int, req upstream.SiteUpdate) (*models.Site, error) {
	m.updateCalls++
	m.lastUpdate = req
	return m.updated, nil
}

func newSiteService(api *mockSiteAPI) *SiteService {
	return NewSiteService(api, listview.NewStore(time.Minute), nil, validator.New(), zap.NewNop())
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestSiteListPagination(t *testing.T) {
	api := &mockSiteAPI{sites: make([]models.Site, 10)}
	svc := newSiteService(api)

	_, pagination, err := svc.List(context.Background(), testSession(), models.ListQuery{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.True(t, pagination.HasNext, "a full page implies more")
	assert.True(t, pagination.HasPrev)
}

func TestSiteCreateValidation(t *testing.T) {
	api := &mockSiteAPI{}
	svc := newSiteService(api)
	ctx := context.Background()

	cases := []CreateSiteRequest{
		{WPURL: "https://blog.example.com", WPUsername: "bot", WPPassword: "pw"},
		{Name: "Blog", WPURL: "not a url", WPUsername: "bot", WPPassword: "pw"},
		{Name: "Blog", WPURL: "https://blog.example.com", WPPassword: "pw"},
		{Name: "Blog", WPURL: "https://blog.example.com", WPUsername: "bot"},
	}
	for _, req := range cases {
		_, err := svc.Create(ctx, testSession(), req)
		require.Error(t, err, "%+v", req)
	}
	assert.Equal(t, 0, api.createCalls)
}

func TestSiteCreateRelaysAndInvalidates(t *testing.T) {
	api := &mockSiteAPI{created: &models.Site{ID: 3, Name: "Blog"}}
	svc := newSiteService(api)
	ctx := context.Background()

	_, _, err := svc.List(ctx, testSession(), models.ListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)

	site, err := svc.Create(ctx, testSession(), CreateSiteRequest{
		Name:       "Blog",
		WPURL:      "https://blog.example.com",
		WPUsername: "bot",
		WPPassword: "app-password",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, site.ID)
	assert.Equal(t, "https://blog.example.com", api.lastCreate.WPURL)

	_, _, err = svc.List(ctx, testSession(), models.ListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, api.listCalls)
}

func TestSiteUpdateValidatesHourBounds(t *testing.T) {
	api := &mockSiteAPI{}
	svc := newSiteService(api)
	ctx := context.Background()

	_, err := svc.Update(ctx, testSession(), 3, UpdateSiteRequest{ActiveStartHour: intPtr(24)})
	require.Error(t, err)

	_, err = svc.Update(ctx, testSession(), 3, UpdateSiteRequest{ActiveEndHour: intPtr(-1)})
	require.Error(t, err)

	_, err = svc.Update(ctx, testSession(), 3, UpdateSiteRequest{DailyQuota: intPtr(-5)})
	require.Error(t, err)

	assert.Equal(t, 0, api.updateCalls)
}

func TestSiteUpdateRelaysPartialSettings(t *testing.T) {
	api := &mockSiteAPI{updated: &models.Site{ID: 3, IsAutoEnabled: boolPtr(true)}}
	svc := newSiteService(api)

	site, err := svc.Update(context.Background(), testSession(), 3, UpdateSiteRequest{
		IsAutoEnabled: boolPtr(true),
		DailyQuota:    intPtr(5),
	})
	require.NoError(t, err)
	require.NotNil(t, site.IsAutoEnabled)
	assert.True(t, *site.IsAutoEnabled)

	require.NotNil(t, api.lastUpdate.DailyQuota)
	assert.Equal(t, 5, *api.lastUpdate.DailyQuota)
	assert.Nil(t, api.lastUpdate.ScheduleCron, "untouched fields stay nil")
}
