package upstream

import (
	"context"
	"fmt"

	"github.com/contentpilot/console-api/internal/models"
)

// ListSites fetches a page of site records.
func (c *Client) ListSites(ctx context.Context, token string, q models.ListQuery) ([]models.Site, error) {
	var sites []models.Site
	if err := c.get(ctx, "/api/sites/", token, q.Values(), &sites); err != nil {
		return nil, err
	}
	return sites, nil
}

// SiteCreate is the payload for registering a WordPress site.
type SiteCreate struct {
	Name       string `json:"name"`
	WPURL      string `json:"wp_url"`
	WPUsername string `json:"wp_username"`
	WPPassword string `json:"wp_password_enc"`
}

func (c *Client) CreateSite(ctx context.Context, token string, req SiteCreate) (*models.Site, error) {
	var site models.Site
	if err := c.post(ctx, "/api/sites/", token, req, &site); err != nil {
		return nil, err
	}
	return &site, nil
}

// SiteUpdate carries the auto-publish settings; nil fields are left untouched.
type SiteUpdate struct {
	IsAutoEnabled   *bool   `json:"is_auto_enabled,omitempty"`
	ScheduleCron    *string `json:"schedule_cron,omitempty"`
	DailyQuota      *int    `json:"daily_quota,omitempty"`
	ActiveStartHour *int    `json:"active_start_hour,omitempty"`
	ActiveEndHour   *int    `json:"active_end_hour,omitempty"`
}

func (c *Client) UpdateSite(ctx context.Context, token string, id int, req SiteUpdate) (*models.Site, error) {
	var site models.Site
	if err := c.patch(ctx, fmt.Sprintf("/api/sites/%d", id), token, req, &site); err != nil {
		return nil, err
	}
	return &site, nil
}

// ListKeywords fetches a page of tracked keywords.
func (c *Client) ListKeywords(ctx context.Context, token string, q models.ListQuery) ([]models.Keyword, error) {
	var keywords []models.Keyword
	if err := c.get(ctx, "/api/keywords/", token, q.Values(), &keywords); err != nil {
		return nil, err
	}
	return keywords, nil
}

// KeywordCreate is the payload for tracking a new keyword.
type KeywordCreate struct {
	SiteID   int    `json:"site_id"`
	Keyword  string `json:"keyword"`
	Language string `json:"language"`
}

func (c *Client) CreateKeyword(ctx context.Context, token string, req KeywordCreate) (*models.Keyword, error) {
	var keyword models.Keyword
	if err := c.post(ctx, "/api/keywords/", token, req, &keyword); err != nil {
		return nil, err
	}
	return &keyword, nil
}

// KeywordUpdate mutates keyword fields; nil fields are left untouched.
type KeywordUpdate struct {
	Keyword  *string `json:"keyword,omitempty"`
	Language *string `json:"language,omitempty"`
	Status   *string `json:"status,omitempty"`
	Category *string `json:"category,omitempty"`
}

func (c *Client) UpdateKeyword(ctx context.Context, token string, id int, req KeywordUpdate) (*models.Keyword, error) {
	var keyword models.Keyword
	if err := c.patch(ctx, fmt.Sprintf("/api/keywords/%d", id), token, req, &keyword); err != nil {
		return nil, err
	}
	return &keyword, nil
}

func (c *Client) DeleteKeyword(ctx context.Context, token string, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/keywords/%d", id), token)
}

// ListContent fetches a page of queued content items.
func (c *Client) ListContent(ctx context.Context, token string, q models.ListQuery) ([]models.ContentItem, error) {
	var items []models.ContentItem
	if err := c.get(ctx, "/api/content-queue/", token, q.Values(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetContent fetches a single queued item.
func (c *Client) GetContent(ctx context.Context, token string, id int) (*models.ContentItem, error) {
	var item models.ContentItem
	if err := c.get(ctx, fmt.Sprintf("/api/content-queue/%d", id), token, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// SetContentStatus relays a status change; the platform API enforces its own
// transition rules on top of the console's.
func (c *Client) SetContentStatus(ctx context.Context, token string, id int, status models.ContentStatus) (*models.ContentItem, error) {
	payload := map[string]string{"status": string(status)}
	var item models.ContentItem
	if err := c.patch(ctx, fmt.Sprintf("/api/content-queue/%d/status", id), token, payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListAuditLogs fetches audit entries. The filter keys (action, start, end,
// limit) travel inside the query's filter map.
func (c *Client) ListAuditLogs(ctx context.Context, token string, q models.ListQuery) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	if err := c.get(ctx, "/api/audit-logs/", token, q.Values(), &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// ListUsers fetches a page of platform accounts.
func (c *Client) ListUsers(ctx context.Context, token string, q models.ListQuery) ([]models.User, error) {
	var users []models.User
	if err := c.get(ctx, "/api/users", token, q.Values(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListRoles fetches assignable roles.
func (c *Client) ListRoles(ctx context.Context, token string) ([]models.RoleRecord, error) {
	var roles []models.RoleRecord
	if err := c.get(ctx, "/api/users/roles", token, nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// AssignRole moves a user onto the named role.
func (c *Client) AssignRole(ctx context.Context, token string, userID int, roleName string) error {
	payload := map[string]interface{}{"user_id": userID, "role_name": roleName}
	return c.post(ctx, "/api/users/assign-role", token, payload, nil)
}

// ToggleUserActive flips a user's active flag.
func (c *Client) ToggleUserActive(ctx context.Context, token string, userID int) error {
	return c.patch(ctx, fmt.Sprintf("/api/users/%d/toggle-active", userID), token, nil, nil)
}

// ListAdmins fetches the admin user-id allowlist.
func (c *Client) ListAdmins(ctx context.Context, token string) ([]models.Admin, error) {
	var admins []models.Admin
	if err := c.get(ctx, "/api/admins", token, nil, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (c *Client) AddAdmin(ctx context.Context, token string, userID int) (*models.Admin, error) {
	var admin models.Admin
	if err := c.post(ctx, "/api/admins", token, map[string]int{"user_id": userID}, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (c *Client) RemoveAdmin(ctx context.Context, token string, userID int) error {
	return c.delete(ctx, fmt.Sprintf("/api/admins/%d", userID), token)
}

// ListRoleApplications fetches all applications (admin view).
func (c *Client) ListRoleApplications(ctx context.Context, token string) ([]models.RoleApplication, error) {
	var apps []models.RoleApplication
	if err := c.get(ctx, "/api/role-applications/", token, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// ListMyRoleApplications fetches the caller's own applications.
func (c *Client) ListMyRoleApplications(ctx context.Context, token string) ([]models.RoleApplication, error) {
	var apps []models.RoleApplication
	if err := c.get(ctx, "/api/role-applications/my-applications", token, nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// RoleApplicationCreate is the payload for requesting a higher role.
type RoleApplicationCreate struct {
	RequestedRole string `json:"requested_role"`
	Reason        string `json:"reason"`
}

func (c *Client) CreateRoleApplication(ctx context.Context, token string, req RoleApplicationCreate) (*models.RoleApplication, error) {
	var app models.RoleApplication
	if err := c.post(ctx, "/api/role-applications/", token, req, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// RoleApplicationReview is the admin decision payload.
type RoleApplicationReview struct {
	Status     string `json:"status"`
	AdminNotes string `json:"admin_notes"`
}

func (c *Client) ReviewRoleApplication(ctx context.Context, token string, id int, req RoleApplicationReview) (*models.RoleApplication, error) {
	var app models.RoleApplication
	if err := c.post(ctx, fmt.Sprintf("/api/role-applications/%d/review", id), token, req, &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (c *Client) DeleteRoleApplication(ctx context.Context, token string, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/role-applications/%d", id), token)
}
