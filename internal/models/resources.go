package models

import "time"

// Site is a managed WordPress site record.
type Site struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	WPURL           string  `json:"wp_url"`
	WPUsername      string  `json:"wp_username"`
	IsAutoEnabled   *bool   `json:"is_auto_enabled,omitempty"`
	ScheduleCron    *string `json:"schedule_cron,omitempty"`
	DailyQuota      *int    `json:"daily_quota,omitempty"`
	ActiveStartHour *int    `json:"active_start_hour,omitempty"`
	ActiveEndHour   *int    `json:"active_end_hour,omitempty"`
}

// Keyword is a tracked keyword attached to a site.
type Keyword struct {
	ID       int    `json:"id"`
	SiteID   int    `json:"site_id"`
	Keyword  string `json:"keyword"`
	Language string `json:"language"`
	Status   string `json:"status,omitempty"`
	Category string `json:"category,omitempty"`
}

// ContentStatus enumerates the server-owned content lifecycle.
type ContentStatus string

const (
	ContentPending   ContentStatus = "pending"
	ContentApproved  ContentStatus = "approved"
	ContentRejected  ContentStatus = "rejected"
	ContentPublished ContentStatus = "published"
)

// AllowedTransitions lists the statuses this console will offer from the
// current one. The platform API remains the final authority; anything not
// listed here is rejected locally before a round trip.
func (s ContentStatus) AllowedTransitions() []ContentStatus {
	switch s {
	case ContentPending:
		return []ContentStatus{ContentApproved, ContentRejected}
	case ContentApproved:
		return []ContentStatus{ContentPublished}
	default:
		return nil
	}
}

// CanTransitionTo reports whether the console offers a move to next.
func (s ContentStatus) CanTransitionTo(next ContentStatus) bool {
	for _, allowed := range s.AllowedTransitions() {
		if allowed == next {
			return true
		}
	}
	return false
}

// ContentItem is a queued article awaiting review or publication.
type ContentItem struct {
	ID     int           `json:"id"`
	SiteID int           `json:"site_id"`
	Title  string        `json:"title"`
	Body   string        `json:"body,omitempty"`
	Status ContentStatus `json:"status"`
}

// AuditLog is an audit trail entry owned by the platform API.
type AuditLog struct {
	ID          int        `json:"id"`
	ActorUserID int        `json:"actor_user_id"`
	Action      string     `json:"action"`
	TargetType  string     `json:"target_type"`
	TargetID    int        `json:"target_id"`
	Note        string     `json:"note,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// User is a platform account as listed for administration.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	RoleName  string `json:"role_name"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// RoleRecord describes an assignable role and its user cap (-1 = unlimited).
type RoleRecord struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	MaxUsers    int    `json:"max_users"`
	Permissions string `json:"permissions"`
}

// Admin is an entry in the admin user-id allowlist.
type Admin struct {
	UserID int `json:"user_id"`
}

// RoleApplication is a self-service request for a higher role.
type RoleApplication struct {
	ID            int    `json:"id"`
	UserEmail     string `json:"user_email"`
	RequestedRole string `json:"requested_role"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`
	AdminNotes    string `json:"admin_notes"`
	CreatedAt     string `json:"created_at"`
	ReviewedAt    string `json:"reviewed_at"`
	ReviewerEmail string `json:"reviewer_email"`
}
