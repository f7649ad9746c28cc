// Package rbac maps platform roles onto the console's capability flags.
package rbac

import "github.com/contentpilot/console-api/internal/models"

// Role is the closed set of platform roles the console understands.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleViewer  Role = "viewer"
)

// Capabilities are the boolean gates every page and menu entry checks.
// Containment holds by construction: admin ⊇ manager ⊇ viewer for every flag
// except CanManageAdmins and CanManageUsers, which are admin-only.
type Capabilities struct {
	CanManageAdmins  bool `json:"can_manage_admins"`
	CanManageSites   bool `json:"can_manage_sites"`
	CanManageContent bool `json:"can_manage_content"`
	CanViewAuditLogs bool `json:"can_view_audit_logs"`
	CanManageUsers   bool `json:"can_manage_users"`
	CanViewDashboard bool `json:"can_view_dashboard"`
}

var roleTable = map[Role]Capabilities{
	RoleAdmin: {
		CanManageAdmins:  true,
		CanManageSites:   true,
		CanManageContent: true,
		CanViewAuditLogs: true,
		CanManageUsers:   true,
		CanViewDashboard: true,
	},
	RoleManager: {
		CanManageSites:   true,
		CanManageContent: true,
		CanViewAuditLogs: true,
		CanViewDashboard: true,
	},
	RoleViewer: {
		CanViewAuditLogs: true,
		CanViewDashboard: true,
	},
}

// Evaluate returns the capability set for a role name. Unknown or empty role
// names degrade to the all-false set rather than failing: an unrecognised
// role simply has no extra permissions.
func Evaluate(roleName string) Capabilities {
	caps, ok := roleTable[Role(roleName)]
	if !ok {
		return Capabilities{}
	}
	return caps
}

// ForIdentity evaluates the identity's role, treating nil as anonymous.
func ForIdentity(identity *models.Identity) Capabilities {
	return Evaluate(identity.RoleName())
}

// CanManage reports whether actor may administer target, following the
// strict role hierarchy admin > manager > viewer.
func CanManage(actor, target string) bool {
	return rank(Role(actor)) > rank(Role(target))
}

func rank(r Role) int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleManager:
		return 2
	case RoleViewer:
		return 1
	default:
		return 0
	}
}
