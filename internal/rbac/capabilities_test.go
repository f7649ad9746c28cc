package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/contentpilot/console-api/internal/models"
)

func TestEvaluateAdmin(t *testing.T) {
	caps := Evaluate("admin")

	assert.True(t, caps.CanManageAdmins)
	assert.True(t, caps.CanManageSites)
	assert.True(t, caps.CanManageContent)
	assert.True(t, caps.CanViewAuditLogs)
	assert.True(t, caps.CanManageUsers)
	assert.True(t, caps.CanViewDashboard)
}

func TestEvaluateManager(t *testing.T) {
	caps := Evaluate("manager")

	assert.False(t, caps.CanManageAdmins)
	assert.True(t, caps.CanManageSites)
	assert.True(t, caps.CanManageContent)
	assert.True(t, caps.CanViewAuditLogs)
	assert.False(t, caps.CanManageUsers)
	assert.True(t, caps.CanViewDashboard)
}

func TestEvaluateViewer(t *testing.T) {
	caps := Evaluate("viewer")

	assert.False(t, caps.CanManageAdmins)
	assert.False(t, caps.CanManageSites)
	assert.False(t, caps.CanManageContent)
	assert.True(t, caps.CanViewAuditLogs)
	assert.False(t, caps.CanManageUsers)
	assert.True(t, caps.CanViewDashboard)
}

func TestEvaluateUnknownRoleHasNoCapabilities(t *testing.T) {
	for _, role := range []string{"", "superuser", "ADMIN", "editor"} {
		assert.Equal(t, Capabilities{}, Evaluate(role), "role %q", role)
	}
}

func TestForIdentityNilIsAnonymous(t *testing.T) {
	assert.Equal(t, Capabilities{}, ForIdentity(nil))
}

func TestForIdentityUsesRoleName(t *testing.T) {
	identity := &models.Identity{Role: &models.RoleRef{Name: "manager"}}
	assert.Equal(t, Evaluate("manager"), ForIdentity(identity))
}

func TestCanManageFollowsHierarchy(t *testing.T) {
	assert.True(t, CanManage("admin", "manager"))
	assert.True(t, CanManage("admin", "viewer"))
	assert.True(t, CanManage("manager", "viewer"))

	assert.False(t, CanManage("manager", "admin"))
	assert.False(t, CanManage("viewer", "viewer"))
	assert.False(t, CanManage("admin", "admin"))
	assert.False(t, CanManage("", "viewer"))
	assert.True(t, CanManage("viewer", "unknown"))
}
