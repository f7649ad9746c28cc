// Package nav composes the dashboard navigation menu from capability flags.
package nav

import "github.com/contentpilot/console-api/internal/rbac"

// Entry is a single navigation item. Require selects the capability gating
// the entry; nil means the entry is public.
type Entry struct {
	Route string `json:"route"`
	Label string `json:"label"`
	Icon  string `json:"icon"`

	require func(rbac.Capabilities) bool
}

// menu is the static declared ordering. It is shared across requests and is
// never mutated; Compose copies matching entries out.
var menu = []Entry{
	{Route: "/", Label: "Dashboard", Icon: "home"},
	{Route: "/sites", Label: "Sites", Icon: "globe", require: func(c rbac.Capabilities) bool { return c.CanManageSites }},
	{Route: "/keywords", Label: "Keywords", Icon: "search", require: func(c rbac.Capabilities) bool { return c.CanManageSites }},
	{Route: "/content-queue", Label: "Content Queue", Icon: "file-text", require: func(c rbac.Capabilities) bool { return c.CanManageContent }},
	{Route: "/users", Label: "Users", Icon: "users", require: func(c rbac.Capabilities) bool { return c.CanManageUsers }},
	{Route: "/role-applications", Label: "Role Applications", Icon: "user-plus", require: func(c rbac.Capabilities) bool { return c.CanManageUsers }},
	{Route: "/admins", Label: "Admins", Icon: "shield", require: func(c rbac.Capabilities) bool { return c.CanManageAdmins }},
	{Route: "/audit-logs", Label: "Audit Logs", Icon: "activity", require: func(c rbac.Capabilities) bool { return c.CanViewAuditLogs }},
}

// Compose returns the menu entries visible for the capability set, in
// declared order. The result is a fresh slice on every call.
func Compose(caps rbac.Capabilities) []Entry {
	visible := make([]Entry, 0, len(menu))
	for _, entry := range menu {
		if entry.require == nil || entry.require(caps) {
			visible = append(visible, entry)
		}
	}
	return visible
}
