package auth

import "reviewdeck_backend/internal/models"

// Actions guarded by the permission policy.
const (
	ActionWidgetsRead    = "widgets:read"
	ActionWidgetsWrite   = "widgets:write"
	ActionWidgetsPublish = "widgets:publish"
	ActionOverridesWrite = "overrides:write"
	ActionSummaryRefresh = "summary:refresh"
)

// permissions is the explicit permission-policy table. Role checks go
// through Can rather than inline role comparisons in handlers.
var permissions = map[models.UserRole][]string{
	models.UserRoleAdmin: {
		ActionWidgetsRead,
		ActionWidgetsWrite,
		ActionWidgetsPublish,
		ActionOverridesWrite,
		ActionSummaryRefresh,
	},
	models.UserRoleModerator: {
		ActionWidgetsRead,
		ActionOverridesWrite,
	},
	models.UserRoleViewer: {
		ActionWidgetsRead,
	},
}

// Can reports whether a role is allowed to perform an action.
func Can(role models.UserRole, action string) bool {
	for _, a := range permissions[role] {
		if a == action {
			return true
		}
	}
	return false
}
