package models

// ActivityLog 콘솔 활동 로그
type ActivityLog struct {
	ID        int64  `json:"id" db:"id"`
	Actor     string `json:"actor" db:"actor"`
	Action    string `json:"action" db:"action"`
	Details   string `json:"details" db:"details"`
	CreatedAt string `json:"created_at" db:"created_at"`
}

// 콘솔 활동 액션 상수
const (
	ActionCreateUser        = "create_user"
	ActionUpdateUser        = "update_user"
	ActionDeleteUser        = "delete_user"
	ActionCreateRole        = "create_role"
	ActionDeleteRole        = "delete_role"
	ActionSaveRole          = "save_role"
	ActionSyncPermissions   = "sync_role_permissions"
	ActionUploadFile        = "upload_file"
	ActionOpenRoleEditor    = "open_role_editor"
	ActionDiscardRoleEditor = "discard_role_editor"
	ActionPruneActivity     = "prune_activity"
)
