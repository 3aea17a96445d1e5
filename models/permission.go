package models

// Permission field names accepted by the editor.
const (
	PermissionFieldCreate = "crear"
	PermissionFieldRead   = "leer"
	PermissionFieldUpdate = "actualizar"
	PermissionFieldDelete = "eliminar"
)

// PermissionFields lists the CRUD fields in display order.
var PermissionFields = []string{
	PermissionFieldCreate,
	PermissionFieldRead,
	PermissionFieldUpdate,
	PermissionFieldDelete,
}

// Permission 한 역할이 한 모듈에 대해 가지는 CRUD 권한
type Permission struct {
	Create bool `json:"crear"`
	Read   bool `json:"leer"`
	Update bool `json:"actualizar"`
	Delete bool `json:"eliminar"`
}

// FullPermission returns a record with every field set to enabled.
func FullPermission(enabled bool) Permission {
	return Permission{Create: enabled, Read: enabled, Update: enabled, Delete: enabled}
}

// Full reports whether all four fields are granted.
func (p Permission) Full() bool {
	return p.Create && p.Read && p.Update && p.Delete
}

// Any reports whether at least one field is granted.
func (p Permission) Any() bool {
	return p.Create || p.Read || p.Update || p.Delete
}

// WithField returns a copy with one field replaced. ok is false for unknown field names.
func (p Permission) WithField(field string, value bool) (Permission, bool) {
	switch field {
	case PermissionFieldCreate:
		p.Create = value
	case PermissionFieldRead:
		p.Read = value
	case PermissionFieldUpdate:
		p.Update = value
	case PermissionFieldDelete:
		p.Delete = value
	default:
		return p, false
	}
	return p, true
}

// IsValidPermissionField checks whether field names one of the CRUD flags
func IsValidPermissionField(field string) bool {
	_, ok := Permission{}.WithField(field, false)
	return ok
}

// PermissionRecord 백엔드가 역할별로 돌려주는 권한 레코드
type PermissionRecord struct {
	ID       int64 `json:"id,omitempty"`
	RoleID   int64 `json:"rolId"`
	ModuleID int64 `json:"moduloId"`
	Permission
}

// PermissionRequest 권한 동기화 요청 항목
type PermissionRequest struct {
	RoleID   int64 `json:"rolId"`
	ModuleID int64 `json:"moduloId"`
	Permission
}
