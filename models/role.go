package models

// Role 역할 정보
type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Active      bool   `json:"activo"`
}

// RoleRequest 역할 생성/수정 요청
type RoleRequest struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Active      bool   `json:"activo"`
}
