package models

// User 사용자 정보
type User struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"nombre"`
	LastName   string `json:"apellido"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	RoleID     int64  `json:"rolId"`
	SiteID     int64  `json:"sedeId,omitempty"`
	AreaID     int64  `json:"areaId,omitempty"`
	PositionID int64  `json:"cargoId,omitempty"`
	Active     bool   `json:"activo"`
}

// FullName 표시용 이름
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// UserRequest 사용자 생성/수정 요청. 수정 시 Password가 비어 있으면 변경하지 않는다.
type UserRequest struct {
	FirstName  string `json:"nombre"`
	LastName   string `json:"apellido"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	Password   string `json:"password,omitempty"`
	RoleID     int64  `json:"rolId"`
	SiteID     int64  `json:"sedeId,omitempty"`
	AreaID     int64  `json:"areaId,omitempty"`
	PositionID int64  `json:"cargoId,omitempty"`
	Active     bool   `json:"activo"`
}
