package models

// Module 권한이 적용되는 화면 단위 (nivel 1 = 최상위, 그 외는 하위 모듈)
type Module struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Route       string `json:"ruta"`
	Icon        string `json:"icono"`
	Level       int    `json:"nivel"`
	ParentID    *int64 `json:"padreId"`
	Order       int    `json:"orden"`
	Active      bool   `json:"activo"`
}

// IsTopLevel 최상위 모듈 여부
func (m Module) IsTopLevel() bool {
	return m.Level == 1
}

// ParentKey 상위 모듈 ID. 상위 참조가 없으면 0을 돌려준다.
func (m Module) ParentKey() int64 {
	if m.ParentID == nil {
		return 0
	}
	return *m.ParentID
}
