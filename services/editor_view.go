package services

import "adminpanel/models"

// ModulePermission 모듈과 현재 권한
type ModulePermission struct {
	Module     models.Module     `json:"module"`
	Permission models.Permission `json:"permission"`
}

// ParentView 상위 모듈, 하위 모듈 목록과 하위 트리 상태
type ParentView struct {
	ModulePermission
	Status   SubtreeStatus      `json:"status"`
	Children []ModulePermission `json:"children"`
}

// EditorView 편집 화면 한 장에 필요한 데이터
type EditorView struct {
	SessionID    string             `json:"sessionId"`
	Role         models.Role        `json:"role"`
	Parents      []ParentView       `json:"parents"`
	Orphans      []ModulePermission `json:"orphans,omitempty"`
	ModuleCount  int                `json:"moduleCount"`
	GrantedCount int                `json:"grantedCount"`
	Dirty        bool               `json:"dirty"`
	Busy         bool               `json:"busy"`
	Revision     int64              `json:"revision"`
	LastError    string             `json:"lastError,omitempty"`
}

// View 트리 순서대로 권한과 상태를 펼친다. 상위 참조가 없는 하위 모듈은 Orphans 에 모인다.
func (s *EditorState) View() EditorView {
	tree := s.Tree()
	view := EditorView{
		SessionID:    s.SessionID,
		Role:         s.Role,
		Parents:      make([]ParentView, 0, len(tree.Parents)),
		ModuleCount:  s.Permissions.Len(),
		GrantedCount: s.Permissions.GrantedCount(),
		Dirty:        s.Dirty,
		Busy:         s.Busy,
		Revision:     s.Revision,
		LastError:    s.LastError,
	}

	for _, parent := range tree.Parents {
		children := tree.ChildrenOf(parent.ID)
		pv := ParentView{
			ModulePermission: ModulePermission{Module: parent, Permission: s.Permission(parent.ID)},
			Status:           s.Status(parent.ID),
			Children:         make([]ModulePermission, 0, len(children)),
		}
		for _, child := range children {
			pv.Children = append(pv.Children, ModulePermission{Module: child, Permission: s.Permission(child.ID)})
		}
		view.Parents = append(view.Parents, pv)
	}

	for _, orphan := range tree.ChildrenOf(0) {
		view.Orphans = append(view.Orphans, ModulePermission{Module: orphan, Permission: s.Permission(orphan.ID)})
	}
	return view
}
