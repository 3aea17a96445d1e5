package services

import (
	"cmp"
	"slices"

	"adminpanel/models"
)

// ModuleTree 평면 모듈 목록에서 만든 2단계 트리. 저장하지 않고 로드할 때마다 다시 만든다.
type ModuleTree struct {
	Parents  []models.Module
	Children map[int64][]models.Module
}

// BuildModuleTree nivel 1 모듈은 상위 목록으로, 나머지는 선언된 padreId 아래로 분류한다.
// 입력 슬라이스는 변경하지 않는다. 상위 모듈 존재 여부나 순환은 검사하지 않으며,
// padreId 가 없는 하위 모듈은 키 0 아래에 모인다.
func BuildModuleTree(modules []models.Module) ModuleTree {
	tree := ModuleTree{
		Parents:  make([]models.Module, 0),
		Children: make(map[int64][]models.Module),
	}

	for _, m := range modules {
		if m.IsTopLevel() {
			tree.Parents = append(tree.Parents, m)
			continue
		}
		key := m.ParentKey()
		tree.Children[key] = append(tree.Children[key], m)
	}

	byOrder := func(a, b models.Module) int {
		return cmp.Compare(a.Order, b.Order)
	}
	slices.SortStableFunc(tree.Parents, byOrder)
	for key := range tree.Children {
		slices.SortStableFunc(tree.Children[key], byOrder)
	}
	return tree
}

// ChildrenOf 상위 모듈의 하위 목록 (없으면 nil)
func (t ModuleTree) ChildrenOf(parentID int64) []models.Module {
	return t.Children[parentID]
}

// Parent looks up a top-level module by id.
func (t ModuleTree) Parent(id int64) (models.Module, bool) {
	for _, p := range t.Parents {
		if p.ID == id {
			return p, true
		}
	}
	return models.Module{}, false
}
