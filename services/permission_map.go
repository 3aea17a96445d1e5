package services

import (
	"encoding/json"
	"sort"

	"adminpanel/models"
)

// PermissionMap 모듈 ID → 권한 레코드. 값을 바꾸는 모든 연산은 새 맵을 돌려주며
// 기존 스냅샷은 그대로 남는다.
type PermissionMap struct {
	entries map[int64]models.Permission
}

// NewPermissionMap 모든 모듈에 대해 기본값(전부 false) 레코드를 만든 뒤
// 백엔드가 가진 권한을 덮어쓴다. 목록에 없는 모듈의 레코드는 무시한다.
func NewPermissionMap(modules []models.Module, existing []models.PermissionRecord) PermissionMap {
	entries := make(map[int64]models.Permission, len(modules))
	for _, m := range modules {
		entries[m.ID] = models.Permission{}
	}
	for _, rec := range existing {
		if _, ok := entries[rec.ModuleID]; !ok {
			continue
		}
		entries[rec.ModuleID] = rec.Permission
	}
	return PermissionMap{entries: entries}
}

// Get 저장된 레코드를 돌려준다. 없으면 전부 false 인 레코드를 만들어 돌려주며 맵은 변경하지 않는다.
func (m PermissionMap) Get(moduleID int64) models.Permission {
	return m.entries[moduleID]
}

// Has reports whether a record is stored for moduleID.
func (m PermissionMap) Has(moduleID int64) bool {
	_, ok := m.entries[moduleID]
	return ok
}

// With returns a copy holding perm for moduleID.
func (m PermissionMap) With(moduleID int64, perm models.Permission) PermissionMap {
	return m.WithMany(map[int64]models.Permission{moduleID: perm})
}

// WithMany returns a copy with every given record replaced in one step.
func (m PermissionMap) WithMany(updates map[int64]models.Permission) PermissionMap {
	next := make(map[int64]models.Permission, len(m.entries)+len(updates))
	for id, p := range m.entries {
		next[id] = p
	}
	for id, p := range updates {
		next[id] = p
	}
	return PermissionMap{entries: next}
}

// Len number of stored records
func (m PermissionMap) Len() int {
	return len(m.entries)
}

// GrantedCount 하나 이상의 권한이 켜진 레코드 수
func (m PermissionMap) GrantedCount() int {
	n := 0
	for _, p := range m.entries {
		if p.Any() {
			n++
		}
	}
	return n
}

// Records 동기화 요청용 레코드 목록 (모듈 ID 오름차순)
func (m PermissionMap) Records(roleID int64) []models.PermissionRequest {
	ids := m.moduleIDs()
	records := make([]models.PermissionRequest, 0, len(ids))
	for _, id := range ids {
		records = append(records, models.PermissionRequest{
			RoleID:     roleID,
			ModuleID:   id,
			Permission: m.entries[id],
		})
	}
	return records
}

func (m PermissionMap) moduleIDs() []int64 {
	ids := make([]int64, 0, len(m.entries))
	for id := range m.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type permissionEntry struct {
	ModuleID int64 `json:"moduloId"`
	models.Permission
}

// MarshalJSON encodes the map as a list ordered by module id.
func (m PermissionMap) MarshalJSON() ([]byte, error) {
	list := make([]permissionEntry, 0, len(m.entries))
	for _, id := range m.moduleIDs() {
		list = append(list, permissionEntry{ModuleID: id, Permission: m.entries[id]})
	}
	return json.Marshal(list)
}

// UnmarshalJSON decodes the list form written by MarshalJSON.
func (m *PermissionMap) UnmarshalJSON(data []byte) error {
	var list []permissionEntry
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	entries := make(map[int64]models.Permission, len(list))
	for _, e := range list {
		entries[e.ModuleID] = e.Permission
	}
	m.entries = entries
	return nil
}
