package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"adminpanel/logger"
	"adminpanel/models"
)

// RoleAPI는 역할 편집기가 사용하는 역할 리소스 호출입니다.
type RoleAPI interface {
	Get(ctx context.Context, id int64) (models.Role, error)
	Update(ctx context.Context, id int64, req models.RoleRequest) (models.Role, error)
}

// ModuleAPI는 전체 모듈 목록을 가져옵니다.
type ModuleAPI interface {
	GetAll(ctx context.Context) ([]models.Module, error)
}

// PermissionAPI는 역할별 권한 조회와 일괄 동기화를 담당합니다.
type PermissionAPI interface {
	GetByRole(ctx context.Context, roleID int64) ([]models.PermissionRecord, error)
	SyncRolePermissions(ctx context.Context, roleID int64, records []models.PermissionRequest) error
}

// SubtreeStatus 상위 모듈과 하위 모듈들의 권한 설정 상태
type SubtreeStatus struct {
	ParentFullyGranted            bool `json:"parentFullyGranted"`
	AllChildrenFullyGranted       bool `json:"allChildrenFullyGranted"`
	FullyConfigured               bool `json:"fullyConfigured"`
	ChildCount                    int  `json:"childCount"`
	PartiallyConfiguredChildCount int  `json:"partiallyConfiguredChildCount"`
}

// EditorState 한 역할에 대한 권한 편집 세션
type EditorState struct {
	SessionID   string          `json:"sessionId"`
	Role        models.Role     `json:"role"`
	Modules     []models.Module `json:"modules"`
	Permissions PermissionMap   `json:"permissions"`
	Dirty       bool            `json:"dirty"`
	Revision    int64           `json:"revision"`
	Busy        bool            `json:"busy"`
	LastError   string          `json:"lastError,omitempty"`
	LoadedAt    time.Time       `json:"loadedAt"`

	tree *ModuleTree
}

func (s *EditorState) load(role models.Role, modules []models.Module, records []models.PermissionRecord, now time.Time) {
	s.Role = role
	s.Modules = append([]models.Module(nil), modules...)
	s.Permissions = NewPermissionMap(s.Modules, records)
	s.Dirty = false
	s.LastError = ""
	s.LoadedAt = now
	tree := BuildModuleTree(s.Modules)
	s.tree = &tree
}

func (s *EditorState) clone() *EditorState {
	c := *s
	c.Modules = append([]models.Module(nil), s.Modules...)
	return &c
}

// Tree 모듈 트리. 세션이 복원된 경우 처음 호출할 때 다시 만든다.
func (s *EditorState) Tree() ModuleTree {
	if s.tree == nil {
		tree := BuildModuleTree(s.Modules)
		s.tree = &tree
	}
	return *s.tree
}

// HasModule reports whether moduleID belongs to the loaded module list.
func (s *EditorState) HasModule(moduleID int64) bool {
	return s.Permissions.Has(moduleID)
}

// Permission 모듈 권한 조회 (없으면 전부 false)
func (s *EditorState) Permission(moduleID int64) models.Permission {
	return s.Permissions.Get(moduleID)
}

// Update 권한 필드 하나를 바꾼다.
func (s *EditorState) Update(moduleID int64, field string, value bool) error {
	next, ok := s.Permissions.Get(moduleID).WithField(field, value)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	s.Permissions = s.Permissions.With(moduleID, next)
	s.touch()
	return nil
}

// SetAll 모듈의 네 권한을 모두 enabled 로 설정한다.
func (s *EditorState) SetAll(moduleID int64, enabled bool) {
	s.Permissions = s.Permissions.With(moduleID, models.FullPermission(enabled))
	s.touch()
}

// SetAllForSubtree 상위 모듈과 모든 하위 모듈에 SetAll 을 한 번의 교체로 적용한다.
func (s *EditorState) SetAllForSubtree(parentID int64, enabled bool) {
	perm := models.FullPermission(enabled)
	updates := map[int64]models.Permission{parentID: perm}
	for _, child := range s.Tree().ChildrenOf(parentID) {
		updates[child.ID] = perm
	}
	s.Permissions = s.Permissions.WithMany(updates)
	s.touch()
}

// Status 하위 트리 설정 상태.
// FullyConfigured 는 네 권한이 모두 켜진 경우(Full)만, 부분 설정 카운트는 하나라도 켜진 경우(Any)를 센다.
func (s *EditorState) Status(parentID int64) SubtreeStatus {
	children := s.Tree().ChildrenOf(parentID)

	status := SubtreeStatus{
		ParentFullyGranted:      s.Permissions.Get(parentID).Full(),
		AllChildrenFullyGranted: true,
		ChildCount:              len(children),
	}
	for _, child := range children {
		perm := s.Permissions.Get(child.ID)
		if !perm.Full() {
			status.AllChildrenFullyGranted = false
		}
		if perm.Any() {
			status.PartiallyConfiguredChildCount++
		}
	}
	status.FullyConfigured = status.ParentFullyGranted && status.AllChildrenFullyGranted
	return status
}

// SetRoleFields 역할 기본 정보 수정. 권한 변경 여부(Dirty)와는 별개다.
func (s *EditorState) SetRoleFields(name, description string, active bool) {
	s.Role.Name = name
	s.Role.Description = description
	s.Role.Active = active
}

func (s *EditorState) touch() {
	s.Dirty = true
	s.Revision++
}

func (s *EditorState) validate() error {
	return validateRoleName(s.Role.Name)
}

// RoleEditorService 역할 권한 편집 세션을 관리한다.
type RoleEditorService struct {
	roles       RoleAPI
	modules     ModuleAPI
	permissions PermissionAPI
	store       EditorStore
	activity    ActivityRecorder
	ttl         time.Duration
	now         func() time.Time
}

// NewRoleEditorService 편집 서비스 생성
func NewRoleEditorService(roles RoleAPI, modules ModuleAPI, permissions PermissionAPI, store EditorStore, activity ActivityRecorder, ttl time.Duration) *RoleEditorService {
	if activity == nil {
		activity = NoopActivityRecorder{}
	}
	return &RoleEditorService{
		roles:       roles,
		modules:     modules,
		permissions: permissions,
		store:       store,
		activity:    activity,
		ttl:         ttl,
		now:         time.Now,
	}
}

// fetch 역할, 모듈, 권한 목록을 병렬로 가져온다. 하나라도 실패하면 전체가 실패한다.
func (s *RoleEditorService) fetch(ctx context.Context, roleID int64) (models.Role, []models.Module, []models.PermissionRecord, error) {
	var (
		role    models.Role
		modules []models.Module
		records []models.PermissionRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.roles.Get(gctx, roleID)
		if err != nil {
			return fmt.Errorf("load role %d: %w", roleID, err)
		}
		role = r
		return nil
	})
	g.Go(func() error {
		m, err := s.modules.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("load modules: %w", err)
		}
		modules = m
		return nil
	})
	g.Go(func() error {
		p, err := s.permissions.GetByRole(gctx, roleID)
		if err != nil {
			return fmt.Errorf("load permissions for role %d: %w", roleID, err)
		}
		records = p
		return nil
	})

	if err := g.Wait(); err != nil {
		return models.Role{}, nil, nil, err
	}
	return role, modules, records, nil
}

// Open 역할 편집 세션을 새로 연다.
func (s *RoleEditorService) Open(ctx context.Context, roleID int64) (*EditorState, error) {
	role, modules, records, err := s.fetch(ctx, roleID)
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"role_id": roleID,
			"error":   err.Error(),
		}).Warn("Failed to open role editor")
		return nil, err
	}

	state := &EditorState{SessionID: uuid.NewString()}
	state.load(role, modules, records, s.now())

	if err := s.store.Put(ctx, state, s.ttl); err != nil {
		return nil, fmt.Errorf("store editor session: %w", err)
	}

	logger.WithFields(map[string]interface{}{
		"session_id": state.SessionID,
		"role_id":    roleID,
		"modules":    len(modules),
		"granted":    state.Permissions.GrantedCount(),
	}).Debug("Role editor opened")
	return state, nil
}

// Get 세션 조회
func (s *RoleEditorService) Get(ctx context.Context, sessionID string) (*EditorState, error) {
	return s.store.Get(ctx, sessionID)
}

// Apply 세션 상태를 저장소의 원자적 갱신으로 수정한다. fn 이 에러를 돌려주면 저장하지 않는다.
// 충돌 시 저장소가 fn 을 최신 상태로 다시 호출할 수 있다.
func (s *RoleEditorService) Apply(ctx context.Context, sessionID string, fn func(*EditorState) error) (*EditorState, error) {
	return s.store.Update(ctx, sessionID, s.ttl, fn)
}

// Reload 모듈과 권한을 다시 불러와 트리와 맵을 교체한다. 저장하지 않은 변경은 버려진다.
func (s *RoleEditorService) Reload(ctx context.Context, sessionID string) (*EditorState, error) {
	current, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if current.Busy {
		return nil, ErrBusy
	}

	role, modules, records, fetchErr := s.fetch(ctx, current.Role.ID)
	if fetchErr != nil {
		_, _ = s.Apply(context.WithoutCancel(ctx), sessionID, func(st *EditorState) error {
			st.LastError = UserMessage(fetchErr)
			return nil
		})
		return nil, fetchErr
	}

	return s.Apply(ctx, sessionID, func(st *EditorState) error {
		if st.Busy {
			return ErrBusy
		}
		st.load(role, modules, records, s.now())
		return nil
	})
}

// Save 커밋: (a) 역할 기본 정보 수정, (b) 권한이 바뀐 경우에만 전체 권한 동기화.
// (a) 가 실패하면 (b) 는 호출하지 않는다. 실패하면 변경 내용과 Dirty 는 그대로 남는다.
func (s *RoleEditorService) Save(ctx context.Context, sessionID, actor string) (*EditorState, error) {
	var snapshot *EditorState
	_, err := s.Apply(ctx, sessionID, func(st *EditorState) error {
		if st.Busy {
			return ErrBusy
		}
		if err := st.validate(); err != nil {
			return err
		}
		st.Busy = true
		snapshot = st.clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	saveErr := s.commit(ctx, snapshot)

	// 요청이 끊겨도 Busy 는 반드시 해제한다.
	final, err := s.Apply(context.WithoutCancel(ctx), sessionID, func(st *EditorState) error {
		st.Busy = false
		if saveErr != nil {
			st.LastError = UserMessage(saveErr)
			return nil
		}
		st.LastError = ""
		// Edits made while the save was in flight stay dirty.
		if st.Revision == snapshot.Revision {
			st.Dirty = false
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if saveErr != nil {
		logger.WithFields(map[string]interface{}{
			"session_id": sessionID,
			"role_id":    snapshot.Role.ID,
			"error":      saveErr.Error(),
		}).Warn("Role save failed")
		return final, saveErr
	}

	details := fmt.Sprintf("role=%d name=%s", snapshot.Role.ID, snapshot.Role.Name)
	if snapshot.Dirty {
		details += fmt.Sprintf(" modules=%d granted=%d", snapshot.Permissions.Len(), snapshot.Permissions.GrantedCount())
		s.activity.Record(ctx, actor, models.ActionSyncPermissions, details)
	} else {
		s.activity.Record(ctx, actor, models.ActionSaveRole, details)
	}
	return final, nil
}

func (s *RoleEditorService) commit(ctx context.Context, snap *EditorState) error {
	roleID := snap.Role.ID
	if _, err := s.roles.Update(ctx, roleID, models.RoleRequest{
		Name:        strings.TrimSpace(snap.Role.Name),
		Description: snap.Role.Description,
		Active:      snap.Role.Active,
	}); err != nil {
		return fmt.Errorf("update role %d: %w", roleID, err)
	}

	if !snap.Dirty {
		return nil
	}
	if err := s.permissions.SyncRolePermissions(ctx, roleID, snap.Permissions.Records(roleID)); err != nil {
		return fmt.Errorf("sync permissions for role %d: %w", roleID, err)
	}
	return nil
}

// Discard 세션 폐기
func (s *RoleEditorService) Discard(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}
