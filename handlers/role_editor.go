package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"adminpanel/logger"
	"adminpanel/middleware"
	"adminpanel/models"
	"adminpanel/services"
	"adminpanel/utils"
)

var errTokenMismatch = errors.New("editor token does not match session role")

// EditorSession 편집 세션 열기 응답
type EditorSession struct {
	Token     string              `json:"token"`
	ExpiresAt int64               `json:"expiresAt"`
	Editor    services.EditorView `json:"editor"`
}

// RoleFieldsPayload 역할 기본 정보. 비어 있는 필드는 변경하지 않는다.
type RoleFieldsPayload struct {
	Name        *string `json:"nombre"`
	Description *string `json:"descripcion"`
	Active      *bool   `json:"activo"`
}

// PermissionFieldPayload 권한 필드 하나 변경
type PermissionFieldPayload struct {
	Field string `json:"field"`
	Value bool   `json:"value"`
}

// EnabledPayload 전체 켜기/끄기
type EnabledPayload struct {
	Enabled bool `json:"enabled"`
}

// RoleEditorHandler 역할 권한 매트릭스 편집기
type RoleEditorHandler struct {
	editor   *services.RoleEditorService
	activity services.ActivityRecorder
	ttl      time.Duration
}

// NewRoleEditorHandler는 편집기 핸들러를 생성한다. ttl 은 발급하는 토큰의 유효 시간이다.
func NewRoleEditorHandler(editor *services.RoleEditorService, activity services.ActivityRecorder, ttl time.Duration) *RoleEditorHandler {
	if activity == nil {
		activity = services.NoopActivityRecorder{}
	}
	return &RoleEditorHandler{editor: editor, activity: activity, ttl: ttl}
}

// Open 편집 세션 열기
// @Summary 역할 편집 세션 열기
// @Description 역할, 전체 모듈, 역할 권한을 병렬로 불러와 세션을 만들고 X-Editor-Token 으로 쓸 토큰을 발급합니다
// @Tags 역할 편집기
// @Produce json
// @Param id path int true "역할 ID"
// @Success 201 {object} models.APIResponse{data=EditorSession} "세션 생성"
// @Failure 400 {object} models.APIResponse "잘못된 ID"
// @Failure 502 {object} models.APIResponse "백엔드 오류"
// @Router /console/roles/{id}/editor [post]
func (h *RoleEditorHandler) Open(w http.ResponseWriter, r *http.Request) {
	roleID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	state, err := h.editor.Open(r.Context(), roleID)
	if err != nil {
		writeServiceError(w, r, "Open role editor", err)
		return
	}

	token, expiresAt, err := utils.GenerateEditorToken(state.SessionID, roleID, h.ttl)
	if err != nil {
		logger.Error("Failed to sign editor token: %v", err)
		_ = h.editor.Discard(r.Context(), state.SessionID)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse("Failed to create editor session", err))
		return
	}

	h.activity.Record(r.Context(), middleware.Actor(r.Context()), models.ActionOpenRoleEditor,
		fmt.Sprintf("role=%d session=%s", roleID, state.SessionID))
	writeJSON(w, http.StatusCreated, models.SuccessResponse("Editor session opened", EditorSession{
		Token:     token,
		ExpiresAt: expiresAt,
		Editor:    state.View(),
	}))
}

// Get 세션 스냅샷
// @Summary 편집 세션 조회
// @Description 모듈 트리, 모듈별 권한, 상위 모듈별 설정 상태를 돌려줍니다
// @Tags 역할 편집기
// @Produce json
// @Param X-Editor-Token header string true "편집 세션 토큰"
// @Success 200 {object} models.APIResponse{data=services.EditorView} "조회 성공"
// @Failure 401 {object} models.APIResponse "토큰 오류"
// @Failure 404 {object} models.APIResponse "세션 만료"
// @Router /console/editor [get]
func (h *RoleEditorHandler) Get(w http.ResponseWriter, r *http.Request) {
	state, err := h.editor.Get(r.Context(), middleware.EditorSessionID(r.Context()))
	if err == nil {
		err = checkRole(r, state)
	}
	if err != nil {
		h.fail(w, r, "Get editor session", err)
		return
	}
	writeJSON(w, http.StatusOK, models.SuccessResponse("Editor session retrieved", state.View()))
}

// UpdateRole 역할 기본 정보 수정
// @Summary 역할 기본 정보 수정
// @Description 저장 전까지 세션에만 반영됩니다
// @Tags 역할 편집기
// @Accept json
// @Produce json
// @Param X-Editor-Token header string true "편집 세션 토큰"
// @Param request body RoleFieldsPayload true "역할 정보"
// @Success 200 {object} models.APIResponse{data=services.EditorView} "수정 성공"
// @Failure 401 {object} models.APIResponse "토큰 오류"
// @Failure 404 {object} models.APIResponse "세션 만료"
// @Router /console/editor/role [patch]
func (h *RoleEditorHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req RoleFieldsPayload
	if !decodeBody(w, r, &req) {
		return
	}

	h.apply(w, r, "Update editor role", func(st *services.EditorState) error {
		name, description, active := st.Role.Name, st.Role.Description, st.Role.Active
		if req.Name != nil {
			name = *req.Name
		}
		if req.Description != nil {
			description = *req.Description
		}
		if req.Active != nil {
			active = *req.Active
		}
		st.SetRoleFields(name, description, active)
		return nil
	})
}

// UpdatePermission 권한 필드 하나 변경
// @Summary 모듈 권한 필드 변경
// @Tags 역할 편집기
// @Accept json
// @Produce json
// @Param X-Editor-Token header string true "편집 세션 토큰"
// @Param moduleId path int true "모듈 ID"
// @Param request body PermissionFieldPayload true "crear, leer, actualizar, eliminar 중 하나"
// @Success 200 {object} models.APIResponse{data=services.EditorView} "변경 성공"
// @Failure 400 {object} models.APIResponse "알 수 없는 모듈 또는 필드"
// @Failure 404 {object} models.APIResponse "세션 만료"
// @Router /console/editor/modules/{moduleId} [put]
func (h *RoleEditorHandler) UpdatePermission(w http.ResponseWriter, r *http.Request) {
	moduleID, ok := pathID(w, r, "moduleId")
	if !ok {
		return
	}
	var req PermissionFieldPayload
	if !decodeBody(w, r, &req) {
		return
	}

	h.apply(w, r, "Update permission", func(st *services.EditorState) error {
		if !st.HasModule(moduleID) {
			return fmt.Errorf("module %d: %w", moduleID, services.ErrUnknownOption)
		}
		return st.Update(moduleID, strings.TrimSpace(req.Field), req.Value)
	})
}

// SetAll 모듈 권한 전체 변경
// @Summary 모듈 권한 전체 켜기/끄기
// @Tags 역할 편집기
// @Accept json
// @Produce json
// @Param X-Editor-Token header string true "편집 세션 토큰"
// @Param moduleId path int true "모듈 ID"
// @Param request body EnabledPayload true "켜기 여부"
// @Success 200 {object} models.APIResponse{data=services.EditorView} "변경 성공"
// @Failure 400 {object} models.APIResponse "알 수 없는 모듈"
// @Failure 404 {object} models.APIResponse "세션 만료"
// @Router /console/editor/modules/{moduleId}/all [put]
func (h *RoleEditorHandler) SetAll(w http.ResponseWriter, r *http.Request) {
	moduleID, ok := pathID(w, r, "moduleId")
	if !ok {
		return
	}
	var req EnabledPayload
	if !decodeBody(w, r, &req) {
		return
	}

	h.apply(w, r, "Set module permissions", func(st *services.EditorState) error {
		if !st.HasModule(moduleID) {
			return fmt.Errorf("module %d: %w", moduleID, services.ErrUnknownOption)
		}
		st.SetAll(moduleID, req.Enabled)
		return nil
	})
}

// SetSubtree 상위 모듈과 하위 모듈 전체 변경
// @Summary 하위 트리 권한 전체 켜기/끄기
// @Tags 역할 편집기
// @Accept json
// @Produce json
// @Param X-Editor-Token header string true "편집 세션 토큰"
// @Param parentId path int true "상위 모듈 ID"
// @Param request body EnabledPayload true "켜기 여부"
// @Success 200 {object} models.APIResponse{data=services.EditorView} "변경 성공"
// @Failure 400 {object} models.APIResponse "알 수 없는 상위 모듈"
// @Failure 404 {object} models.APIResponse "세션 만료"
// @Router /console/editor/subtrees/{parentId} [put]
func (h *RoleEditorHandler) SetSubtree(w http.ResponseWriter, r *http.Request) {
	parentID, ok := pathID(w, r, "parentId")
	if !ok {
		return
	}
	var req EnabledPayload
	if !decodeBody(w, r, &req) {
		return
	}

	h.apply(w, r, "Set subtree permissions", func(st *services.EditorState) error {
		if _, ok := st.Tree().Parent(parentID); !ok {
			return fmt.Errorf("parent module %d: %w", parentID, services.ErrUnknownOption)
		}
		st.SetAllForSubtree(parentID, req.Enabled)
		return nil
	})
}

// SubtreeStatus 하위 트리 상태
// @Summary 하위 트리 설정 상태
// @Tags 역할 편집기
// @Produce json
// @Param X-Editor-Token header string true "편집 세션 토큰"
// @Param parentId path int true "상위 모듈 ID"
// @Success 200 {object} models.APIResponse{data=services.SubtreeStatus} "조회 성공"
// @Failure 400 {object} models.APIResponse "알 수 없는 상위 모듈"
// @Failure 404 {object} models.APIResponse "세션 만료"
// @Router /console/editor/subtrees/{parentId} [get]
func (h *RoleEditorHandler) SubtreeStatus(w http.ResponseWriter, r *http.Request) {
	parentID, ok := pathID(w, r, "parentId")
	if !ok {
		return
	}

	state, err := h.editor.Get(r.Context(), middleware.EditorSessionID(r.Context()))
	if err == nil {
		err = checkRole(r, state)
	}
	if err == nil {
		if _, found := state.Tree().Parent(parentID); !found {
			err = fmt.Errorf("parent module %d: %w", parentID, services.ErrUnknownOption)
		}
	}
	if err != nil {
		h.fail(w, r, "Get subtree status", err)
		return
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse("Subtree status retrieved", state.Status(parentID)))
}

// Reload 다시 불러오기
// @Summary 모듈과 권한 다시 불러오기
// @Description 저장하지 않은 변경은 버려집니다
// @Tags 역할 편집기
// @Produce json
// @Param X-Editor-Token header string true "편집 세션 토큰"
// @Success 200 {object} models.APIResponse{data=services.EditorView} "다시 불러오기 성공"
// @Failure 404 {object} models.APIResponse "세션 만료"
// @Failure 409 {object} models.APIResponse "저장 진행 중"
// @Failure 502 {object} models.APIResponse "백엔드 오류"
// @Router /console/editor/reload [post]
func (h *RoleEditorHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if !h.owns(w, r) {
		return
	}

	state, err := h.editor.Reload(r.Context(), middleware.EditorSessionID(r.Context()))
	if err != nil {
		h.fail(w, r, "Reload editor", err)
		return
	}
	writeJSON(w, http.StatusOK, models.SuccessResponse("Editor reloaded", state.View()))
}

// Save 저장
// @Summary 역할과 권한 저장
// @Description 역할 기본 정보를 먼저 수정하고, 권한이 바뀐 경우에만 전체 권한을 한 번에 동기화합니다
// @Tags 역할 편집기
// @Produce json
// @Param X-Editor-Token header string true "편집 세션 토큰"
// @Success 200 {object} models.APIResponse{data=services.EditorView} "저장 성공"
// @Failure 400 {object} models.APIResponse "입력값 오류"
// @Failure 404 {object} models.APIResponse "세션 만료"
// @Failure 409 {object} models.APIResponse "저장 진행 중"
// @Failure 502 {object} models.APIResponse{data=services.EditorView} "백엔드 오류 (변경 내용 유지)"
// @Router /console/editor/save [post]
func (h *RoleEditorHandler) Save(w http.ResponseWriter, r *http.Request) {
	if !h.owns(w, r) {
		return
	}

	sessionID := middleware.EditorSessionID(r.Context())
	state, err := h.editor.Save(r.Context(), sessionID, middleware.Actor(r.Context()))
	if err != nil {
		if state != nil {
			// 실패해도 편집 내용은 남아 있으므로 화면이 그대로 다시 그릴 수 있게 돌려준다.
			logger.WithFields(map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			}).Warn("Role editor save failed")
			resp := models.ErrorResponse(services.UserMessage(err), err)
			resp.Data = state.View()
			writeJSON(w, statusFor(err), resp)
			return
		}
		h.fail(w, r, "Save role", err)
		return
	}

	logger.WithFields(map[string]interface{}{
		"session_id": sessionID,
		"role_id":    state.Role.ID,
	}).Info("Role saved")
	writeJSON(w, http.StatusOK, models.SuccessResponse("Rol actualizado correctamente", state.View()))
}

// Discard 세션 폐기
// @Summary 편집 세션 닫기
// @Tags 역할 편집기
// @Produce json
// @Param X-Editor-Token header string true "편집 세션 토큰"
// @Success 200 {object} models.APIResponse "폐기 성공"
// @Failure 401 {object} models.APIResponse "토큰 오류"
// @Router /console/editor [delete]
func (h *RoleEditorHandler) Discard(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.EditorSessionID(r.Context())
	if err := h.editor.Discard(r.Context(), sessionID); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse("Failed to discard editor session", err))
		return
	}

	h.activity.Record(r.Context(), middleware.Actor(r.Context()), models.ActionDiscardRoleEditor,
		fmt.Sprintf("role=%d session=%s", middleware.EditorRoleID(r.Context()), sessionID))
	writeJSON(w, http.StatusOK, models.SuccessResponse("Editor session closed", nil))
}

func (h *RoleEditorHandler) apply(w http.ResponseWriter, r *http.Request, action string, fn func(*services.EditorState) error) {
	state, err := h.editor.Apply(r.Context(), middleware.EditorSessionID(r.Context()), func(st *services.EditorState) error {
		if err := checkRole(r, st); err != nil {
			return err
		}
		return fn(st)
	})
	if err != nil {
		h.fail(w, r, action, err)
		return
	}
	writeJSON(w, http.StatusOK, models.SuccessResponse("Editor session updated", state.View()))
}

// owns 세션이 토큰의 역할과 일치하는지 확인
func (h *RoleEditorHandler) owns(w http.ResponseWriter, r *http.Request) bool {
	state, err := h.editor.Get(r.Context(), middleware.EditorSessionID(r.Context()))
	if err == nil {
		err = checkRole(r, state)
	}
	if err != nil {
		h.fail(w, r, "Check editor session", err)
		return false
	}
	return true
}

func (h *RoleEditorHandler) fail(w http.ResponseWriter, r *http.Request, action string, err error) {
	if errors.Is(err, errTokenMismatch) {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse("Invalid or expired editor token", err))
		return
	}
	writeServiceError(w, r, action, err)
}

func checkRole(r *http.Request, st *services.EditorState) error {
	if st.Role.ID != middleware.EditorRoleID(r.Context()) {
		return errTokenMismatch
	}
	return nil
}
