package handlers

import (
	"net/http"

	"adminpanel/logger"
	"adminpanel/middleware"
	"adminpanel/models"
	"adminpanel/services"
)

// RolePayload 역할 생성 요청 본문
type RolePayload struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Active      *bool  `json:"activo"`
}

// RoleHandler 역할 생성, 삭제 모달
type RoleHandler struct {
	api      services.RoleWriter
	activity services.ActivityRecorder
}

// NewRoleHandler는 역할 핸들러를 생성한다.
func NewRoleHandler(api services.RoleWriter, activity services.ActivityRecorder) *RoleHandler {
	return &RoleHandler{api: api, activity: activity}
}

// Create 역할 생성
// @Summary 역할 생성
// @Tags 역할
// @Accept json
// @Produce json
// @Param request body RolePayload true "역할 정보 (activo 기본값 true)"
// @Success 201 {object} models.APIResponse{data=models.Role} "생성 성공"
// @Failure 400 {object} models.APIResponse "입력값 오류"
// @Failure 502 {object} models.APIResponse "백엔드 오류"
// @Router /console/roles [post]
func (h *RoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req RolePayload
	if !decodeBody(w, r, &req) {
		return
	}

	form := services.NewRoleForm(h.api, h.activity, nil)
	form.Name = req.Name
	form.Description = req.Description
	if req.Active != nil {
		form.Active = *req.Active
	}

	role, err := form.Submit(r.Context(), middleware.Actor(r.Context()))
	if err != nil {
		writeServiceError(w, r, "Create role", err)
		return
	}

	logger.WithFields(map[string]interface{}{
		"role_id": role.ID,
		"name":    role.Name,
	}).Info("Role created")
	writeJSON(w, http.StatusCreated, models.SuccessResponse("Rol creado correctamente", role))
}

// Delete 역할 삭제
// @Summary 역할 삭제
// @Tags 역할
// @Produce json
// @Param id path int true "역할 ID"
// @Param label query string false "확인 메시지에 표시할 이름"
// @Success 200 {object} models.APIResponse "삭제 성공"
// @Failure 400 {object} models.APIResponse "잘못된 ID"
// @Failure 502 {object} models.APIResponse "백엔드 오류"
// @Router /console/roles/{id} [delete]
func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	confirm := services.DeleteRoleConfirmation(h.api, h.activity, id, r.URL.Query().Get("label"))
	if err := confirm.Confirm(r.Context(), middleware.Actor(r.Context())); err != nil {
		writeServiceError(w, r, "Delete role", err)
		return
	}

	logger.WithFields(map[string]interface{}{"role_id": id}).Info("Role deleted")
	writeJSON(w, http.StatusOK, models.SuccessResponse("Rol eliminado correctamente", nil))
}
