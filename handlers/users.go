package handlers

import (
	"context"
	"errors"
	"net/http"

	"adminpanel/logger"
	"adminpanel/middleware"
	"adminpanel/models"
	"adminpanel/services"
)

// UserPayload 사용자 생성/수정 요청 본문
type UserPayload struct {
	FirstName  string `json:"nombre"`
	LastName   string `json:"apellido"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	RoleID     int64  `json:"rolId"`
	SiteID     int64  `json:"sedeId"`
	AreaID     int64  `json:"areaId"`
	PositionID int64  `json:"cargoId"`
	Active     *bool  `json:"activo"`
}

func (p UserPayload) fields(defaultActive bool) services.UserFields {
	active := defaultActive
	if p.Active != nil {
		active = *p.Active
	}
	return services.UserFields{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Username:  p.Username,
		Password:  p.Password,
		Active:    active,
	}
}

// UserHandler 사용자 생성, 수정, 삭제 모달
type UserHandler struct {
	api      services.UserAPI
	pickers  *services.PickerRegistry
	activity services.ActivityRecorder
}

// NewUserHandler는 사용자 핸들러를 생성한다.
func NewUserHandler(api services.UserAPI, pickers *services.PickerRegistry, activity services.ActivityRecorder) *UserHandler {
	return &UserHandler{api: api, pickers: pickers, activity: activity}
}

// Create 사용자 생성
// @Summary 사용자 생성
// @Description 입력값을 검증한 뒤 백엔드에 사용자를 생성합니다. 검증에 실패하면 백엔드를 호출하지 않습니다
// @Tags 사용자
// @Accept json
// @Produce json
// @Param request body UserPayload true "사용자 정보"
// @Success 201 {object} models.APIResponse{data=models.User} "생성 성공"
// @Failure 400 {object} models.APIResponse "입력값 오류"
// @Failure 502 {object} models.APIResponse "백엔드 오류"
// @Router /console/users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req UserPayload
	if !decodeBody(w, r, &req) {
		return
	}

	form := services.NewCreateUserForm(h.api, h.pickers, h.activity, nil)
	form.SetFields(req.fields(true))

	user, err := h.submit(r.Context(), form, req, middleware.Actor(r.Context()))
	if err != nil {
		writeServiceError(w, r, "Create user", err)
		return
	}

	logger.WithFields(map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("User created")
	writeJSON(w, http.StatusCreated, models.SuccessResponse("Usuario creado correctamente", user))
}

// Update 사용자 수정
// @Summary 사용자 수정
// @Description 비밀번호가 비어 있으면 변경하지 않습니다
// @Tags 사용자
// @Accept json
// @Produce json
// @Param id path int true "사용자 ID"
// @Param request body UserPayload true "사용자 정보"
// @Success 200 {object} models.APIResponse{data=models.User} "수정 성공"
// @Failure 400 {object} models.APIResponse "입력값 오류"
// @Failure 502 {object} models.APIResponse "백엔드 오류"
// @Router /console/users/{id} [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req UserPayload
	if !decodeBody(w, r, &req) {
		return
	}

	fields := req.fields(true)
	existing := models.User{
		ID:         id,
		FirstName:  fields.FirstName,
		LastName:   fields.LastName,
		Email:      fields.Email,
		Username:   fields.Username,
		RoleID:     req.RoleID,
		SiteID:     req.SiteID,
		AreaID:     req.AreaID,
		PositionID: req.PositionID,
		Active:     fields.Active,
	}
	form := services.NewEditUserForm(h.api, h.pickers, h.activity, existing, nil)
	form.SetFields(fields)

	user, err := h.submit(r.Context(), form, req, middleware.Actor(r.Context()))
	if err != nil {
		writeServiceError(w, r, "Update user", err)
		return
	}

	logger.WithFields(map[string]interface{}{"user_id": user.ID}).Info("User updated")
	writeJSON(w, http.StatusOK, models.SuccessResponse("Usuario actualizado correctamente", user))
}

// submit 선택 목록 값을 검증해 반영한 뒤 폼을 제출한다.
// 사업장을 부서보다 먼저 선택해야 부서 선택이 초기화되지 않는다.
func (h *UserHandler) submit(ctx context.Context, form *services.UserForm, req UserPayload, actor string) (models.User, error) {
	selections := []struct {
		field string
		sel   *services.Selection
		id    int64
	}{
		{"rolId", form.Role, req.RoleID},
		{"sedeId", form.Site, req.SiteID},
		{"areaId", form.Area, req.AreaID},
		{"cargoId", form.Position, req.PositionID},
	}

	invalid := services.ValidationErrors{}
	for _, s := range selections {
		err := s.sel.Select(ctx, s.id)
		switch {
		case err == nil:
		case errors.Is(err, services.ErrUnknownOption):
			invalid[s.field] = services.UserMessage(err)
		default:
			return models.User{}, err
		}
	}

	if len(invalid) > 0 {
		var fieldErrs services.ValidationErrors
		if errors.As(form.Validate(), &fieldErrs) {
			for k, v := range fieldErrs {
				if _, exists := invalid[k]; !exists {
					invalid[k] = v
				}
			}
		}
		return models.User{}, invalid
	}

	return form.Submit(ctx, actor)
}

// Delete 사용자 삭제
// @Summary 사용자 삭제
// @Tags 사용자
// @Produce json
// @Param id path int true "사용자 ID"
// @Param label query string false "확인 메시지에 표시할 이름"
// @Success 200 {object} models.APIResponse "삭제 성공"
// @Failure 400 {object} models.APIResponse "잘못된 ID"
// @Failure 502 {object} models.APIResponse "백엔드 오류"
// @Router /console/users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	label := r.URL.Query().Get("label")
	confirm := services.DeleteUserConfirmation(h.api, h.activity, id, label)
	if err := confirm.Confirm(r.Context(), middleware.Actor(r.Context())); err != nil {
		writeServiceError(w, r, "Delete user", err)
		return
	}

	logger.WithFields(map[string]interface{}{"user_id": id}).Info("User deleted")
	writeJSON(w, http.StatusOK, models.SuccessResponse("Usuario eliminado correctamente", nil))
}
