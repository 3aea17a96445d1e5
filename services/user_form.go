package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"adminpanel/models"
)

// UserFields 사용자 폼 입력값 (선택 목록으로 받는 ID 는 제외)
type UserFields struct {
	FirstName string
	LastName  string
	Email     string
	Username  string
	Password  string
	Active    bool
}

// UserForm 사용자 생성/수정 모달
type UserForm struct {
	formGate

	api       UserAPI
	activity  ActivityRecorder
	onSuccess func(models.User)
	editID    int64

	mu     sync.Mutex
	fields UserFields
	ids    struct{ role, site, area, position int64 }

	Role     *Selection
	Site     *Selection
	Area     *Selection
	Position *Selection
}

// NewCreateUserForm 생성 모드 폼
func NewCreateUserForm(api UserAPI, pickers *PickerRegistry, activity ActivityRecorder, onSuccess func(models.User)) *UserForm {
	f := &UserForm{api: api, activity: activity, onSuccess: onSuccess}
	f.fields.Active = true
	f.bind(pickers)
	return f
}

// NewEditUserForm 수정 모드 폼. 기존 값으로 채워지며 비밀번호는 비워 둔다.
func NewEditUserForm(api UserAPI, pickers *PickerRegistry, activity ActivityRecorder, user models.User, onSuccess func(models.User)) *UserForm {
	f := &UserForm{api: api, activity: activity, onSuccess: onSuccess, editID: user.ID}
	f.fields = UserFields{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Username:  user.Username,
		Active:    user.Active,
	}
	f.ids.role, f.ids.site, f.ids.area, f.ids.position = user.RoleID, user.SiteID, user.AreaID, user.PositionID
	f.bind(pickers)
	f.Role.selected = user.RoleID
	f.Site.selected = user.SiteID
	f.Area.selected = user.AreaID
	f.Position.selected = user.PositionID
	return f
}

func (f *UserForm) bind(pickers *PickerRegistry) {
	if f.activity == nil {
		f.activity = NoopActivityRecorder{}
	}
	f.Role = pickers.Roles.Bind(func(id int64) { f.setID(&f.ids.role, id) })
	f.Site = pickers.Sites.Bind(func(id int64) {
		f.mu.Lock()
		changed := f.ids.site != id
		f.ids.site = id
		f.mu.Unlock()
		// 사업장이 바뀌면 소속 부서 선택은 무효가 된다.
		if changed {
			f.Area.Clear()
		}
	})
	f.Area = pickers.Areas.Bind(func(id int64) { f.setID(&f.ids.area, id) })
	f.Position = pickers.Positions.Bind(func(id int64) { f.setID(&f.ids.position, id) })
}

func (f *UserForm) setID(dst *int64, id int64) {
	f.mu.Lock()
	*dst = id
	f.mu.Unlock()
}

// IsEdit reports whether the form updates an existing user.
func (f *UserForm) IsEdit() bool {
	return f.editID != 0
}

// SetFields replaces the free-text inputs.
func (f *UserForm) SetFields(v UserFields) {
	f.mu.Lock()
	f.fields = v
	f.mu.Unlock()
}

// Request 현재 입력으로 만든 요청
func (f *UserForm) Request() models.UserRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return models.UserRequest{
		FirstName:  strings.TrimSpace(f.fields.FirstName),
		LastName:   strings.TrimSpace(f.fields.LastName),
		Email:      strings.TrimSpace(f.fields.Email),
		Username:   strings.TrimSpace(f.fields.Username),
		Password:   f.fields.Password,
		RoleID:     f.ids.role,
		SiteID:     f.ids.site,
		AreaID:     f.ids.area,
		PositionID: f.ids.position,
		Active:     f.fields.Active,
	}
}

// userInput 생성 모드 검증 규칙
type userInput struct {
	FirstName string `json:"nombre" validate:"required"`
	LastName  string `json:"apellido" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required,min=3"`
	Password  string `json:"password" validate:"required,min=6"`
	RoleID    int64  `json:"rolId" validate:"required"`
}

// userEditInput 수정 모드. 비밀번호는 입력한 경우에만 검사한다.
type userEditInput struct {
	FirstName string `json:"nombre" validate:"required"`
	LastName  string `json:"apellido" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required,min=3"`
	Password  string `json:"password" validate:"omitempty,min=6"`
	RoleID    int64  `json:"rolId" validate:"required"`
}

var userMessages = fieldMessages{
	"nombre.required":   "El nombre es obligatorio",
	"apellido.required": "El apellido es obligatorio",
	"email.required":    "El email es obligatorio",
	"email.email":       "El email no es válido",
	"username.required": "El usuario es obligatorio",
	"username.min":      "El usuario debe tener al menos 3 caracteres",
	"password.required": "La contraseña es obligatoria",
	"password.min":      "La contraseña debe tener al menos 6 caracteres",
	"rolId.required":    "Seleccione un rol",
}

// Validate 필수값 검사. 수정 모드에서는 비밀번호가 선택 사항이다.
func (f *UserForm) Validate() error {
	req := f.Request()
	in := userInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		RoleID:    req.RoleID,
	}
	if f.IsEdit() {
		return checkStruct(userEditInput(in), userMessages).orNil()
	}
	return checkStruct(in, userMessages).orNil()
}

// Submit 검증 후 한 번의 호출로 생성 또는 수정한다. 실패하면 입력값은 그대로 남는다.
func (f *UserForm) Submit(ctx context.Context, actor string) (user models.User, err error) {
	if err := f.enter(); err != nil {
		return models.User{}, err
	}
	defer func() { f.leave(err) }()

	if err := f.Validate(); err != nil {
		return models.User{}, err
	}

	req := f.Request()
	if f.IsEdit() {
		user, err = f.api.Update(ctx, f.editID, req)
	} else {
		user, err = f.api.Create(ctx, req)
	}
	if err != nil {
		return models.User{}, err
	}

	action := models.ActionCreateUser
	if f.IsEdit() {
		action = models.ActionUpdateUser
		if user.ID == 0 {
			user.ID = f.editID
		}
	}
	f.activity.Record(ctx, actor, action, fmt.Sprintf("user=%d username=%s role=%d", user.ID, req.Username, req.RoleID))

	if f.onSuccess != nil {
		f.onSuccess(user)
	}
	return user, nil
}
