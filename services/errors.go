package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"adminpanel/client"
)

var (
	// ErrBusy는 같은 작업이 이미 진행 중일 때 반환됩니다.
	ErrBusy = errors.New("operation already in progress")
	// ErrSessionNotFound는 편집 세션이 없거나 만료되었을 때 반환됩니다.
	ErrSessionNotFound = errors.New("editor session not found")
	// ErrUnknownOption은 목록에 없는 항목을 선택했을 때 반환됩니다.
	ErrUnknownOption = errors.New("unknown option")
	// ErrUnknownField는 알 수 없는 권한 필드명일 때 반환됩니다.
	ErrUnknownField = errors.New("unknown permission field")
)

// ValidationErrors 필드별 입력 검증 메시지. 검증 실패 시 네트워크 호출은 하지 않는다.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) add(field, message string) {
	if _, exists := v[field]; !exists {
		v[field] = message
	}
}

func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// UserMessage 화면에 그대로 보여줄 한 줄짜리 메시지로 변환한다.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var validation ValidationErrors
	var apiErr *client.APIError

	switch {
	case errors.As(err, &validation):
		return "Revise los campos obligatorios"
	case errors.Is(err, ErrBusy):
		return "La operación ya está en curso, espere por favor"
	case errors.Is(err, ErrSessionNotFound):
		return "La sesión de edición expiró, vuelva a abrir el rol"
	case errors.Is(err, ErrUnknownOption):
		return "La opción seleccionada no existe"
	case errors.Is(err, ErrUnknownField):
		return "Permiso desconocido"
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, context.DeadlineExceeded):
		return "El servidor no respondió a tiempo"
	default:
		return "No se pudo conectar con el servidor"
	}
}
