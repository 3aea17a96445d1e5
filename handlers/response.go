package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adminpanel/logger"
	"adminpanel/middleware"
	"adminpanel/models"
	"adminpanel/services"
)

func writeJSON(w http.ResponseWriter, status int, body models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// statusFor 서비스 에러를 HTTP 상태 코드로 변환
func statusFor(err error) int {
	var validation services.ValidationErrors
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, services.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUnknownOption), errors.Is(err, services.ErrUnknownField):
		return http.StatusBadRequest
	default:
		// 백엔드 응답 오류 또는 연결 실패
		return http.StatusBadGateway
	}
}

// writeServiceError 에러 응답. 메시지는 항상 화면에 표시할 수 있는 한 줄이다.
func writeServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status := statusFor(err)
	fields := map[string]interface{}{
		"request_id": middleware.RequestID(r.Context()),
		"path":       r.URL.Path,
		"error":      err.Error(),
	}
	if status >= http.StatusInternalServerError {
		logger.WithFields(fields).Error("%s failed", action)
	} else {
		logger.WithFields(fields).Warn("%s rejected", action)
	}

	var validation services.ValidationErrors
	if errors.As(err, &validation) {
		writeJSON(w, status, models.ValidationErrorResponse(services.UserMessage(err), validation))
		return
	}
	writeJSON(w, status, models.ErrorResponse(services.UserMessage(err), err))
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse("Invalid request body", err))
		return false
	}
	return true
}

// pathID URL 경로의 양의 정수 ID
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse(fmt.Sprintf("Invalid %s", name), err))
		return 0, false
	}
	return id, true
}
