package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"adminpanel/logger"
	"adminpanel/models"
	"adminpanel/utils"
)

// EditorTokenHeader carries the signed editor session handle.
const EditorTokenHeader = "X-Editor-Token"

const (
	editorSessionKey contextKey = "editor_session_id"
	editorRoleKey    contextKey = "editor_role_id"
)

// EditorSession 편집 세션 토큰 검증 미들웨어
func EditorSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := RequestID(r.Context())

		token := strings.TrimSpace(r.Header.Get(EditorTokenHeader))
		if token == "" {
			logger.WithFields(map[string]interface{}{
				"request_id": requestID,
				"ip":         getClientIP(r),
			}).Warn("Missing editor token")
			writeUnauthorized(w, "Editor token required", nil)
			return
		}

		claims, err := utils.ValidateEditorToken(token)
		if err != nil {
			logger.WithFields(map[string]interface{}{
				"request_id": requestID,
				"ip":         getClientIP(r),
				"error":      err.Error(),
			}).Warn("Invalid or expired editor token")
			writeUnauthorized(w, "Invalid or expired editor token", err)
			return
		}

		ctx := context.WithValue(r.Context(), editorSessionKey, claims.SessionID)
		ctx = context.WithValue(ctx, editorRoleKey, claims.RoleID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(models.ErrorResponse(message, err))
}

// EditorSessionID 토큰에서 꺼낸 세션 ID
func EditorSessionID(ctx context.Context) string {
	id, _ := ctx.Value(editorSessionKey).(string)
	return id
}

// EditorRoleID 토큰에 묶인 역할 ID
func EditorRoleID(ctx context.Context) int64 {
	id, _ := ctx.Value(editorRoleKey).(int64)
	return id
}
