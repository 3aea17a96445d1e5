package middleware

import (
	"context"
	"net/http"
	"strings"

	"adminpanel/client"
)

// ActorHeader names the console user for the activity log. It is informational only.
const ActorHeader = "X-Console-User"

const actorKey contextKey = "actor"

// ForwardAuthorization 들어온 Authorization 헤더를 해석하지 않고 백엔드 호출에 그대로 전달한다.
func ForwardAuthorization(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if auth := r.Header.Get("Authorization"); auth != "" {
			ctx = client.WithAuthorization(ctx, auth)
		}
		if actor := strings.TrimSpace(r.Header.Get(ActorHeader)); actor != "" {
			ctx = context.WithValue(ctx, actorKey, actor)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Actor 활동 로그에 남길 사용자 이름 (없으면 "anonymous")
func Actor(ctx context.Context) string {
	if actor, ok := ctx.Value(actorKey).(string); ok && actor != "" {
		return actor
	}
	return "anonymous"
}
