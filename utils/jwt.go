package utils

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultEditorSecret = "change-this-editor-secret"

var (
	secretMu     sync.RWMutex
	editorSecret = []byte(defaultEditorSecret)
)

// SetEditorSecret 편집 세션 토큰 서명 키 설정 (EDITOR_SECRET)
func SetEditorSecret(secret string) {
	if secret == "" {
		secret = defaultEditorSecret
	}
	secretMu.Lock()
	editorSecret = []byte(secret)
	secretMu.Unlock()
}

func currentSecret() []byte {
	secretMu.RLock()
	defer secretMu.RUnlock()
	return editorSecret
}

// EditorClaims 편집 세션 토큰 클레임
type EditorClaims struct {
	SessionID string `json:"sid"`
	RoleID    int64  `json:"role_id"`
	jwt.RegisteredClaims
}

// GenerateEditorToken 편집 세션 토큰 생성
func GenerateEditorToken(sessionID string, roleID int64, ttl time.Duration) (string, int64, error) {
	now := time.Now()
	expirationTime := now.Add(ttl)

	claims := &EditorClaims{
		SessionID: sessionID,
		RoleID:    roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   sessionID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(currentSecret())
	if err != nil {
		return "", 0, err
	}

	return tokenString, expirationTime.Unix(), nil
}

// ValidateEditorToken 편집 세션 토큰 검증
func ValidateEditorToken(tokenString string) (*EditorClaims, error) {
	claims := &EditorClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return currentSecret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.SessionID == "" {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
