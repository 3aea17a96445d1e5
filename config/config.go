package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig 콘솔 서버 설정
type AppConfig struct {
	HTTPAddr    string
	WebDir      string
	CORSOrigins []string

	// 개발 프록시: ProxyPrefix 이하 요청을 BackendURL 로 전달
	BackendURL       string
	BackendTimeout   time.Duration
	ProxyPrefix      string
	ProxyStripPrefix bool

	DBType string
	DBDSN  string

	RedisAddr string
	RedisPass string

	EditorSecret string
	EditorTTL    time.Duration

	UploadMaxBytes int64
	TimeZone       string

	ActivityRetentionDays int

	LogLevel      string
	LogDir        string
	LogMaxSizeMB  int
	LogMaxAgeDays int
}

// Load 환경 변수에서 설정을 읽는다. 값이 없으면 기본값을 사용한다.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		WebDir:      getEnv("WEB_DIR", "./web"),
		CORSOrigins: getList("CORS_ORIGINS", []string{"*"}),

		BackendURL:       strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:3000"), "/"),
		BackendTimeout:   getDuration("BACKEND_TIMEOUT", 15*time.Second),
		ProxyPrefix:      getEnv("PROXY_PREFIX", "/api"),
		ProxyStripPrefix: getBool("PROXY_STRIP_PREFIX", false),

		DBType: getEnv("DB_TYPE", "sqlite"),
		DBDSN:  getEnv("DB_DSN", "./console.db"),

		RedisAddr: getEnv("REDIS_ADDR", ""),
		RedisPass: getEnv("REDIS_PASS", ""),

		EditorSecret: getEnv("EDITOR_SECRET", "change-this-editor-secret"),
		EditorTTL:    getDuration("EDITOR_TTL", 30*time.Minute),

		UploadMaxBytes: int64(getInt("UPLOAD_MAX_BYTES", 10<<20)),
		TimeZone:       getEnv("TIMEZONE", "America/Lima"),

		ActivityRetentionDays: getInt("ACTIVITY_RETENTION_DAYS", 30),

		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogDir:        getEnv("LOG_DIR", "./logs"),
		LogMaxSizeMB:  getInt("LOG_MAX_SIZE_MB", 10),
		LogMaxAgeDays: getInt("LOG_MAX_AGE_DAYS", 7),
	}
}

// APIBaseURL 백엔드 리소스 경로("/usuarios" 등) 앞에 붙는 주소.
// 프록시가 접두사를 유지하면 백엔드도 접두사 아래에서 리소스를 제공한다.
func (c AppConfig) APIBaseURL() string {
	prefix := strings.Trim(c.ProxyPrefix, "/")
	if c.ProxyStripPrefix || prefix == "" {
		return c.BackendURL
	}
	return c.BackendURL + "/" + prefix
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
