package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"adminpanel/middleware"
	"adminpanel/services"
)

// Dependencies 라우터가 사용하는 서비스 묶음
type Dependencies struct {
	Stats       *services.StatsService
	Activity    services.ActivityService
	Pickers     *services.PickerRegistry
	Users       services.UserAPI
	Roles       services.RoleWriter
	Editor      *services.RoleEditorService
	Uploads     services.Uploader
	Maintenance *services.MaintenanceView

	EditorTTL      time.Duration
	UploadMaxBytes int64

	// Proxy 는 ProxyPrefix 이하 요청을 처리한다. nil 이면 프록시를 등록하지 않는다.
	Proxy       http.Handler
	ProxyPrefix string
	// WebDir 정적 프런트엔드 경로. 비어 있으면 등록하지 않는다.
	WebDir         string
	AllowedOrigins []string
}

// NewRouter 콘솔 서버 라우터
func NewRouter(deps Dependencies) http.Handler {
	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.EditorTokenHeader, middleware.ActorHeader, "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", home)
	r.Get("/health", health)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	if deps.WebDir != "" {
		fs := http.FileServer(http.Dir(deps.WebDir))
		r.Handle("/web/*", http.StripPrefix("/web/", fs))
	}

	if deps.Proxy != nil {
		prefix := "/" + strings.Trim(deps.ProxyPrefix, "/")
		r.Handle(prefix, deps.Proxy)
		r.Handle(prefix+"/*", deps.Proxy)
	}

	dashboard := NewDashboardHandler(deps.Stats, deps.Activity)
	pickers := NewPickerHandler(deps.Pickers)
	users := NewUserHandler(deps.Users, deps.Pickers, deps.Activity)
	roles := NewRoleHandler(deps.Roles, deps.Activity)
	editor := NewRoleEditorHandler(deps.Editor, deps.Activity, deps.EditorTTL)
	uploads := NewUploadHandler(deps.Uploads, deps.Activity, deps.UploadMaxBytes)
	maintenance := NewMaintenanceHandler(deps.Maintenance)

	r.Route("/console", func(cr chi.Router) {
		cr.Use(middleware.SetJSONHeader)
		cr.Use(middleware.ForwardAuthorization)

		cr.Get("/dashboard/stats", dashboard.Stats)
		cr.Get("/dashboard/activities", dashboard.Activities)

		cr.Get("/pickers", pickers.Kinds)
		cr.Get("/pickers/{kind}", pickers.Options)
		cr.Post("/pickers/{kind}/reload", pickers.Reload)

		cr.Post("/users", users.Create)
		cr.Put("/users/{id}", users.Update)
		cr.Delete("/users/{id}", users.Delete)

		cr.Post("/roles", roles.Create)
		cr.Delete("/roles/{id}", roles.Delete)
		cr.Post("/roles/{id}/editor", editor.Open)

		cr.Route("/editor", func(er chi.Router) {
			er.Use(middleware.EditorSession)

			er.Get("/", editor.Get)
			er.Delete("/", editor.Discard)
			er.Patch("/role", editor.UpdateRole)
			er.Put("/modules/{moduleId}", editor.UpdatePermission)
			er.Put("/modules/{moduleId}/all", editor.SetAll)
			er.Get("/subtrees/{parentId}", editor.SubtreeStatus)
			er.Put("/subtrees/{parentId}", editor.SetSubtree)
			er.Post("/reload", editor.Reload)
			er.Post("/save", editor.Save)
		})

		cr.Post("/uploads/{target}", uploads.Upload)
		cr.Get("/maintenance/{id}", maintenance.Get)
		cr.Get("/layout", Layout)
	})

	return r
}

// home 서버 정보
func home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"success","message":"Admin Panel Console","version":"1.0.0"}`))
}

// health 헬스체크 핸들러
// @Summary 헬스체크
// @Tags 시스템
// @Produce json
// @Success 200 {object} models.APIResponse "정상"
// @Router /health [get]
func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"success","message":"Server is healthy"}`))
}
