package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"adminpanel/client"
	"adminpanel/config"
	"adminpanel/database"
	"adminpanel/logger"
	"adminpanel/services"
	"adminpanel/utils"
)

// app 콘솔 서비스 묶음
type app struct {
	cfg      config.AppConfig
	api      *client.Client
	activity services.ActivityService
	pickers  *services.PickerRegistry
	stats    *services.StatsService
	editor   *services.RoleEditorService
	// memStore 는 Redis 를 쓰지 않을 때만 설정된다.
	memStore *services.MemoryEditorStore
	redis    *redis.Client
}

// newApp 설정으로 백엔드 클라이언트와 서비스를 만든다. db 가 nil 이면 활동 로그를 남기지 않는다.
func newApp(ctx context.Context, cfg config.AppConfig, db *sql.DB) (*app, error) {
	if err := utils.SetConsoleLocation(cfg.TimeZone); err != nil {
		logger.Warn("Unknown time zone %q, using default: %v", cfg.TimeZone, err)
	}
	utils.SetEditorSecret(cfg.EditorSecret)

	a := &app{
		cfg: cfg,
		api: client.New(cfg.APIBaseURL(), client.WithTimeout(cfg.BackendTimeout)),
	}

	if db != nil {
		a.activity = services.NewActivityService(services.NewSQLExecutor(db))
	}

	var store services.EditorStore
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       0,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			rdb.Close()
			return nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
		}
		a.redis = rdb
		store = services.NewRedisEditorStore(rdb)
		logger.Info("Editor sessions stored in Redis (%s)", cfg.RedisAddr)
	} else {
		a.memStore = services.NewMemoryEditorStore()
		store = a.memStore
	}

	var recorder services.ActivityRecorder = services.NoopActivityRecorder{}
	if a.activity != nil {
		recorder = a.activity
	}

	a.pickers = services.NewPickerRegistry(services.PickerSources{
		Areas:             a.api.Areas,
		Sites:             a.api.Sites,
		Positions:         a.api.Positions,
		Roles:             a.api.Roles,
		Modules:           a.api.Modules,
		Dispensers:        a.api.Dispensers,
		Customers:         a.api.Customers,
		Employees:         a.api.Employees,
		Merchandisers:     a.api.Merchandisers,
		Routes:            a.api.Routes,
		MerchandiserTypes: a.api.MerchandiserTypes,
	})
	a.stats = services.NewStatsService(services.StatsSources{
		Users:       a.api.Users,
		Roles:       a.api.Roles,
		Sites:       a.api.Sites,
		Maintenance: a.api.Maintenance,
	})
	a.editor = services.NewRoleEditorService(a.api.Roles, a.api.Modules, a.api.Permissions, store, recorder, cfg.EditorTTL)
	return a, nil
}

func (a *app) close() {
	if a.redis != nil {
		a.redis.Close()
	}
}

// openDatabase 활동 로그 저장소
func openDatabase(cfg config.AppConfig) (*sql.DB, error) {
	if err := database.Initialize(cfg.DBType, cfg.DBDSN); err != nil {
		return nil, err
	}
	return database.DB, nil
}

// withAuthorization --authorization 플래그 값을 백엔드 호출에 싣는다.
func withAuthorization(ctx context.Context) context.Context {
	if flagAuthorization == "" {
		return ctx
	}
	return client.WithAuthorization(ctx, flagAuthorization)
}
