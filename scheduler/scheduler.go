package scheduler

import (
	"context"
	"fmt"
	"time"

	"adminpanel/logger"
	"adminpanel/models"
	"adminpanel/services"
)

// Sweeper 만료된 편집 세션을 정리하는 저장소 (메모리 저장소만 해당)
type Sweeper interface {
	Sweep(now time.Time) int
}

// Config 정리 작업 설정
type Config struct {
	Interval  time.Duration
	Retention time.Duration
	Sessions  Sweeper
	Activity  services.ActivityService
	Now       func() time.Time
}

// Start 스케줄러 시작. ctx 가 끝나면 멈춘다.
func Start(ctx context.Context, cfg Config) {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	logger.Info("Scheduler started (interval %s)", cfg.Interval)

	ticker := time.NewTicker(cfg.Interval)

	// 서버 시작 시 즉시 한 번 실행
	RunOnce(ctx, cfg)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				logger.Info("Scheduler stopped")
				return
			case <-ticker.C:
				logger.Debug("Scheduler tick: running cleanup")
				RunOnce(ctx, cfg)
			}
		}
	}()
}

// RunOnce 만료 세션 정리와 오래된 활동 로그 삭제
func RunOnce(ctx context.Context, cfg Config) {
	now := time.Now()
	if cfg.Now != nil {
		now = cfg.Now()
	}

	if cfg.Sessions != nil {
		if n := cfg.Sessions.Sweep(now); n > 0 {
			logger.WithFields(map[string]interface{}{
				"count": n,
			}).Info("Expired editor sessions removed")
		}
	}

	if cfg.Activity == nil || cfg.Retention <= 0 {
		return
	}

	before := now.Add(-cfg.Retention)
	removed, err := cfg.Activity.Prune(ctx, before)
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"error": err.Error(),
		}).Error("Failed to prune console activity")
		return
	}

	logger.WithFields(map[string]interface{}{
		"count":  removed,
		"before": before.Format("2006-01-02 15:04:05"),
	}).Info("Console activity pruned")

	if removed > 0 {
		cfg.Activity.Record(ctx, "system", models.ActionPruneActivity,
			fmt.Sprintf("removed=%d before=%s", removed, before.Format("2006-01-02")))
	}
}
