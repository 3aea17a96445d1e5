package services

import (
	"context"
	"time"

	"adminpanel/logger"
	"adminpanel/models"
)

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 100
	activityTimeLayout   = "2006-01-02 15:04:05"
)

// ActivityRecorder는 콘솔에서 수행된 변경 작업을 기록합니다. 기록 실패는 호출자에게 전파하지 않습니다.
type ActivityRecorder interface {
	Record(ctx context.Context, actor, action, details string)
}

// NoopActivityRecorder discards every entry.
type NoopActivityRecorder struct{}

func (NoopActivityRecorder) Record(context.Context, string, string, string) {}

// ActivityService는 콘솔 활동 로그 조회/정리를 정의합니다.
type ActivityService interface {
	ActivityRecorder
	Recent(ctx context.Context, limit int) ([]models.ActivityLog, error)
	Prune(ctx context.Context, before time.Time) (int64, error)
}

type activityService struct {
	db  SQLExecutor
	now func() time.Time
}

// NewActivityService는 ActivityService 구현체를 생성합니다.
func NewActivityService(db SQLExecutor) ActivityService {
	return &activityService{db: db, now: time.Now}
}

func (s *activityService) Record(ctx context.Context, actor, action, details string) {
	if actor == "" {
		actor = "anonymous"
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO console_activity_logs (actor, action, details, created_at) VALUES (?, ?, ?, ?)`,
		actor, action, details, s.now().Format(activityTimeLayout),
	)
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		}).Error("Failed to log console activity")
	}
}

// Recent 최근 활동 (기본 20건, 최대 100건)
func (s *activityService) Recent(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, actor, action, details, created_at
		FROM console_activity_logs
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.ActivityLog, 0, limit)
	for rows.Next() {
		var entry models.ActivityLog
		if err := rows.Scan(&entry.ID, &entry.Actor, &entry.Action, &entry.Details, &entry.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}

// Prune before 이전 로그 삭제
func (s *activityService) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM console_activity_logs WHERE created_at < ?`,
		before.Format(activityTimeLayout),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
