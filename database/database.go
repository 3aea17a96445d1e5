package database

import (
	"database/sql"
	"fmt"
	"strings"

	"adminpanel/logger"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

var DB *sql.DB
var dbType string // 데이터베이스 타입 저장

// Initialize 데이터베이스 초기화
// t: "sqlite" 또는 "mysql"
// dsn: SQLite 파일 경로 또는 MySQL DSN
func Initialize(t, dsn string) error {
	db, err := Open(t, dsn)
	if err != nil {
		return err
	}
	DB = db
	dbType = normalizeType(t)
	logger.Info("Database initialized successfully (%s)", dbType)
	return nil
}

// Open 연결을 열고 스키마를 준비한 *sql.DB 를 돌려준다. 전역 DB 는 건드리지 않는다.
func Open(t, dsn string) (*sql.DB, error) {
	t = normalizeType(t)
	if dsn == "" && t == "sqlite" {
		dsn = "./console.db"
	}

	db, err := sql.Open(t, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite 는 단일 writer
	if t == "sqlite" {
		db.SetMaxOpenConns(1)
	}

	// 연결 테스트
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := createTables(db, t); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return db, nil
}

func normalizeType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	if t == "" {
		return "sqlite"
	}
	return t
}

// createTables 테이블 생성
func createTables(db *sql.DB, t string) error {
	var statements []string
	if t == "sqlite" {
		statements = []string{
			`CREATE TABLE IF NOT EXISTS console_activity_logs (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				actor VARCHAR(100) NOT NULL,
				action VARCHAR(100) NOT NULL,
				details TEXT,
				created_at VARCHAR(50) NOT NULL DEFAULT ''
			)`,
			`CREATE INDEX IF NOT EXISTS idx_console_activity_created ON console_activity_logs(created_at)`,
		}
	} else {
		statements = []string{
			`CREATE TABLE IF NOT EXISTS console_activity_logs (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				actor VARCHAR(100) NOT NULL,
				action VARCHAR(100) NOT NULL,
				details LONGTEXT,
				created_at VARCHAR(50) NOT NULL DEFAULT '',
				INDEX idx_console_activity_created (created_at)
			) CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci`,
		}
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			// 이미 존재하는 인덱스/테이블 오류 무시
			if !strings.Contains(err.Error(), "already exists") {
				return fmt.Errorf("failed to execute SQL: %w", err)
			}
		}
	}
	return nil
}

// Type 현재 연결된 데이터베이스 종류
func Type() string {
	return dbType
}

// Close 데이터베이스 연결 종료
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
