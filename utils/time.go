package utils

import (
	"fmt"
	"sync"
	"time"
)

const (
	dbDateTimeLayout  = "2006-01-02 15:04:05"
	dateOnlyLayout    = "2006-01-02"
	displayLayout     = "02/01/2006"
	displayTimeLayout = "02/01/2006 15:04"
	defaultZone       = "America/Lima"
)

var (
	locMu      sync.RWMutex
	consoleLoc *time.Location
)

// SetConsoleLocation 콘솔 표시용 시간대를 설정한다. 알 수 없는 이름이면 에러.
func SetConsoleLocation(name string) error {
	if name == "" {
		name = defaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("load time zone %q: %w", name, err)
	}
	locMu.Lock()
	consoleLoc = loc
	locMu.Unlock()
	return nil
}

// ConsoleLocation returns the configured zone, America/Lima by default.
func ConsoleLocation() *time.Location {
	locMu.RLock()
	loc := consoleLoc
	locMu.RUnlock()
	if loc != nil {
		return loc
	}

	loc, err := time.LoadLocation(defaultZone)
	if err != nil {
		// Fallback to a fixed zone if the location database is unavailable.
		loc = time.FixedZone(defaultZone, -5*60*60)
	}
	locMu.Lock()
	if consoleLoc == nil {
		consoleLoc = loc
	}
	loc = consoleLoc
	locMu.Unlock()
	return loc
}

// NowConsole returns the current time in the console time zone.
func NowConsole() time.Time {
	return time.Now().In(ConsoleLocation())
}

// ParseBackendDate parses the date strings the backend sends (RFC3339, datetime or date only).
func ParseBackendDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time string")
	}

	loc := ConsoleLocation()
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts.In(loc), nil
	}
	for _, layout := range []string{dbDateTimeLayout, "2006-01-02T15:04:05", dateOnlyLayout} {
		if ts, err := time.ParseInLocation(layout, value, loc); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time format: %s", value)
}

// FormatDisplayDate 화면 표시용 날짜 (dd/mm/aaaa, 시간이 있으면 hh:mm 포함).
// 해석할 수 없는 값은 그대로 돌려준다.
func FormatDisplayDate(value string) string {
	ts, err := ParseBackendDate(value)
	if err != nil {
		return value
	}
	if ts.Hour() == 0 && ts.Minute() == 0 && ts.Second() == 0 {
		return ts.Format(displayLayout)
	}
	return ts.Format(displayTimeLayout)
}
