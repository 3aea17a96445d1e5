package models

// Stat card keys
const (
	StatCardUsers       = "users"
	StatCardRoles       = "roles"
	StatCardSites       = "sites"
	StatCardMaintenance = "maintenance"
)

// StatCard 대시보드 통계 카드
type StatCard struct {
	Key         string  `json:"key"`
	Title       string  `json:"title"`
	Value       int     `json:"value"`
	Total       int     `json:"total"`
	Percentage  float64 `json:"percentage"`
	Description string  `json:"description"`
	Error       string  `json:"error,omitempty"`
}
