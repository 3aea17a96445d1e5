package services

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"adminpanel/logger"
	"adminpanel/models"
)

// Lister is any list-returning backend call.
type Lister[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
}

// StatsSources 통계 카드에 필요한 네 가지 목록
type StatsSources struct {
	Users       Lister[models.User]
	Roles       Lister[models.Role]
	Sites       Lister[models.Site]
	Maintenance Lister[models.Maintenance]
}

// StatsService 대시보드 통계 카드 집계
type StatsService struct {
	src StatsSources
}

// NewStatsService creates the aggregator over the four sources.
func NewStatsService(src StatsSources) *StatsService {
	return &StatsService{src: src}
}

// Cards 네 목록을 병렬로 가져와 카드 네 장을 만든다. 항상 네 장을 돌려주며,
// 실패한 목록은 기본 카드(값 0, 에러 메시지)로 대체되고 나머지 카드는 영향을 받지 않는다.
func (s *StatsService) Cards(ctx context.Context) []models.StatCard {
	cards := make([]models.StatCard, 4)

	// 실패를 반환하지 않으므로 errgroup 이 다른 요청을 취소하지 않는다.
	var g errgroup.Group
	g.Go(func() error {
		cards[0] = buildCard(ctx, models.StatCardUsers, "Usuarios", "activos", s.src.Users,
			func(u models.User) bool { return u.Active })
		return nil
	})
	g.Go(func() error {
		cards[1] = buildCard(ctx, models.StatCardRoles, "Roles", "activos", s.src.Roles,
			func(r models.Role) bool { return r.Active })
		return nil
	})
	g.Go(func() error {
		cards[2] = buildCard(ctx, models.StatCardSites, "Sedes", "activas", s.src.Sites,
			func(site models.Site) bool { return site.Active })
		return nil
	})
	g.Go(func() error {
		cards[3] = buildCard(ctx, models.StatCardMaintenance, "Mantenimientos", "pendientes", s.src.Maintenance,
			func(m models.Maintenance) bool { return m.IsPending() })
		return nil
	})
	_ = g.Wait()

	return cards
}

func buildCard[T any](ctx context.Context, key, title, noun string, src Lister[T], counted func(T) bool) models.StatCard {
	card := models.StatCard{Key: key, Title: title}

	if src == nil {
		card.Error = "Sin datos"
		card.Description = card.Error
		return card
	}

	items, err := src.GetAll(ctx)
	if err != nil {
		logger.WithFields(map[string]interface{}{
			"card":  key,
			"error": err.Error(),
		}).Warn("Stat card source failed")
		card.Error = UserMessage(err)
		card.Description = "Sin datos"
		return card
	}

	for _, item := range items {
		if counted(item) {
			card.Value++
		}
	}
	card.Total = len(items)
	card.Percentage = percentage(card.Value, card.Total)
	card.Description = fmt.Sprintf("%d de %d %s", card.Value, card.Total, noun)
	return card
}

// percentage 소수점 한 자리 반올림. 전체가 0 이면 0.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)*1000/float64(total)) / 10
}
