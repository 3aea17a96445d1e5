package handlers

import (
	"net/http"
	"strconv"

	"adminpanel/logger"
	"adminpanel/models"
	"adminpanel/services"
)

// DashboardHandler 대시보드 통계와 최근 활동
type DashboardHandler struct {
	stats    *services.StatsService
	activity services.ActivityService
}

// NewDashboardHandler는 대시보드 핸들러를 생성한다.
func NewDashboardHandler(stats *services.StatsService, activity services.ActivityService) *DashboardHandler {
	return &DashboardHandler{stats: stats, activity: activity}
}

// Stats 통계 카드
// @Summary 대시보드 통계 카드
// @Description 사용자, 역할, 사업장, 유지보수 목록을 병렬로 조회해 카드 네 장을 만듭니다. 실패한 목록은 기본 카드로 대체됩니다
// @Tags 대시보드
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.StatCard} "조회 성공"
// @Router /console/dashboard/stats [get]
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	cards := h.stats.Cards(r.Context())

	failed := 0
	for _, c := range cards {
		if c.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		logger.WithFields(map[string]interface{}{"failed_cards": failed}).Warn("Dashboard stats partially unavailable")
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse("Dashboard stats retrieved", cards))
}

// Activities 최근 콘솔 활동
// @Summary 최근 활동 내역
// @Description 콘솔에서 수행한 변경 작업을 최신순으로 조회합니다
// @Tags 대시보드
// @Produce json
// @Param limit query int false "조회 개수 (기본 20, 최대 100)"
// @Success 200 {object} models.APIResponse{data=[]models.ActivityLog} "조회 성공"
// @Failure 500 {object} models.APIResponse "서버 에러"
// @Router /console/dashboard/activities [get]
func (h *DashboardHandler) Activities(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil {
			limit = n
		}
	}

	logs, err := h.activity.Recent(r.Context(), limit)
	if err != nil {
		logger.Error("Failed to query console activities: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse("Failed to query activities", err))
		return
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse("Recent activities retrieved", logs))
}
