package handlers

import (
	"net/http"

	"adminpanel/models"
	"adminpanel/services"
)

// MaintenanceHandler 유지보수 상세 보기
type MaintenanceHandler struct {
	view *services.MaintenanceView
}

func NewMaintenanceHandler(view *services.MaintenanceView) *MaintenanceHandler {
	return &MaintenanceHandler{view: view}
}

// Get 유지보수 상세
// @Summary 유지보수 상세 조회
// @Description 상태 라벨, 디스펜서 이름, 표시용 날짜를 채워 돌려줍니다
// @Tags 유지보수
// @Produce json
// @Param id path int true "유지보수 ID"
// @Success 200 {object} models.APIResponse{data=models.MaintenanceDetail} "조회 성공"
// @Failure 400 {object} models.APIResponse "잘못된 ID"
// @Failure 502 {object} models.APIResponse "백엔드 오류"
// @Router /console/maintenance/{id} [get]
func (h *MaintenanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.view.Load(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "Load maintenance", err)
		return
	}
	writeJSON(w, http.StatusOK, models.SuccessResponse("Maintenance retrieved", detail))
}
