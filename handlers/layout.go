package handlers

import (
	"net/http"
	"strconv"

	"adminpanel/models"
	"adminpanel/services"
)

// Layout 사이드바 상태 계산
// @Summary 레이아웃 상태
// @Description prev 가 있으면 그 폭에서 width 로 크기가 바뀐 것으로 계산합니다. action 은 toggle 또는 navigate
// @Tags 레이아웃
// @Produce json
// @Param width query int true "현재 화면 폭"
// @Param prev query int false "이전 화면 폭"
// @Param open query bool false "현재 사이드바 열림 여부"
// @Param action query string false "toggle, navigate"
// @Success 200 {object} models.APIResponse{data=services.Layout} "계산 성공"
// @Failure 400 {object} models.APIResponse "잘못된 파라미터"
// @Router /console/layout [get]
func Layout(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	width, err := strconv.Atoi(q.Get("width"))
	if err != nil || width < 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse("Invalid width", err))
		return
	}

	var layout services.Layout
	if raw := q.Get("prev"); raw != "" {
		prev, err := strconv.Atoi(raw)
		if err != nil || prev < 0 {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse("Invalid prev", err))
			return
		}
		layout = services.NewLayout(prev)
		if open, ok := parseBool(q.Get("open")); ok {
			layout.SidebarOpen = open
		}
		layout = layout.Resize(width)
	} else {
		layout = services.NewLayout(width)
		if open, ok := parseBool(q.Get("open")); ok {
			layout.SidebarOpen = open
		}
	}

	switch q.Get("action") {
	case "":
	case "toggle":
		layout = layout.Toggle()
	case "navigate":
		layout = layout.CloseOnNavigate()
	default:
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse("Invalid action", nil))
		return
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse("Layout computed", layout))
}

func parseBool(raw string) (bool, bool) {
	if raw == "" {
		return false, false
	}
	b, err := strconv.ParseBool(raw)
	return b, err == nil
}
