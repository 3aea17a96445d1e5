package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adminpanel/models"
	"adminpanel/services"
)

// pickerScopeParams 선택 목록 범위로 쓰이는 쿼리 파라미터
var pickerScopeParams = []string{"sedeId", "cargoId", "mercaderistaId", "tipoMercaderistaId"}

// PickerOptions 선택 목록 응답
type PickerOptions struct {
	Kind    string            `json:"kind"`
	Loaded  bool              `json:"loaded"`
	Options []services.Option `json:"options"`
}

// PickerHandler 선택 목록 조회
type PickerHandler struct {
	pickers *services.PickerRegistry
}

// NewPickerHandler는 선택 목록 핸들러를 생성한다.
func NewPickerHandler(pickers *services.PickerRegistry) *PickerHandler {
	return &PickerHandler{pickers: pickers}
}

// Kinds 사용 가능한 선택 목록 종류
// @Summary 선택 목록 종류
// @Tags 선택 목록
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]string} "조회 성공"
// @Router /console/pickers [get]
func (h *PickerHandler) Kinds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.SuccessResponse("Picker kinds retrieved", h.pickers.Kinds()))
}

// Options 선택 목록 항목
// @Summary 선택 목록 항목 조회
// @Description 처음 요청 시 한 번만 백엔드에서 목록을 가져오고, 이후에는 캐시를 검색어와 범위로 필터링합니다
// @Tags 선택 목록
// @Produce json
// @Param kind path string true "목록 종류 (areas, sedes, cargos, roles, modulos, choperas, clientes, empleados, mercaderistas, rutas, tipos-mercaderista)"
// @Param q query string false "검색어 (대소문자, 악센트 무시)"
// @Param sedeId query int false "사업장 범위 (areas)"
// @Param cargoId query int false "직책 범위 (empleados)"
// @Param mercaderistaId query int false "머천다이저 범위 (rutas)"
// @Param tipoMercaderistaId query int false "머천다이저 유형 범위 (mercaderistas)"
// @Success 200 {object} models.APIResponse{data=PickerOptions} "조회 성공"
// @Failure 404 {object} models.APIResponse "알 수 없는 목록"
// @Failure 502 {object} models.APIResponse "백엔드 오류"
// @Router /console/pickers/{kind} [get]
func (h *PickerHandler) Options(w http.ResponseWriter, r *http.Request) {
	source, ok := h.source(w, r)
	if !ok {
		return
	}

	if err := source.Load(r.Context()); err != nil {
		writeServiceError(w, r, "Load picker "+source.Kind(), err)
		return
	}

	q := r.URL.Query()
	scope := services.Scope{}
	for _, key := range pickerScopeParams {
		if v := q.Get(key); v != "" {
			if id, err := strconv.ParseInt(v, 10, 64); err == nil {
				scope[key] = id
			}
		}
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse("Picker options retrieved", PickerOptions{
		Kind:    source.Kind(),
		Loaded:  source.Loaded(),
		Options: source.Options(q.Get("q"), scope),
	}))
}

// Reload 목록 다시 불러오기
// @Summary 선택 목록 새로고침
// @Tags 선택 목록
// @Produce json
// @Param kind path string true "목록 종류"
// @Success 200 {object} models.APIResponse{data=PickerOptions} "새로고침 성공"
// @Failure 404 {object} models.APIResponse "알 수 없는 목록"
// @Failure 502 {object} models.APIResponse "백엔드 오류"
// @Router /console/pickers/{kind}/reload [post]
func (h *PickerHandler) Reload(w http.ResponseWriter, r *http.Request) {
	source, ok := h.source(w, r)
	if !ok {
		return
	}

	if err := source.Reload(r.Context()); err != nil {
		writeServiceError(w, r, "Reload picker "+source.Kind(), err)
		return
	}

	writeJSON(w, http.StatusOK, models.SuccessResponse("Picker reloaded", PickerOptions{
		Kind:    source.Kind(),
		Loaded:  source.Loaded(),
		Options: source.Options("", nil),
	}))
}

func (h *PickerHandler) source(w http.ResponseWriter, r *http.Request) (services.OptionSource, bool) {
	kind := chi.URLParam(r, "kind")
	source, ok := h.pickers.Get(kind)
	if !ok {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse("Unknown picker: "+kind, nil))
		return nil, false
	}
	return source, true
}
