package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adminpanel/logger"
	"adminpanel/middleware"
	"adminpanel/models"
	"adminpanel/services"
)

// multipart 헤더와 다른 필드를 위한 여유분
const uploadOverhead = 1 << 20

// UploadHandler 일괄 등록 파일 업로드
type UploadHandler struct {
	api      services.Uploader
	activity services.ActivityRecorder
	maxBytes int64
}

// NewUploadHandler는 업로드 핸들러를 생성한다.
func NewUploadHandler(api services.Uploader, activity services.ActivityRecorder, maxBytes int64) *UploadHandler {
	if maxBytes <= 0 {
		maxBytes = services.DefaultUploadMaxBytes
	}
	return &UploadHandler{api: api, activity: activity, maxBytes: maxBytes}
}

// Upload 파일 업로드
// @Summary 일괄 등록 파일 업로드
// @Description .xlsx, .xls, .csv 파일을 받아 백엔드의 일괄 등록 API 로 전달합니다
// @Tags 업로드
// @Accept multipart/form-data
// @Produce json
// @Param target path string true "대상 (usuarios, clientes, choperas, empleados, mercaderistas, rutas, mantenimientos)"
// @Param file formData file true "업로드 파일"
// @Success 200 {object} models.APIResponse{data=models.UploadResult} "업로드 성공"
// @Failure 400 {object} models.APIResponse "파일 오류"
// @Failure 502 {object} models.APIResponse "백엔드 오류"
// @Router /console/uploads/{target} [post]
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	target := chi.URLParam(r, "target")

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+uploadOverhead)
	file, header, err := r.FormFile("file")
	if err != nil {
		message := "No se pudo leer el archivo"
		if errors.Is(err, http.ErrMissingFile) {
			message = "Seleccione un archivo"
		}
		logger.WithFields(map[string]interface{}{"target": target, "error": err.Error()}).Warn("Invalid upload form")
		writeJSON(w, http.StatusBadRequest, models.ValidationErrorResponse(message, map[string]string{"file": message}))
		return
	}
	defer file.Close()

	form := services.NewUploadForm(h.api, h.activity, h.maxBytes, nil)
	result, err := form.Submit(r.Context(), middleware.Actor(r.Context()), target, services.UploadFile{
		Name:   header.Filename,
		Size:   header.Size,
		Reader: file,
	})
	if err != nil {
		writeServiceError(w, r, "Upload "+target, err)
		return
	}

	logger.WithFields(map[string]interface{}{
		"target":    target,
		"file":      header.Filename,
		"processed": result.Processed,
		"failed":    result.Failed,
	}).Info("File uploaded")
	writeJSON(w, http.StatusOK, models.SuccessResponse("Archivo cargado correctamente", result))
}
