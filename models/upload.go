package models

// UploadResult 일괄 업로드 처리 결과
type UploadResult struct {
	Message   string `json:"mensaje"`
	Processed int    `json:"procesados"`
	Failed    int    `json:"fallidos"`
}
