package models

// Maintenance status values
const (
	MaintenanceStatusPending    = "pendiente"
	MaintenanceStatusInProgress = "en_proceso"
	MaintenanceStatusDone       = "completado"
)

// Maintenance 디스펜서 유지보수 기록
type Maintenance struct {
	ID          int64  `json:"id"`
	DispenserID int64  `json:"choperaId"`
	Date        string `json:"fecha"`
	Kind        string `json:"tipo"`
	Description string `json:"descripcion"`
	Status      string `json:"estado"`
	Technician  string `json:"tecnico"`
	Notes       string `json:"observaciones"`
}

// IsPending 처리 대기 중인 기록인지 확인
func (m Maintenance) IsPending() bool {
	return m.Status == MaintenanceStatusPending || m.Status == MaintenanceStatusInProgress
}

// MaintenanceDetail 유지보수 상세 보기 데이터
type MaintenanceDetail struct {
	Maintenance
	DispenserName string `json:"choperaNombre"`
	DateLabel     string `json:"fechaTexto"`
	StatusLabel   string `json:"estadoTexto"`
}
