package services

import (
	"context"
	"fmt"

	"adminpanel/logger"
	"adminpanel/models"
	"adminpanel/utils"
)

// MaintenanceReader 유지보수 단건 조회
type MaintenanceReader interface {
	Get(ctx context.Context, id int64) (models.Maintenance, error)
}

var maintenanceStatusLabels = map[string]string{
	models.MaintenanceStatusPending:    "Pendiente",
	models.MaintenanceStatusInProgress: "En proceso",
	models.MaintenanceStatusDone:       "Completado",
}

// MaintenanceView 유지보수 상세 보기 (읽기 전용)
type MaintenanceView struct {
	api        MaintenanceReader
	dispensers *Picker[models.Dispenser]
}

func NewMaintenanceView(api MaintenanceReader, dispensers *Picker[models.Dispenser]) *MaintenanceView {
	return &MaintenanceView{api: api, dispensers: dispensers}
}

// Load 기록 하나를 가져와 표시용 필드를 채운다. 디스펜서 이름을 찾지 못해도 실패로 보지 않는다.
func (v *MaintenanceView) Load(ctx context.Context, id int64) (models.MaintenanceDetail, error) {
	record, err := v.api.Get(ctx, id)
	if err != nil {
		return models.MaintenanceDetail{}, err
	}

	detail := models.MaintenanceDetail{
		Maintenance:   record,
		DispenserName: fmt.Sprintf("Chopera #%d", record.DispenserID),
		DateLabel:     utils.FormatDisplayDate(record.Date),
		StatusLabel:   record.Status,
	}
	if label, ok := maintenanceStatusLabels[record.Status]; ok {
		detail.StatusLabel = label
	}

	if v.dispensers != nil && record.DispenserID != 0 {
		d, found, err := v.dispensers.Find(ctx, record.DispenserID)
		switch {
		case err != nil:
			logger.WithFields(map[string]interface{}{
				"maintenance_id": id,
				"error":          err.Error(),
			}).Warn("Dispenser lookup failed")
		case found:
			detail.DispenserName = d.Name
			if d.Code != "" {
				detail.DispenserName = d.Code + " - " + d.Name
			}
		}
	}
	return detail, nil
}
