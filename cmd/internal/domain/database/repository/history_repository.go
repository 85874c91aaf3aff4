package repository

import (
	"context"

	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultHistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *DefaultHistoryRepository {
	return &DefaultHistoryRepository{db: db}
}

func (h *DefaultHistoryRepository) Save(ctx context.Context, history *entity.History) error {
	return conn(ctx, h.db).Create(history).Error
}

func (h *DefaultHistoryRepository) ListByPatient(ctx context.Context, patientID int) ([]*entity.HistoryRecord, error) {
	var rows []*entity.HistoryRecord
	err := conn(ctx, h.db).Table("histories AS h").
		Select("h.id AS history_id, h.appointment_id, h.tests, h.medicine_name, h.instructions, " +
			"a.appointment_date, a.status, d.id AS doctor_id, d.name AS doctor_name, d.specialization").
		Joins("JOIN appointments a ON h.appointment_id = a.id").
		Joins("JOIN doctors d ON a.doctor_id = d.id").
		Where("h.patient_id = ?", patientID).
		Order("a.appointment_date DESC").
		Scan(&rows).Error
	return rows, err
}
