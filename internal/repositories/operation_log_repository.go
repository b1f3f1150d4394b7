package repositories

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"syndicpro/internal/models"
)

type OperationLogRepository interface {
	Record(action string, actorID *string, targetID, targetType string, meta map[string]interface{}) error
	FindRecent(limit int) ([]models.OperationLog, error)
}

type operationLogRepository struct {
	db *gorm.DB
}

func NewOperationLogRepository(db *gorm.DB) OperationLogRepository {
	return &operationLogRepository{db: db}
}

func (r *operationLogRepository) Record(action string, actorID *string, targetID, targetType string, meta map[string]interface{}) error {
	entry := models.OperationLog{
		Action:     action,
		ActorID:    actorID,
		TargetID:   targetID,
		TargetType: targetType,
	}
	if meta != nil {
		raw, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		entry.Meta = datatypes.JSON(raw)
	}
	return r.db.Create(&entry).Error
}

func (r *operationLogRepository) FindRecent(limit int) ([]models.OperationLog, error) {
	var entries []models.OperationLog
	err := r.db.
		Preload("Actor").
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
