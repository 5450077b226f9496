package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sproutly/domain/models"
	"sproutly/domain/repositories"
)

type PlantRepositoryImpl struct {
	db *gorm.DB
}

func NewPlantRepository(db *gorm.DB) repositories.PlantRepository {
	return &PlantRepositoryImpl{db: db}
}

func (r *PlantRepositoryImpl) Create(ctx context.Context, plant *models.Plant) error {
	return r.db.WithContext(ctx).Create(plant).Error
}

func (r *PlantRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Plant, error) {
	var plant models.Plant
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&plant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plant, nil
}

func (r *PlantRepositoryImpl) GetByUserID(ctx context.Context, userID uint) ([]*models.Plant, error) {
	var plants []*models.Plant
	err := r.db.WithContext(ctx).Where(`"userId" = ?`, userID).Find(&plants).Error
	return plants, err
}

func (r *PlantRepositoryImpl) GetCurrentByUserID(ctx context.Context, userID uint) (*models.Plant, error) {
	var plant models.Plant
	err := r.db.WithContext(ctx).Where(`"userId" = ? AND completed = ?`, userID, false).First(&plant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plant, nil
}

func (r *PlantRepositoryImpl) Update(ctx context.Context, id uint, upd *models.PlantUpdate) (*models.Plant, error) {
	fields := map[string]interface{}{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Type != nil {
		fields["type"] = *upd.Type
	}
	if upd.Stage != nil {
		fields["stage"] = *upd.Stage
	}
	if upd.Points != nil {
		fields["points"] = *upd.Points
	}
	if upd.PointsToNextStage != nil {
		fields["pointsToNextStage"] = *upd.PointsToNextStage
	}
	if upd.MaxStage != nil {
		fields["maxStage"] = *upd.MaxStage
	}
	if upd.Completed != nil {
		fields["completed"] = *upd.Completed
	}

	if len(fields) > 0 {
		result := r.db.WithContext(ctx).Model(&models.Plant{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, nil
		}
	}

	return r.GetByID(ctx, id)
}
