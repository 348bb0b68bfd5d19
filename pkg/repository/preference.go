package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/Umami/pkg/model"
)

var ErrPreferenceNotFound = errors.New("preference not found")

func (r *Repository) GetPreference(ctx context.Context, key string) (string, error) {
	var preference model.Preference

	result := r.DB.WithContext(ctx).Where("key = ?", key).First(&preference)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", ErrPreferenceNotFound
		}

		r.Logger.Error("error reading preference", zap.String("key", key), zap.Error(result.Error))

		return "", result.Error
	}

	return preference.Value, nil
}

func (r *Repository) SetPreference(ctx context.Context, key string, value string) error {
	preference := model.Preference{Key: key, Value: value}

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&preference)

	return result.Error
}
