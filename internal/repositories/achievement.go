package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"resumentor/internal/models"
)

type AchievementRepository interface {
	Award(achievement *models.Achievement) error
	FindByUser(userID uuid.UUID) ([]models.Achievement, error)
}

type achievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

// Award inserts an achievement row, silently keeping the existing row when
// the user already earned that code.
func (r *achievementRepository) Award(achievement *models.Achievement) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "code"}},
		DoNothing: true,
	}).Create(achievement).Error
	if err != nil {
		return fmt.Errorf("failed to award achievement: %w", err)
	}
	return nil
}

func (r *achievementRepository) FindByUser(userID uuid.UUID) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := r.db.
		Where("user_id = ?", userID).
		Order("earned_at DESC").
		Find(&achievements).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	return achievements, nil
}
