package repository

import (
	"context"
	"habit-tracker/app/server/models"

	"gorm.io/gorm"
)

type Habits struct {
	db *gorm.DB
}

func NewHabits(db *gorm.DB) *Habits {
	return &Habits{db: db}
}

// Create 用户不存在时返回 ErrNotFound
func (r *Habits) Create(ctx context.Context, habit *models.Habit) error {
	return translate(r.db.WithContext(ctx).Create(habit).Error)
}

func (r *Habits) FindByID(ctx context.Context, id uint) (*models.Habit, error) {
	var habit models.Habit
	if err := r.db.WithContext(ctx).First(&habit, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}

	return &habit, nil
}

func (r *Habits) ListByUser(ctx context.Context, userID uint) ([]models.Habit, error) {
	habits := []models.Habit{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&habits).Error; err != nil {
		return nil, err
	}

	return habits, nil
}

func (r *Habits) DeleteByID(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Habit{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
