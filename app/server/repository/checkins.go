package repository

import (
	"context"
	"habit-tracker/app/server/models"

	"gorm.io/gorm"
)

type CheckIns struct {
	db *gorm.DB
}

func NewCheckIns(db *gorm.DB) *CheckIns {
	return &CheckIns{db: db}
}

// Create 习惯不存在时返回 ErrNotFound
func (r *CheckIns) Create(ctx context.Context, checkIn *models.CheckIn) error {
	return translate(r.db.WithContext(ctx).Create(checkIn).Error)
}

func (r *CheckIns) FindByID(ctx context.Context, id uint) (*models.CheckIn, error) {
	var checkIn models.CheckIn
	if err := r.db.WithContext(ctx).First(&checkIn, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}

	return &checkIn, nil
}

// ListByHabit 按日期升序
func (r *CheckIns) ListByHabit(ctx context.Context, habitID uint) ([]models.CheckIn, error) {
	checkIns := []models.CheckIn{}
	if err := r.db.WithContext(ctx).Where("habit_id = ?", habitID).Order("date ASC, id ASC").Find(&checkIns).Error; err != nil {
		return nil, err
	}

	return checkIns, nil
}

func (r *CheckIns) DeleteByID(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.CheckIn{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
