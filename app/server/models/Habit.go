package models

import "time"

type Habit struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`

	UserID   uint   `gorm:"column:user_id;index;not null"` // 所属用户
	Name     string `gorm:"column:name;not null"`          // 习惯名称
	GoalType string `gorm:"column:goal_type"`              // 目标类型，例如 Daily
}
