package models

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusSkipped    TaskStatus = "SKIPPED"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusSkipped:
		return true
	}
	return false
}

type CheckIn struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at"`

	HabitID uint       `gorm:"column:habit_id;index;not null"` // 所属习惯
	Date    time.Time  `gorm:"column:date;type:date;not null"` // 打卡日期
	Status  TaskStatus `gorm:"column:status;type:varchar(16);not null"`
}

func (CheckIn) TableName() string {
	return "check_ins"
}
