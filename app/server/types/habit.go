package types

import (
	"habit-tracker/app/server/models"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

const DateLayout = "2006-01-02"

type HabitRequest struct {
	Name     string `json:"name"`
	GoalType string `json:"goalType"`
}

func (r HabitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.GoalType, validation.Length(0, 50)),
	)
}

type HabitResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	Name      string    `json:"name"`
	GoalType  string    `json:"goalType"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewHabitResponse(h *models.Habit) HabitResponse {
	return HabitResponse{
		ID:        h.ID,
		UserID:    h.UserID,
		Name:      h.Name,
		GoalType:  h.GoalType,
		CreatedAt: h.CreatedAt,
	}
}

type CheckInRequest struct {
	HabitID uint              `json:"habitId"` // 仅 POST /api/checkins 使用
	Date    string            `json:"date"`
	Status  models.TaskStatus `json:"status"`
}

func (r CheckInRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required, validation.Date(DateLayout)),
		validation.Field(&r.Status, validation.In(
			models.TaskStatusPending,
			models.TaskStatusInProgress,
			models.TaskStatusCompleted,
			models.TaskStatusSkipped,
		)),
	)
}

// ToModel 调用前需先通过 Validate
func (r CheckInRequest) ToModel(habitID uint) (*models.CheckIn, error) {
	date, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return nil, err
	}

	status := r.Status
	if status == "" {
		status = models.TaskStatusPending
	}

	return &models.CheckIn{
		HabitID: habitID,
		Date:    date,
		Status:  status,
	}, nil
}

type CheckInResponse struct {
	ID      uint              `json:"id"`
	HabitID uint              `json:"habitId"`
	Date    string            `json:"date"`
	Status  models.TaskStatus `json:"status"`
}

func NewCheckInResponse(c *models.CheckIn) CheckInResponse {
	return CheckInResponse{
		ID:      c.ID,
		HabitID: c.HabitID,
		Date:    c.Date.Format(DateLayout),
		Status:  c.Status,
	}
}
