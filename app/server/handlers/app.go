package handlers

import (
	"context"
	"habit-tracker/app/server/auth"
	"habit-tracker/app/server/models"

	"go.uber.org/zap"
)

type UserStore interface {
	auth.CredentialStore
	FindByID(ctx context.Context, id uint) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, profile *models.Profile) error
	DeleteByID(ctx context.Context, id uint) error
	List(ctx context.Context, offset int, limit int) ([]models.User, int64, error)
}

type HabitStore interface {
	Create(ctx context.Context, habit *models.Habit) error
	FindByID(ctx context.Context, id uint) (*models.Habit, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Habit, error)
	DeleteByID(ctx context.Context, id uint) error
}

type CheckInStore interface {
	Create(ctx context.Context, checkIn *models.CheckIn) error
	FindByID(ctx context.Context, id uint) (*models.CheckIn, error)
	ListByHabit(ctx context.Context, habitID uint) ([]models.CheckIn, error)
	DeleteByID(ctx context.Context, id uint) error
}

// IdentityInvalidator 身份变更后清理解析缓存
type IdentityInvalidator interface {
	Invalidate(ctx context.Context, email string)
}

type App struct {
	l        *zap.Logger         // 日志
	authn    *auth.Authenticator // 登录与注册
	users    UserStore           // 身份存储
	habits   HabitStore          // 习惯
	checkIns CheckInStore        // 打卡记录
	cache    IdentityInvalidator // 身份缓存
}

func NewApp(l *zap.Logger, authn *auth.Authenticator, users UserStore, habits HabitStore, checkIns CheckInStore, cache IdentityInvalidator) *App {
	return &App{
		l:        l,
		authn:    authn,
		users:    users,
		habits:   habits,
		checkIns: checkIns,
		cache:    cache,
	}
}
