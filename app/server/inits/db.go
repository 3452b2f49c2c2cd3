package inits

import (
	"context"
	"database/sql"
	"fmt"
	"habit-tracker/app/server/config"
	"habit-tracker/app/server/migrations"
	"habit-tracker/app/server/models"
	"habit-tracker/app/server/password"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DB(cfg *config.Config, hasher *password.Hasher, l *zap.Logger) (db *gorm.DB, err error) {
	// 打开连接
	sqlDB, err := sql.Open("pgx", cfg.System.DBConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// 迁移
	if err = mig(sqlDB, l); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if db, err = Gorm(sqlDB); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 初始化启动数据
	if err = initData(db, hasher, cfg.Security.AdminEmail, cfg.Security.AdminPassword); err != nil {
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	// 返回
	return db, nil
}

// Gorm 在已有连接上打开 gorm ，唯一约束冲突会被翻译成 gorm.ErrDuplicatedKey
func Gorm(sqlDB *sql.DB) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		TranslateError: true,
	})
}

// gooseLogger 把 goose 的输出转到 zap
type gooseLogger struct {
	*zap.SugaredLogger
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.Infof(strings.TrimSpace(format), v...)
}

func mig(sqlDB *sql.DB, l *zap.Logger) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(gooseLogger{l.Sugar()})

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	return goose.UpContext(context.Background(), sqlDB, ".")
}

func initData(db *gorm.DB, hasher *password.Hasher, adminEmail string, adminPassword string) (err error) {
	if adminEmail == "" {
		// 没有配置初始管理员
		return nil
	}

	// 查询现有记录数量
	var counter int64

	// 初始化用户
	if err = db.Model(&models.User{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get user count: %w", err)
	} else if counter == 0 { // 没有任何用户，添加初始用户
		// 创建密码
		var passwordHash string
		if passwordHash, err = hasher.Hash(adminPassword); err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}

		// 插入记录
		if err = db.Create(&models.User{
			Email:        adminEmail,
			Username:     "admin",
			Role:         models.RoleAdmin,
			PasswordHash: passwordHash,
			Enabled:      true,
			Profile: models.Profile{
				FirstName: "Habit",
				LastName:  "Admin",
			},
		}).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}
	}

	// 已有数据或全部导入成功
	return nil
}
