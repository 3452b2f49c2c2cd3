package main

import (
	"context"
	"errors"
	"fmt"
	"habit-tracker/app/server/apidocs"
	"habit-tracker/app/server/auth"
	"habit-tracker/app/server/constants"
	"habit-tracker/app/server/handlers"
	"habit-tracker/app/server/inits"
	"habit-tracker/app/server/jwt"
	"habit-tracker/app/server/middlewares"
	"habit-tracker/app/server/password"
	"habit-tracker/app/server/repository"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}
	defer func() { _ = l.Sync() }()

	// 切换日志系统
	l.Debug("logger initialized")

	hasher := password.Default()

	// 初始化数据库连接
	db, err := inits.DB(cfg, hasher, l)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}
	if rdb == nil {
		l.Info("redis not configured, identity cache disabled")
	}

	// 初始化 JWT
	codec, err := jwt.New(cfg.Security.SignatureSecretKey, cfg.Security.TokenLifetime)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 存储与认证
	users := repository.NewUsers(db)
	identityCache := repository.NewIdentityCache(users, rdb, l)
	authn := auth.NewAuthenticator(users, hasher, codec)
	resolver := auth.NewResolver(identityCache, codec, l)

	// 准备 handler app
	handlerApp := handlers.NewApp(l, authn, users, repository.NewHabits(db), repository.NewCheckIns(db), identityCache)

	// 准备 echo 服务
	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return uuid.NewString()
		},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("method", v.Method),
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("requestID", v.RequestID),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middlewares.Identity(resolver))

	// 绑定 echo 服务
	handlers.RegisterHandlers(e, handlerApp)

	// 添加 API 文档
	if !cfg.System.IsProd {
		if docJSON, err := apidocs.Load(context.Background()); err != nil {
			l.Error("error initializing api docs", zap.Error(err))
		} else {
			e.Pre(apidocs.Doc(constants.APIPrefix, docJSON, apidocs.WithTitle("Habit Tracker API")))
		}
	}

	// 启动 echo 服务
	go func() {
		if err := e.Start(cfg.System.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		l.Error("failed to shutdown server gracefully", zap.Error(err))
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	l.Info("server stopped")
}
