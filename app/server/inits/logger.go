package inits

import (
	"fmt"

	"go.uber.org/zap"
)

func Logger(debugMode bool) (l *zap.Logger, err error) {
	opts := []zap.Option{
		zap.Fields(zap.String("service", "habit-tracker")),
	}

	if debugMode {
		l, err = zap.NewDevelopment(opts...)
	} else {
		l, err = zap.NewProduction(opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return l, nil
}
