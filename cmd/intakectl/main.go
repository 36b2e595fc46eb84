package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shenikar/report_intake/internal/app"
	"github.com/shenikar/report_intake/internal/config"
	"github.com/shenikar/report_intake/pkg/logger"
)

func openApp(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	// В консоли логи не должны мешать выводу команд
	log := logger.NewWithOutput(cfg.LogLevel, "text", os.Stderr)

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return &runtime{
		drafts: func(reporter string) DraftSlot { return application.DraftStore(reporter) },
		intake: application.Intake,
		close:  application.Close,
	}, nil
}

func main() {
	if err := newRootCmd(openApp).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
