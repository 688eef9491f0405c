package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/changhyeonkim/project-board/go-api-server/internal/bootstrap"
	"github.com/changhyeonkim/project-board/go-api-server/internal/config"
	"github.com/changhyeonkim/project-board/go-api-server/internal/router"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/validator"
)

func main() {
	env := flag.String("env", "local", "Environment (local|dev|prod), selects .env.<env>")
	flag.Parse()

	logger.Setup(*env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *env); err != nil {
		slog.Error("게시판 서버 실행 실패", "env", *env, "error", err)
		os.Exit(1)
	}

	slog.Info("서버 종료 완료", "env", *env)
}

func run(ctx context.Context, env string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	slog.Info("환경 변수 로드 성공",
		"db_driver", cfg.Database.Driver,
		"auto_migrate", cfg.Database.IsAutoMigrate,
		"default_auditor", cfg.App.DefaultAuditor,
	)

	if err := validator.RegisterAll(); err != nil {
		return fmt.Errorf("공통 Validator 등록 실패: %w", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("데이터베이스 연결 실패: %w", err)
	}

	engine := bootstrap.NewBootstrap(cfg).SetupEngine()
	router.Setup(engine, cfg, db)
	slog.Info("라우트 등록 완료", "routes", len(engine.Routes()))

	return bootstrap.NewServer(cfg, engine, db.Close).Run(ctx)
}
