package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	taskmanager "github.com/vaishnavvp/task-manager-backend"
	"github.com/vaishnavvp/task-manager-backend/config"
)

func main() {
	lgr := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(glog.Trace),
		glog.WithName("tasks"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)

	if err := run(lgr); err != nil {
		lgr.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(lgr *glog.BaseLogger) error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.Persistence.DSN)
	if err != nil {
		return err
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()

	ctx := context.Background()
	if err := taskmanager.Migrate(ctx, db); err != nil {
		return err
	}

	app, err := taskmanager.NewApp(taskmanager.AppOptions{
		Auth:         cfg.Auth,
		DB:           db,
		AllowOrigins: cfg.Server.AllowOrigins,
		Logger:       lgr.GetLogger("app"),
	})
	if err != nil {
		return err
	}

	if cfg.Admin.Enabled() {
		err := taskmanager.SeedAdmin(
			ctx,
			app.Repo,
			cfg.Admin.Username,
			cfg.Admin.Email,
			cfg.Admin.Password,
			lgr.GetLogger("seed"),
		)
		if err != nil {
			return err
		}
	}

	go func() {
		sig := waitExitSignal()
		app.Logger.Info("shutting down", "signal", sig.String())
		if err := app.Shutdown(); err != nil {
			app.Logger.Error("shutdown error", "error", err)
		}
	}()

	app.Logger.Info("listening", "address", cfg.Server.Address())
	return app.Listen(cfg.Server.Address())
}

func waitExitSignal() os.Signal {
	ch := make(chan os.Signal, 3)
	signal.Notify(ch,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	return <-ch
}
