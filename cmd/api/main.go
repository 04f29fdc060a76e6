package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping/internal/config"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/justification"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/punch"
	"github.com/cmlabs-hris/hris-timekeeping/internal/domain/setting"
	appHTTP "github.com/cmlabs-hris/hris-timekeeping/internal/handler/http"
	"github.com/cmlabs-hris/hris-timekeeping/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-timekeeping/internal/pkg/database"
	"github.com/cmlabs-hris/hris-timekeeping/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-timekeeping/internal/repository/postgresql"
	"github.com/cmlabs-hris/hris-timekeeping/internal/repository/sqlite"
	timesheetService "github.com/cmlabs-hris/hris-timekeeping/internal/service/timesheet"
)

const version = "v1.0.0"

// stores holds the repositories of whichever backend DB_DRIVER selects.
type stores struct {
	punches        punch.PunchRepository
	employees      employee.EmployeeRepository
	justifications justification.JustificationRepository
	settings       setting.SettingsProvider
	close          func()
}

func openStores(ctx context.Context, cfg *config.Config) (stores, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.Database.SQLitePath)
		if err != nil {
			return stores{}, err
		}
		return stores{
			punches:        sqlite.NewPunchRepository(db),
			employees:      sqlite.NewEmployeeRepository(db),
			justifications: sqlite.NewJustificationRepository(db),
			settings:       sqlite.NewSettingRepository(db),
			close:          func() { db.Close() },
		}, nil

	default:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return stores{}, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return stores{}, err
		}
		return stores{
			punches:        postgresql.NewPunchRepository(db),
			employees:      postgresql.NewEmployeeRepository(db),
			justifications: postgresql.NewJustificationRepository(db),
			settings:       postgresql.NewSettingRepository(db),
			close:          db.Close,
		}, nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})).With(
		slog.String("app", "hris-timekeeping"),
		slog.String("env", cfg.App.Env),
	))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		slog.Error("Error connecting to database", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer st.close()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	timesheetSvc := timesheetService.NewTimesheetService(
		st.punches,
		st.employees,
		st.justifications,
		st.settings,
		timesheetService.Config{
			Location:                    cfg.Timesheet.Location,
			DefaultLateToleranceMinutes: cfg.Timesheet.LateToleranceMinutes,
			DepartmentConcurrency:       cfg.Timesheet.DepartmentConcurrency,
		},
	)

	var scheduler *cron.Scheduler
	if cfg.Cron.Enabled {
		scheduler = cron.NewScheduler()
		cron.NewTimesheetJobs(timesheetSvc, st.employees, cfg.Timesheet.Location).RegisterJobs(scheduler, cfg.Cron.RunHour)
		scheduler.Start()
	}

	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:            cfg.App.Env,
			Version:        version,
			AllowedOrigins: cfg.App.CORSAllowedOrigins,
			LogLevel:       logLevel,
		},
		JWTService,
		timesheetHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "driver", cfg.Database.Driver, "timezone", cfg.Timesheet.Timezone)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	if scheduler != nil {
		scheduler.Stop()
	}
	slog.Info("Server stopped")
}
