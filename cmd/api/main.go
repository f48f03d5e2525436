package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/timeclock-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/timeclock-backend-go/internal/service/auth"
	timeRecordService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/timerecord"
	"github.com/cmlabs-hris/timeclock-backend-go/migrations"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func main() {
	migrate := flag.Bool("migrate", false, "apply the database schema before serving")
	rebuildJob := flag.Bool("rebuild-job", false, "periodically rebuild recent daily attendances")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(os.Stdout, cfg.App.Env, cfg.SlogLevel())
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, *migrate, *rebuildJob); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, migrate, rebuildJob bool) error {
	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if migrate {
		if err := db.RunMigrations(ctx, migrations.FS, migrations.InitialSchemaUp); err != nil {
			return err
		}
		slog.Info("Database migrations applied")
	}

	loc := cfg.Location()

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	timeRecordRepo := postgresql.NewTimeRecordRepository(db)
	dailyAttendanceRepo := postgresql.NewDailyAttendanceRepository(db)
	transactor := postgresql.NewTransactor(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, cfg.IsProduction())
	authService := serviceAuth.NewAuthService(transactor, userRepo, JWTService, JWTRepository)
	attendanceSvc := attendanceService.NewAttendanceService(transactor, timeRecordRepo, dailyAttendanceRepo, loc)
	timeRecordSvc := timeRecordService.NewTimeRecordService(transactor, timeRecordRepo, attendanceSvc, loc)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService)
	timeRecordHandler := appHTTP.NewTimeRecordHandler(timeRecordSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         logger,
			LogLevel:       cfg.SlogLevel(),
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		JWTService,
		authHandler,
		timeRecordHandler,
		attendanceHandler,
	)

	scheduler := cron.NewScheduler()
	if rebuildJob {
		cron.NewAttendanceJobs(attendanceSvc, loc).RegisterJobs(scheduler)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server running", "addr", server.Addr, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		scheduler.Start(gctx)
		<-gctx.Done()
		scheduler.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		slog.Info("Shutting down server")
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
