// Command recompute rebuilds daily attendance summaries from time records.
//
//	recompute -from 2026-03-01 -to 2026-03-31
//
// Both dates default to the current month in the configured timezone.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/timeclock-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/timeclock-backend-go/internal/service/attendance"
	"github.com/cmlabs-hris/timeclock-backend-go/migrations"
)

const dateLayout = "2006-01-02"

func main() {
	fromFlag := flag.String("from", "", "first day to rebuild (YYYY-MM-DD)")
	toFlag := flag.String("to", "", "last day to rebuild (YYYY-MM-DD)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	slog.SetDefault(appHTTP.NewLogger(os.Stdout, cfg.App.Env, cfg.SlogLevel()))

	loc := cfg.Location()
	from, to, err := parseRange(*fromFlag, *toFlag, time.Now().In(loc))
	if err != nil {
		slog.Error("Invalid date range", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, loc, from, to); err != nil {
		slog.Error("Rebuild failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, loc *time.Location, from, to time.Time) error {
	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if err := db.RunMigrations(ctx, migrations.FS, migrations.InitialSchemaUp); err != nil {
		return err
	}

	svc := attendanceService.NewAttendanceService(
		postgresql.NewTransactor(db),
		postgresql.NewTimeRecordRepository(db),
		postgresql.NewDailyAttendanceRepository(db),
		loc,
	)

	_, err = svc.Rebuild(ctx, from, to)
	return err
}

// parseRange fills missing bounds with the first and last day of now's month.
func parseRange(fromStr, toStr string, now time.Time) (time.Time, time.Time, error) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	from, to := first, first.AddDate(0, 1, -1)

	if fromStr != "" {
		parsed, ok := validator.IsValidDate(fromStr)
		if !ok {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid -from %q, want YYYY-MM-DD", fromStr)
		}
		from = parsed
	}
	if toStr != "" {
		parsed, ok := validator.IsValidDate(toStr)
		if !ok {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid -to %q, want YYYY-MM-DD", toStr)
		}
		to = parsed
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("-from %s is after -to %s", from.Format(dateLayout), to.Format(dateLayout))
	}
	return from, to, nil
}
