// Package app wires the workbench: slot backend, blob storage, entity stores
// and the auth session holder.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hairizuanbinnoorazman/qa-workbench/auth"
	"github.com/hairizuanbinnoorazman/qa-workbench/bugbash"
	"github.com/hairizuanbinnoorazman/qa-workbench/bugreport"
	"github.com/hairizuanbinnoorazman/qa-workbench/database"
	"github.com/hairizuanbinnoorazman/qa-workbench/kvstore"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
	"github.com/hairizuanbinnoorazman/qa-workbench/qareport"
	"github.com/hairizuanbinnoorazman/qa-workbench/rtm"
	"github.com/hairizuanbinnoorazman/qa-workbench/storage"
	"github.com/hairizuanbinnoorazman/qa-workbench/testcase"
	"github.com/hairizuanbinnoorazman/qa-workbench/testplan"
	"github.com/hairizuanbinnoorazman/qa-workbench/testsuite"
	"github.com/hairizuanbinnoorazman/qa-workbench/user"
	"gorm.io/gorm"
)

// Config is everything New needs.
type Config struct {
	Database    database.Config
	AutoMigrate bool
	Slots       kvstore.Config
	Storage     storage.Config
	Auth        auth.Config
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// App holds the opened resources and stores.
type App struct {
	Log   logger.Logger
	Now   func() time.Time
	DB    *gorm.DB
	Blobs storage.BlobStorage
	Slots kvstore.Slots

	TestCases  testcase.Store
	TestSuites testsuite.Store
	TestPlans  testplan.Store
	BugReports bugreport.Store
	BugBashes  bugbash.Store
	QAReports  qareport.Store
	RTM        rtm.Store
	Users      user.Store
	Auth       *auth.Holder

	closers []func() error
}

// New opens every resource described by cfg. On error, anything already
// opened is closed.
func New(ctx context.Context, cfg Config, log logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Noop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	a := &App{Log: log, Now: now}
	if err := a.open(ctx, cfg); err != nil {
		if cerr := a.Close(); cerr != nil {
			log.Warn(ctx, "failed to release resources after open error", map[string]interface{}{
				"error": cerr.Error(),
			})
		}
		return nil, err
	}

	log.Info(ctx, "workbench ready", map[string]interface{}{
		"slots":   strings.ToLower(cfg.Slots.Backend),
		"storage": strings.ToLower(cfg.Storage.Type),
	})
	return a, nil
}

func (a *App) open(ctx context.Context, cfg Config) error {
	var err error
	if a.Blobs, err = storage.New(ctx, cfg.Storage); err != nil {
		return fmt.Errorf("failed to open blob storage: %w", err)
	}

	if strings.EqualFold(cfg.Slots.Backend, "database") {
		if err = a.openDatabase(ctx, cfg); err != nil {
			return err
		}
	}

	slots, closeSlots, err := kvstore.Open(cfg.Slots, kvstore.Deps{DB: a.DB, Blobs: a.Blobs})
	if err != nil {
		return fmt.Errorf("failed to open slots: %w", err)
	}
	a.Slots = slots
	a.closers = append(a.closers, closeSlots)

	if err = a.openStores(ctx); err != nil {
		return err
	}

	if a.Auth, err = auth.New(ctx, cfg.Auth, slots, a.Log, a.Now); err != nil {
		return fmt.Errorf("failed to create auth holder: %w", err)
	}
	return nil
}

func (a *App) openDatabase(ctx context.Context, cfg Config) error {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	a.DB = db
	a.closers = append(a.closers, sqlDB.Close)

	if cfg.AutoMigrate {
		if err := database.RunMigrations(sqlDB, cfg.Database.Driver); err != nil {
			return err
		}
	}
	a.Log.Info(ctx, "database connected", map[string]interface{}{
		"driver":   cfg.Database.Driver,
		"database": cfg.Database.Database,
	})
	return nil
}

func (a *App) openStores(ctx context.Context) error {
	var err error
	if a.TestCases, err = testcase.NewStore(ctx, a.Slots, a.Log); err != nil {
		return err
	}
	if a.TestSuites, err = testsuite.NewStore(ctx, a.Slots, a.Log, a.Now); err != nil {
		return err
	}
	if a.TestPlans, err = testplan.NewStore(ctx, a.Slots, a.Log); err != nil {
		return err
	}
	if a.BugReports, err = bugreport.NewStore(ctx, a.Slots, a.Log); err != nil {
		return err
	}
	if a.BugBashes, err = bugbash.NewStore(ctx, a.Slots, a.Log); err != nil {
		return err
	}
	if a.QAReports, err = qareport.NewStore(ctx, a.Slots, a.Log, a.Now); err != nil {
		return err
	}
	if a.RTM, err = rtm.NewStore(ctx, a.Slots, a.Log); err != nil {
		return err
	}
	if a.Users, err = user.NewStore(ctx, a.Slots, a.Log); err != nil {
		return err
	}
	return nil
}

// Close releases resources in reverse opening order.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
