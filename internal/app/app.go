package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"resumemash/internal/config"
	"resumemash/internal/services"
	"resumemash/internal/store"
	"resumemash/internal/store/modelstore"
	"resumemash/internal/store/primary"
)

// App holds the wired dependency graph. Everything is passed explicitly;
// there is no ambient process-wide model state.
type App struct {
	Config *config.Config

	UserStore    store.UserStore
	ResumeStore  store.ResumeStore
	SwipeStore   store.SwipeStore
	TrainingData store.TrainingDataStore
	ModelStore   store.ModelStore
	JobClient    store.JobClient

	UserService     *services.UserService
	ResumeService   *services.ResumeService
	SwipeService    *services.SwipeService
	TrainingService *services.TrainingService
	ScoringService  *services.ScoringService
	FeedbackService *services.FeedbackService
	FieldService    *services.FieldService

	primaryStore *primary.Store
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	app := &App{Config: cfg}

	if err := app.initPrimaryStore(ctx); err != nil {
		return nil, err
	}
	if err := app.initModelStore(); err != nil {
		app.cleanupPartialInit()
		return nil, err
	}
	app.initJobClient()
	app.initServices()

	log.Debug("Application initialization complete")
	return app, nil
}

// Close releases store and queue connections.
func (a *App) Close() {
	if a.JobClient != nil {
		if err := a.JobClient.Close(); err != nil {
			log.Warnf("Closing job client: %v", err)
		}
	}
	if a.primaryStore != nil {
		if err := a.primaryStore.Close(); err != nil {
			log.Warnf("Closing primary store: %v", err)
		}
	}
}

// Ping checks database connectivity.
func (a *App) Ping(ctx context.Context) error {
	return a.primaryStore.Ping(ctx)
}

// --- Private Helper Methods ---

func (a *App) initPrimaryStore(ctx context.Context) error {
	ps, err := primary.NewStore(ctx, a.Config.Database.Driver, a.Config.Database.DSN)
	if err != nil {
		return fmt.Errorf("init primary store: %w", err)
	}
	a.primaryStore = ps
	a.UserStore = ps
	a.ResumeStore = ps
	a.SwipeStore = ps
	a.TrainingData = ps
	return nil
}

func (a *App) initModelStore() error {
	ms, err := modelstore.NewFileStore(a.Config.Models.Dir)
	if err != nil {
		return fmt.Errorf("init model store: %w", err)
	}
	a.ModelStore = ms
	return nil
}

func (a *App) initJobClient() {
	cfg := a.Config
	a.JobClient = store.NewAsynqJobClient(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
}

func (a *App) initServices() {
	cfg := a.Config
	a.UserService = services.NewUserService(a.UserStore)
	a.ResumeService = services.NewResumeService(a.ResumeStore)
	a.TrainingService = services.NewTrainingService(
		a.TrainingData, a.ModelStore, cfg.Training.MaxFeatures, cfg.Training.MaxIter)
	a.ScoringService = services.NewScoringService(a.ModelStore)
	a.SwipeService = services.NewSwipeService(
		a.SwipeStore, a.ResumeStore, a.TrainingService,
		services.RetrainPolicy{Threshold: cfg.Training.RetrainThreshold})
	a.FeedbackService = services.NewFeedbackService(a.ResumeStore, a.ScoringService)
	a.FieldService = services.NewFieldService(a.ResumeStore, a.SwipeStore, a.ModelStore)
}

func (a *App) cleanupPartialInit() {
	if a.primaryStore != nil {
		a.primaryStore.Close()
	}
}
