package cmd

import (
	"context"

	"festeasy/config"
	"festeasy/database"
	"festeasy/services/auth"
	ai "festeasy/services/intelligence"
	"festeasy/services/store"
	"festeasy/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// app is everything a command needs, built once from config.
type app struct {
	cfg      config.Config
	logger   *zap.Logger
	store    *store.Store
	sessions *auth.SessionService
	planner  *ai.DefaultPlannerService
	workflow *ai.Workflow
	monitor  *utils.HealthMonitor

	closers []func() error
}

func newApp(ctx context.Context, cfg config.Config, logger *zap.Logger) *app {
	a := &app{cfg: cfg, logger: logger}

	providers := database.SeedProviders()
	a.store = store.New(providers, database.SeedBookingRequests())
	a.store.Subscribe(func(ev store.Event) {
		logger.Debug("state changed",
			zap.String("kind", string(ev.Kind)),
			zap.Uint64("version", ev.Version),
			zap.Int("cartItems", len(ev.State.Cart)))
	})

	a.sessions = auth.NewSessionService(auth.NewStubAuthenticator(), a.store, logger)

	var completer ai.Completer
	if cfg.PlannerEnabled() {
		client, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("AI planner disabled", zap.Error(err))
		} else {
			completer = client
			a.closers = append(a.closers, client.Close)
		}
	} else {
		logger.Info("GEMINI_API_KEY not set, AI planner disabled")
	}
	a.planner = ai.NewDefaultPlannerService(completer, a.store, cfg.PlannerTimeout, logger)

	planStore, planStoreName, redisClient := a.newPlanStore()
	a.workflow = ai.NewWorkflow(a.planner, planStore, a.store, logger)
	a.monitor = utils.NewHealthMonitor(a.planner.Available(), planStoreName, redisClient)
	return a
}

// newPlanStore falls back to memory when Redis was requested but cannot be
// reached.
func (a *app) newPlanStore() (ai.PlanStore, string, *redis.Client) {
	if a.cfg.PlanStore == config.PlanStoreRedis {
		client, err := utils.InitPlanCache(a.cfg)
		if err == nil {
			a.closers = append(a.closers, client.Close)
			return ai.NewRedisPlanStore(client, a.cfg.PlanTTL), config.PlanStoreRedis, client
		}
		a.logger.Warn("Redis plan store unavailable, keeping plans in memory", zap.Error(err))
	}
	return ai.NewMemoryPlanStore(a.cfg.PlanTTL), config.PlanStoreMemory, nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("close failed", zap.Error(err))
		}
	}
}
