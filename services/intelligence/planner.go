package ai

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"festeasy/models"

	"go.uber.org/zap"
)

// Completer sends a prompt to a remote model and returns its raw text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CatalogReader gives the planner a read-only view of providers.
type CatalogReader interface {
	Providers(category models.ServiceCategory) []models.Provider
}

// PlannerService generates party plans.
type PlannerService interface {
	Available() bool
	Generate(ctx context.Context, budget float64, location string) (*models.PartyPlan, error)
}

// DefaultPlannerService implements PlannerService on top of a Completer. A nil
// Completer means the AI credential is missing and every call fails fast.
type DefaultPlannerService struct {
	Completer Completer
	Catalog   CatalogReader
	Timeout   time.Duration
	Logger    *zap.Logger

	inFlight atomic.Bool
}

func NewDefaultPlannerService(completer Completer, catalog CatalogReader, timeout time.Duration, logger *zap.Logger) *DefaultPlannerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultPlannerService{
		Completer: completer,
		Catalog:   catalog,
		Timeout:   timeout,
		Logger:    logger,
	}
}

// Available reports whether a remote client is configured.
func (s *DefaultPlannerService) Available() bool {
	return s.Completer != nil
}

// Generate asks the remote model for a plan within budget near location. The
// result is returned as the model produced it.
func (s *DefaultPlannerService) Generate(ctx context.Context, budget float64, location string) (*models.PartyPlan, error) {
	if !s.Available() {
		return nil, ErrPlannerUnavailable
	}
	location = strings.TrimSpace(location)
	if budget <= 0 || location == "" {
		return nil, ErrInvalidPlanRequest
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrPlanInProgress
	}
	defer s.inFlight.Store(false)

	prompt, err := BuildPrompt(budget, location, s.Catalog.Providers(""))
	if err != nil {
		return nil, newParseError(err)
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := s.Completer.Complete(ctx, prompt)
	if err != nil {
		s.Logger.Error("plan generation failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return nil, newRemoteError(err)
	}

	plan, err := ParsePlan(raw)
	if err != nil {
		s.Logger.Warn("plan response rejected", zap.Error(err), zap.Int("bytes", len(raw)))
		return nil, newParseError(err)
	}

	s.Logger.Info("plan generated",
		zap.Float64("budget", budget),
		zap.String("location", location),
		zap.Int("items", len(plan.Plan)),
		zap.Float64("totalCost", plan.TotalCost),
		zap.Duration("elapsed", time.Since(start)))
	return plan, nil
}
