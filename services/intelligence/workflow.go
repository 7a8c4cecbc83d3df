package ai

import (
	"context"
	"errors"
	"fmt"

	"festeasy/models"

	"go.uber.org/zap"
)

// CartReplacer is the store mutation used when a plan is confirmed.
type CartReplacer interface {
	CatalogReader
	ReplaceCart(services []models.Service)
}

// Workflow ties generation, reconciliation, the pending plan and cart
// confirmation together for one session key.
type Workflow struct {
	Planner PlannerService
	Plans   PlanStore
	Store   CartReplacer
	Logger  *zap.Logger
}

func NewWorkflow(planner PlannerService, plans PlanStore, store CartReplacer, logger *zap.Logger) *Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workflow{Planner: planner, Plans: plans, Store: store, Logger: logger}
}

// Propose generates a plan, reconciles it against the live catalog and keeps
// it as the session's pending plan.
func (w *Workflow) Propose(ctx context.Context, sessionKey string, req models.PlanRequest) (*models.ReconciledPlan, error) {
	plan, err := w.Planner.Generate(ctx, req.Budget, req.Location)
	if err != nil {
		return nil, err
	}

	reconciled := Reconcile(req.Budget, req.Location, plan, w.Store.Providers(""))
	if dropped := len(plan.Plan) - len(reconciled.Lines); dropped > 0 {
		w.Logger.Debug("plan entries not in catalog", zap.Int("dropped", dropped))
	}
	if len(reconciled.Warnings) > 0 {
		w.Logger.Warn("plan misses constraints",
			zap.String("session", sessionKey),
			zap.Int("warnings", len(reconciled.Warnings)))
	}

	if err := w.Plans.Set(ctx, sessionKey, &reconciled); err != nil {
		w.Logger.Error("failed to store pending plan", zap.Error(err))
	}
	return &reconciled, nil
}

// Pending returns the session's unconfirmed plan, re-reconciled against the
// current catalog.
func (w *Workflow) Pending(ctx context.Context, sessionKey string) (*models.ReconciledPlan, error) {
	stored, err := w.Plans.Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	fresh := w.refresh(stored)
	return &fresh, nil
}

// Confirm replaces the cart with the pending plan's services and forgets the
// plan.
func (w *Workflow) Confirm(ctx context.Context, sessionKey string) (*models.ReconciledPlan, error) {
	stored, err := w.Plans.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, ErrNoPendingPlan) {
			return nil, err
		}
		return nil, fmt.Errorf("load pending plan: %w", err)
	}

	fresh := w.refresh(stored)
	w.Store.ReplaceCart(Services(fresh))

	if err := w.Plans.Clear(ctx, sessionKey); err != nil {
		w.Logger.Warn("failed to clear pending plan", zap.Error(err))
	}
	return &fresh, nil
}

// Discard drops the pending plan without touching the cart.
func (w *Workflow) Discard(ctx context.Context, sessionKey string) error {
	return w.Plans.Clear(ctx, sessionKey)
}

func (w *Workflow) refresh(stored *models.ReconciledPlan) models.ReconciledPlan {
	plan := &models.PartyPlan{
		Plan:          stored.Items,
		Justification: stored.Justification,
		TotalCost:     stored.TotalCost,
	}
	return Reconcile(stored.Budget, stored.Location, plan, w.Store.Providers(""))
}
