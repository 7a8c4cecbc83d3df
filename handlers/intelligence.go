package handlers

import (
	"errors"
	"net/http"

	"festeasy/models"
	ai "festeasy/services/intelligence"
	"festeasy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const guestSessionKey = "guest"

type PlannerHandler struct {
	Workflow    *ai.Workflow
	CurrentUser func() *models.User
	CartView    func() models.CartView
}

func NewPlannerHandler(workflow *ai.Workflow, currentUser func() *models.User, cartView func() models.CartView) *PlannerHandler {
	return &PlannerHandler{Workflow: workflow, CurrentUser: currentUser, CartView: cartView}
}

func (h *PlannerHandler) sessionKey() string {
	if u := h.CurrentUser(); u != nil {
		return u.ID
	}
	return guestSessionKey
}

// plannerStatus maps planner failures to HTTP status codes.
func plannerStatus(err error) int {
	switch {
	case errors.Is(err, ai.ErrPlannerUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ai.ErrInvalidPlanRequest):
		return http.StatusBadRequest
	case errors.Is(err, ai.ErrPlanInProgress):
		return http.StatusConflict
	case errors.Is(err, ai.ErrNoPendingPlan):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// Generate handles POST /api/planner/plan.
func (h *PlannerHandler) Generate(c *gin.Context) {
	logger := getLogger(c)

	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, ai.ErrInvalidPlanRequest.Message, err.Error())
		return
	}

	plan, err := h.Workflow.Propose(c.Request.Context(), h.sessionKey(), req)
	if err != nil {
		logger.Error("Generate plan failed", zap.Error(err))
		var pe *ai.PlanError
		code := ""
		if errors.As(err, &pe) {
			code = pe.Code
		}
		utils.JSONError(c, plannerStatus(err), ai.UserMessage(err), code)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Pending handles GET /api/planner/plan.
func (h *PlannerHandler) Pending(c *gin.Context) {
	plan, err := h.Workflow.Pending(c.Request.Context(), h.sessionKey())
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Confirm handles POST /api/planner/confirm: the pending plan's services
// replace the cart.
func (h *PlannerHandler) Confirm(c *gin.Context) {
	plan, err := h.Workflow.Confirm(c.Request.Context(), h.sessionKey())
	if err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan, "cart": h.CartView()})
}

// Discard handles DELETE /api/planner/plan.
func (h *PlannerHandler) Discard(c *gin.Context) {
	if err := h.Workflow.Discard(c.Request.Context(), h.sessionKey()); err != nil {
		h.respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PlannerHandler) respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, ai.ErrNoPendingPlan) {
		utils.JSONError(c, http.StatusNotFound, "No hay un plan pendiente", "")
		return
	}
	getLogger(c).Error("pending plan store failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "No se pudo recuperar el plan", err.Error())
}
