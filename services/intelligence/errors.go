package ai

import (
	"errors"
	"fmt"
)

const (
	CodeUnavailable    = "planner_unavailable"
	CodeInvalidRequest = "invalid_request"
	CodeInProgress     = "plan_in_progress"
	CodeRemote         = "remote_error"
	CodeParse          = "parse_error"
)

// PlanError is the single error type surfaced by the planner. Message is the
// user-facing text; Err keeps the underlying cause.
type PlanError struct {
	Code    string
	Message string
	Err     error
}

func (e *PlanError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PlanError) Unwrap() error {
	return e.Err
}

// Is matches on Code so sentinel comparisons work for wrapped instances.
func (e *PlanError) Is(target error) bool {
	var t *PlanError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrPlannerUnavailable = &PlanError{Code: CodeUnavailable, Message: "El planificador con IA no está disponible en este momento."}
	ErrInvalidPlanRequest = &PlanError{Code: CodeInvalidRequest, Message: "Indica un presupuesto mayor a cero y una ubicación."}
	ErrPlanInProgress     = &PlanError{Code: CodeInProgress, Message: "Ya estamos generando un plan, espera un momento."}
	ErrNoPendingPlan      = errors.New("no pending plan")
)

const generationFailedMessage = "No se pudo generar el plan. Inténtalo de nuevo más tarde."

func newRemoteError(err error) *PlanError {
	return &PlanError{Code: CodeRemote, Message: generationFailedMessage, Err: err}
}

func newParseError(err error) *PlanError {
	return &PlanError{Code: CodeParse, Message: generationFailedMessage, Err: err}
}

// UserMessage extracts the user-facing text from any planner error.
func UserMessage(err error) string {
	var pe *PlanError
	if errors.As(err, &pe) {
		return pe.Message
	}
	return generationFailedMessage
}
