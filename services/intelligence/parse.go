package ai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"festeasy/models"

	"github.com/go-playground/validator/v10"
)

type planResponse struct {
	Plan          []models.PlanItem `json:"plan" validate:"required,dive"`
	Justification *string           `json:"justification" validate:"required"`
	TotalCost     *float64          `json:"totalCost" validate:"required"`
}

var responseValidator = validator.New()

// ParsePlan decodes the model output and checks it has the expected shape.
// Only structure is checked; budget and category rules are left to the model.
func ParsePlan(raw string) (*models.PartyPlan, error) {
	text := stripCodeFence(raw)
	if text == "" {
		return nil, errors.New("empty response")
	}

	var resp planResponse
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	if dec.More() {
		return nil, errors.New("unexpected data after plan object")
	}
	if err := responseValidator.Struct(resp); err != nil {
		return nil, fmt.Errorf("validate plan: %w", err)
	}

	return &models.PartyPlan{
		Plan:          resp.Plan,
		Justification: *resp.Justification,
		TotalCost:     *resp.TotalCost,
	}, nil
}

// stripCodeFence removes a ```json ... ``` wrapper some models add even in
// JSON mode.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
