package flow

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/careerboost/internal/model"
)

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is one turn of a conversational flow.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", model.ErrInvalidInput, field)
	}
	return nil
}

func validateHistory(history []Message) error {
	for i, m := range history {
		if m.Role != RoleUser && m.Role != RoleModel {
			return fmt.Errorf("%w: history[%d].role must be %q or %q", model.ErrInvalidInput, i, RoleUser, RoleModel)
		}
		if err := required(fmt.Sprintf("history[%d].content", i), m.Content); err != nil {
			return err
		}
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
