package handlers_test

import (
	"context"
	"testing"

	"github.com/envirosense/actionserver/internal/handlers"
	"github.com/envirosense/actionserver/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidateSymptomFormAccepts(t *testing.T) {
	h := handlers.NewValidateSymptomForm(newDeps(nil))

	res := h.Execute(context.Background(), &domain.Conversation{
		Slots: map[string]string{"symptom": "cough"},
	})

	assert.Empty(t, res.Messages)
	assert.Equal(t, []domain.Event{domain.SetSlot("symptom", "cough")}, res.Events)
}

func TestValidateSymptomFormRejectsShortValue(t *testing.T) {
	h := handlers.NewValidateSymptomForm(newDeps(nil))

	res := h.Execute(context.Background(), &domain.Conversation{
		Slots: map[string]string{"symptom": "ok"},
	})

	assert.Equal(t, []domain.Message{domain.Text("That doesn't seem like a valid symptom. Please describe it.")}, res.Messages)
	assert.Equal(t, []domain.Event{domain.ClearSlot("symptom")}, res.Events)
}

func TestValidateSymptomFormWithoutValue(t *testing.T) {
	h := handlers.NewValidateSymptomForm(newDeps(nil))

	res := h.Execute(context.Background(), &domain.Conversation{})

	assert.Empty(t, res.Messages)
	assert.Empty(t, res.Events)
}
