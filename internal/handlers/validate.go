package handlers

import (
	"context"

	"github.com/envirosense/actionserver/internal/forms"
	"github.com/envirosense/actionserver/pkg/domain"
)

// ValidateSymptomForm runs the per-field validators for the symptom form.
// The dialogue engine invokes it while the form is collecting slots; a
// rejected value is cleared so the form re-prompts.
type ValidateSymptomForm struct {
	deps Deps
}

// NewValidateSymptomForm creates the symptom-form validation action.
func NewValidateSymptomForm(d Deps) *ValidateSymptomForm {
	return &ValidateSymptomForm{deps: d}
}

func (h *ValidateSymptomForm) Name() string {
	return "validate_symptom_form"
}

func (h *ValidateSymptomForm) Execute(ctx context.Context, conv *domain.Conversation) *domain.Result {
	res := domain.NewResult()

	raw, ok := conv.Slot(symptomSlot)
	if !ok {
		// Nothing collected yet; leave the form to keep prompting.
		return res
	}

	v := forms.ValidateField(symptomSlot, raw)
	if !v.OK {
		h.deps.logger().Debug("rejected form value", "field", symptomSlot)
		res.Utter(v.Message)
		res.Emit(domain.ClearSlot(symptomSlot))
		return res
	}

	res.Emit(domain.SetSlot(symptomSlot, v.Value))
	return res
}
