package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSymptomAccepts(t *testing.T) {
	v := ValidateField("symptom", "cough")
	assert.True(t, v.OK)
	assert.Equal(t, "cough", v.Value)
	assert.Empty(t, v.Message)
}

func TestValidateSymptomRejectsShortValues(t *testing.T) {
	for _, raw := range []string{"ok", "a", "", "  ab  "} {
		v := ValidateField("symptom", raw)
		assert.False(t, v.OK, "value %q should be rejected", raw)
		assert.Empty(t, v.Value)
		assert.NotEmpty(t, v.Message)
	}
}

func TestValidateSymptomTrims(t *testing.T) {
	v := ValidateField("symptom", "  sore throat  ")
	assert.True(t, v.OK)
	assert.Equal(t, "sore throat", v.Value)
}

func TestValidateUnknownFieldAcceptsNonEmpty(t *testing.T) {
	v := ValidateField("report_location", "Centro")
	assert.True(t, v.OK)
	assert.Equal(t, "Centro", v.Value)

	v = ValidateField("report_location", "   ")
	assert.False(t, v.OK)
	assert.NotEmpty(t, v.Message)
}
