package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventWireFormat(t *testing.T) {
	set, err := json.Marshal(SetSlot("symptom", "cough"))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"event":"slot","name":"symptom","value":"cough"}`, string(set))

	cleared, err := json.Marshal(ClearSlot("symptom"))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"event":"slot","name":"symptom","value":null}`, string(cleared))

	rewind, err := json.Marshal(RevertUserUtterance())
	assert.NoError(t, err)
	assert.JSONEq(t, `{"event":"rewind"}`, string(rewind))
}

func TestEventRoundTrip(t *testing.T) {
	var e Event
	err := json.Unmarshal([]byte(`{"event":"slot","name":"report_location","value":"Centro"}`), &e)
	assert.NoError(t, err)
	assert.Equal(t, EventSlotSet, e.Type)
	assert.Equal(t, "report_location", e.Name)
	assert.Equal(t, "Centro", e.Value)
}

func TestConversationAccessors(t *testing.T) {
	conv := &Conversation{
		Text: "what about co and pm10",
		Entities: []Entity{
			{Type: "pollutant", Value: "co"},
			{Type: "location", Value: "Centro"},
			{Type: "pollutant", Value: "pm10"},
		},
		Slots: map[string]string{"symptom": "cough", "empty": ""},
		Token: "jwt-token",
	}

	token, ok := conv.AuthToken()
	assert.True(t, ok)
	assert.Equal(t, "jwt-token", token)

	assert.Equal(t, []string{"co", "pm10"}, conv.EntityValues("pollutant"))
	assert.Empty(t, conv.EntityValues("weather"))

	v, ok := conv.Slot("symptom")
	assert.True(t, ok)
	assert.Equal(t, "cough", v)

	_, ok = conv.Slot("empty")
	assert.False(t, ok)
	_, ok = conv.Slot("missing")
	assert.False(t, ok)

	_, ok = (&Conversation{}).AuthToken()
	assert.False(t, ok)
}

func TestResultCollectsInOrder(t *testing.T) {
	res := NewResult()
	res.Utter("first")
	res.Utterf("second %d", 2)
	res.UtterTemplate(TemplateNeedLogin)
	res.Emit(ClearSlot("symptom"), RevertUserUtterance())

	assert.Equal(t, []Message{
		Text("first"),
		Text("second 2"),
		Templated(TemplateNeedLogin),
	}, res.Messages)
	assert.Len(t, res.Events, 2)
	assert.Equal(t, EventRewind, res.Events[1].Type)
}
