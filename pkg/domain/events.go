package domain

import "encoding/json"

// EventType discriminates the dialogue-state mutations a handler can emit.
type EventType string

const (
	// EventSlotSet sets or clears a named slot.
	EventSlotSet EventType = "slot"

	// EventRewind reverts the last user utterance so it does not
	// influence the dialogue policy.
	EventRewind EventType = "rewind"
)

// Event is a dialogue-state mutation produced by a handler and applied by
// the external dialogue engine. The action server never applies events
// itself.
type Event struct {
	Type EventType
	// Name is the slot name for EventSlotSet.
	Name string
	// Value is the new slot value for EventSlotSet; nil clears the slot.
	Value any
}

// SetSlot returns an event filling a slot with the given value.
func SetSlot(name string, value any) Event {
	return Event{Type: EventSlotSet, Name: name, Value: value}
}

// ClearSlot returns an event resetting a slot to empty.
func ClearSlot(name string) Event {
	return Event{Type: EventSlotSet, Name: name, Value: nil}
}

// RevertUserUtterance returns an event that rewinds the last user message.
func RevertUserUtterance() Event {
	return Event{Type: EventRewind}
}

type slotEventWire struct {
	Event string `json:"event"`
	Name  string `json:"name"`
	Value any    `json:"value"`
}

type bareEventWire struct {
	Event string `json:"event"`
}

// MarshalJSON encodes the event in the dialogue engine's wire format.
func (e Event) MarshalJSON() ([]byte, error) {
	if e.Type == EventSlotSet {
		return json.Marshal(slotEventWire{Event: string(e.Type), Name: e.Name, Value: e.Value})
	}
	return json.Marshal(bareEventWire{Event: string(e.Type)})
}

// UnmarshalJSON decodes an event from the dialogue engine's wire format.
func (e *Event) UnmarshalJSON(data []byte) error {
	var wire slotEventWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	e.Type = EventType(wire.Event)
	e.Name = wire.Name
	e.Value = wire.Value
	return nil
}
