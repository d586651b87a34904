package domain

import "fmt"

// Result collects the outcome of one handler invocation: the ordered
// user-facing messages and the ordered dialogue-state events. A handler
// always returns a well-formed Result, never nil; both sequences default
// to empty.
type Result struct {
	Messages []Message
	Events   []Event
}

// NewResult returns an empty result.
func NewResult() *Result {
	return &Result{}
}

// Utter appends a literal text message.
func (r *Result) Utter(text string) {
	r.Messages = append(r.Messages, Text(text))
}

// Utterf appends a formatted literal text message.
func (r *Result) Utterf(format string, args ...any) {
	r.Messages = append(r.Messages, Text(fmt.Sprintf(format, args...)))
}

// UtterTemplate appends a templated-response reference.
func (r *Result) UtterTemplate(name string) {
	r.Messages = append(r.Messages, Templated(name))
}

// Emit appends dialogue-state events.
func (r *Result) Emit(events ...Event) {
	r.Events = append(r.Events, events...)
}
