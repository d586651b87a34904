package domain

// Response template identifiers rendered by the external dialogue engine.
const (
	TemplateOutOfScope        = "utter_out_of_scope"
	TemplateModerationWarning = "utter_moderation_warning"
	TemplateNeedLogin         = "utter_need_login"
	TemplateHealthEffects     = "utter_health_effects"
)

// Message is a single user-facing response: either a reference to a
// template rendered by the dialogue engine, or literal text. Exactly one
// of the two fields is set.
type Message struct {
	Template string `json:"response,omitempty"`
	Text     string `json:"text,omitempty"`
}

// Templated returns a message referencing an externally rendered template.
func Templated(name string) Message {
	return Message{Template: name}
}

// Text returns a literal text message.
func Text(text string) Message {
	return Message{Text: text}
}
