package domain

// Entity is a single value extracted from free text by the NLU layer,
// in extraction order.
type Entity struct {
	Type  string `json:"entity"`
	Value string `json:"value"`
}

// Conversation is an immutable snapshot of the dialogue state for one turn.
// It is constructed by the inbound adapter (or the embedding host), passed
// read-only into handlers, and discarded after the turn.
type Conversation struct {
	// Sender identifies the conversation session.
	Sender string

	// Text is the latest user utterance, empty if the turn carried none.
	Text string

	// Entities holds the values extracted from Text, in extraction order.
	Entities []Entity

	// Slots holds the conversational state collected across turns.
	// Absent and cleared slots are simply missing from the map.
	Slots map[string]string

	// Token is the bearer credential carried in the message metadata,
	// empty when the user is not logged in. Presence alone gates access;
	// validity is the backend's concern.
	Token string
}

// AuthToken returns the bearer credential and whether one is present.
func (c *Conversation) AuthToken() (string, bool) {
	return c.Token, c.Token != ""
}

// EntityValues returns all extracted values of the given entity type,
// preserving extraction order. The result may be empty.
func (c *Conversation) EntityValues(entityType string) []string {
	var values []string
	for _, e := range c.Entities {
		if e.Type == entityType {
			values = append(values, e.Value)
		}
	}
	return values
}

// Slot returns the value of a named slot and whether it is filled.
// An empty value counts as unfilled.
func (c *Conversation) Slot(name string) (string, bool) {
	v, ok := c.Slots[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
