// Package domain holds the core value types exchanged between the
// dialogue engine, the dispatcher, and the action handlers: the per-turn
// Conversation snapshot, the Result a handler produces, and the Message
// and Event values it is built from.
package domain
