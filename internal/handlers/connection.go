package handlers

import (
	"context"
	"net/url"

	"github.com/envirosense/actionserver/pkg/domain"
)

const connectionRecipientSlot = "connection_recipient"

// SendConnectionRequest resolves a username to a user ID and sends a
// connection request. The two steps are strictly ordered: no request is
// posted unless the search returned a match.
type SendConnectionRequest struct {
	deps Deps
}

// NewSendConnectionRequest creates the connection-request handler.
func NewSendConnectionRequest(d Deps) *SendConnectionRequest {
	return &SendConnectionRequest{deps: d}
}

func (h *SendConnectionRequest) Name() string {
	return "action_send_connection_request"
}

func (h *SendConnectionRequest) Execute(ctx context.Context, conv *domain.Conversation) *domain.Result {
	token, ok := conv.AuthToken()
	if !ok {
		return needLogin(connectionRecipientSlot)
	}

	recipient, ok := conv.Slot(connectionRecipientSlot)
	if !ok {
		res := domain.NewResult()
		res.Utter("I seem to have missed the username. Who did you want to connect with?")
		return res
	}

	res := domain.NewResult()
	res.Emit(domain.ClearSlot(connectionRecipientSlot))

	var users []struct {
		ID string `json:"id"`
	}
	searchPath := "/users/search?username=" + url.QueryEscape(recipient)
	if err := h.deps.API.Get(ctx, searchPath, token, &users); err != nil {
		h.deps.logger().Error("failed to search user", "err", err, "username", recipient)
		res.Utterf("Sorry, I couldn't send the connection request to %s right now.", recipient)
		return res
	}

	if len(users) == 0 {
		res.Utterf("Sorry, I couldn't find a user named '%s'. Please check the username.", recipient)
		return res
	}
	recipientID := users[0].ID
	if recipientID == "" {
		res.Utter("Found the user, but couldn't get their ID.")
		return res
	}

	if err := h.deps.API.Post(ctx, "/connections/request/"+recipientID, token, nil, nil); err != nil {
		h.deps.logger().Error("failed to send connection request", "err", err, "recipient_id", recipientID)
		res.Utterf("Sorry, I couldn't send the connection request to %s right now.", recipient)
		return res
	}

	res.Utterf("Okay, I've sent a connection request to %s.", recipient)
	return res
}
