package handler

import (
	"context"

	"sduiGateway/internal/modules/realtime/domain"
	"sduiGateway/internal/modules/realtime/infrastructure"
)

// EntrypointUpdatedHandler forwards consumed entrypoint updates to the
// websocket hub so subscribed mobile clients re-query their sections.
type EntrypointUpdatedHandler struct {
	Hub *infrastructure.Hub
}

func NewEntrypointUpdatedHandler(hub *infrastructure.Hub) *EntrypointUpdatedHandler {
	return &EntrypointUpdatedHandler{Hub: hub}
}

func (h *EntrypointUpdatedHandler) Handle(_ context.Context, update domain.EntrypointUpdate) error {
	h.Hub.Broadcast(update)
	return nil
}
