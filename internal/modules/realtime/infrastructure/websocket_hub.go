package infrastructure

import (
	"encoding/json"
	"log/slog"
	"sync"

	"sduiGateway/internal/modules/realtime/domain"
)

// Hub fans entrypoint updates out to subscribed websocket clients. Clients
// subscribe per entrypoint topic; a slow client is detached rather than
// allowed to stall the broadcast.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{topics: make(map[string]map[*Client]struct{})}
}

// AttachClient registers the client and subscribes it to the given topics.
func (h *Hub) AttachClient(c *Client, topics []string) {
	h.mu.Lock()
	for _, topic := range topics {
		if topic == "" {
			continue
		}
		if h.topics[topic] == nil {
			h.topics[topic] = make(map[*Client]struct{})
		}
		h.topics[topic][c] = struct{}{}
		c.subscribed[topic] = struct{}{}
	}
	h.mu.Unlock()
	slog.Info("ws client attached", slog.Any("topics", topics))
}

func (h *Hub) detachClient(c *Client) {
	h.mu.Lock()
	for topic := range c.subscribed {
		if subs, ok := h.topics[topic]; ok {
			delete(subs, c)
			if len(subs) == 0 {
				delete(h.topics, topic)
			}
		}
	}
	h.mu.Unlock()
	c.close()
	slog.Info("ws client detached")
}

// Broadcast delivers the update to every client subscribed to its entrypoint
// topic.
func (h *Hub) Broadcast(update domain.EntrypointUpdate) {
	data, err := json.Marshal(update)
	if err != nil {
		slog.Error("broadcast marshal error", slog.Any("error", err))
		return
	}

	topic := domain.EntrypointTopic(update.Key)
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.topics[topic]))
	for c := range h.topics[topic] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- data:
		default:
			go h.detachClient(c)
		}
	}
	slog.Debug("entrypoint update broadcast", slog.String("topic", topic), slog.Int("clients", len(clients)))
}
