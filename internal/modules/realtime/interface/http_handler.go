package transport

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"sduiGateway/internal/modules/realtime/domain"
	"sduiGateway/internal/modules/realtime/infrastructure"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewEntrypointStreamHandler exposes /ws/entrypoint/:key. Subscribers receive
// invalidation pings for that entrypoint; no session is required because the
// stream carries no content, only the hint to re-query.
func NewEntrypointStreamHandler(hub *infrastructure.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := strings.TrimSpace(c.Param("key"))
		if key == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "missing entrypoint key")
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Warn("ws upgrade failed", slog.String("key", key), slog.Any("error", err))
			return err
		}

		client := infrastructure.NewClient(hub, conn, 16)
		hub.AttachClient(client, []string{domain.EntrypointTopic(key)})
		go client.WritePump()
		go client.ReadPump()
		return nil
	}
}
