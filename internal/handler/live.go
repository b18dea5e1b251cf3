package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// LiveHandler streams the sun status over a websocket, one frame per
// interval, until the client goes away.
type LiveHandler struct {
	service  SunService
	interval time.Duration
	upgrader websocket.Upgrader
}

// NewLiveHandler creates a new live status handler. interval <= 0 selects
// one second, the cadence the chart page expects.
func NewLiveHandler(svc SunService, interval time.Duration) *LiveHandler {
	if interval <= 0 {
		interval = time.Second
	}
	return &LiveHandler{
		service:  svc,
		interval: interval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Live handles GET /api/live requests
func (h *LiveHandler) Live(c *gin.Context) {
	place := c.Query("place")
	if place == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'place'"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	// Read pump: we expect no client messages, only the close.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Debug().Err(err).Msg("websocket closed")
				}
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		status, err := h.service.Status(c.Request.Context(), place)
		if err != nil {
			conn.WriteJSON(gin.H{"error": err.Error()})
			return
		}
		if err := conn.WriteJSON(status); err != nil {
			return
		}

		select {
		case <-done:
			return
		case <-ticker.C:
		}
	}
}
