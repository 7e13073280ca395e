package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"qa-board-sync/internal/middleware"
)

// Stream godoc
// @Summary     Notification push stream
// @Description Long-lived text/event-stream delivering the caller's notifications.
// @Tags        Notification
// @Produce     text/event-stream
// @Success     200 {string} string "event stream"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/notifications/stream [GET]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.Status(http.StatusInternalServerError)
		return
	}

	ch, unsubscribe := h.hub.Subscribe(userID)
	// Remove the subscription the instant the connection goes away so
	// listeners never accumulate.
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.l.Infof(ctx, "push stream opened for user %s", userID)

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			h.l.Infof(ctx, "push stream closed for user %s", userID)
			return

		case n := <-ch:
			payload, err := json.Marshal(newNotificationResp(n))
			if err != nil {
				h.l.Errorf(ctx, "stream: marshal notification %s: %v", n.ID, err)
				continue
			}
			fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
			flusher.Flush()

		case <-heartbeat.C:
			// comment frame keeps intermediaries from closing the
			// connection as idle
			fmt.Fprint(c.Writer, ": heartbeat\n\n")
			flusher.Flush()
		}
	}
}
