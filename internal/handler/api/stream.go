package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"canteen-core/internal/notify"
	"canteen-core/internal/pkg/config"
	"canteen-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidOrderID       = errors.New("invalid order_id format")
	errInvalidCanteenID     = errors.New("invalid canteen_id format")
	errCanteenFeedForbidden = errors.New("canteen feed requires a staff role")
)

// StreamHandler serves live order lifecycle events over SSE. Delivery is
// best-effort: a reconnecting client re-reads current state via the REST
// surface instead of replaying missed events.
type StreamHandler struct {
	hub       *notify.Hub
	heartbeat time.Duration
}

func NewStreamHandler(hub *notify.Hub, cfg config.StreamConfig) *StreamHandler {
	return &StreamHandler{
		hub:       hub,
		heartbeat: cfg.HeartbeatInterval,
	}
}

// @Summary Stream order events
// @Description Server-sent events for order lifecycle changes
// @Tags orders
// @Produce text/event-stream
// @Security BearerAuth
// @Param order_id query string false "Follow one order"
// @Param canteen_id query string false "Follow a canteen feed (canteen staff only)"
// @Success 200 {string} string "event stream"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /orders/stream [get]
func (h *StreamHandler) StreamOrders(c *gin.Context) {
	viewer, ok := viewerFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	topics, err := h.buildTopics(c, viewer)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, errCanteenFeedForbidden) {
			status = http.StatusForbidden
		}
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	events, cancel := h.hub.Subscribe(topics)
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case event, open := <-events:
			if !open {
				return false
			}
			c.SSEvent(event.Kind, event)
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", time.Now().Unix())
			return true
		}
	})
}

func (h *StreamHandler) buildTopics(c *gin.Context, viewer queries.Viewer) ([]string, error) {
	// Default feed: everything addressed to the viewer.
	topics := []string{notify.UserTopic(viewer.ID)}

	if raw := c.Query("order_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errInvalidOrderID
		}
		topics = append(topics, notify.OrderTopic(id))
	}

	if raw := c.Query("canteen_id"); raw != "" {
		if !viewer.Role.CanManageOrders() {
			return nil, errCanteenFeedForbidden
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errInvalidCanteenID
		}
		topics = append(topics, notify.CanteenTopic(id))
	}

	return topics, nil
}
