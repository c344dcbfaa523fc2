package controllers

import (
	"io"

	"portfolio-be/internal/broadcast"

	"github.com/gin-gonic/gin"
)

type EventsController struct {
	hub *broadcast.Hub
}

func NewEventsController(hub *broadcast.Hub) *EventsController {
	return &EventsController{
		hub: hub,
	}
}

// Stream handles GET /events - delivers broadcast messages over SSE until
// the client disconnects.
func (ec *EventsController) Stream(c *gin.Context) {
	id, messages := ec.hub.Subscribe()
	defer ec.hub.Unsubscribe(id)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-messages:
			if !ok {
				return false
			}
			c.SSEvent("message", msg)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
