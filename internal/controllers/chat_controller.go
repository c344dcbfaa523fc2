package controllers

import (
	"log"
	"net/http"
	"strings"

	"portfolio-be/internal/broadcast"
	"portfolio-be/internal/middleware"
	"portfolio-be/internal/models"
	"portfolio-be/internal/service"
	"portfolio-be/internal/session"

	"github.com/gin-gonic/gin"
)

// chatRoom is the single conversation thread replies are broadcast to.
const chatRoom = "main"

type ChatController struct {
	chatService    service.ChatService
	sessions       session.Store
	hub            *broadcast.Hub
	fallbackPrompt string
	maxHistory     int
}

func NewChatController(chatService service.ChatService, sessions session.Store, hub *broadcast.Hub, fallbackPrompt string, maxHistory int) *ChatController {
	return &ChatController{
		chatService:    chatService,
		sessions:       sessions,
		hub:            hub,
		fallbackPrompt: fallbackPrompt,
		maxHistory:     maxHistory,
	}
}

// Chat handles POST /chat - relays the message to the completion API,
// updates the capped session history, and broadcasts the reply.
func (cc *ChatController) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Message is required",
		})
		return
	}

	systemPrompt := service.BuildSystemPrompt(req.PageContent, cc.fallbackPrompt)

	ctx := c.Request.Context()
	sid := middleware.SessionID(c)
	history := cc.sessions.History(ctx, sid)

	result := cc.chatService.Send(message, history, systemPrompt)
	if result.Success {
		history = append(history,
			models.ChatTurn{Role: "user", Content: message},
			models.ChatTurn{Role: "assistant", Content: result.Response},
		)
		history = service.CapHistory(history, cc.maxHistory)
		if err := cc.sessions.SetHistory(ctx, sid, history); err != nil {
			log.Printf("Warning: failed to persist chat history: %v", err)
		}

		cc.hub.Publish(broadcast.Message{
			Sender: "ai",
			Room:   chatRoom,
			Text:   result.Response,
		})
	}

	c.JSON(http.StatusOK, result)
}
