package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"resumeiq/internal/service"
)

// ChatHandler handles the HTTP and websocket chat endpoints.
type ChatHandler struct {
	chatService service.ChatService
	upgrader    websocket.Upgrader
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin checks are handled by the CORS layer.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ChatRequest is the POST /httpchat request body.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the POST /httpchat response body.
type ChatResponse struct {
	Response string `json:"response"`
}

// HTTPChat handles POST /httpchat
// @Summary One-shot career-advisor chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "User message"
// @Success 200 {object} ChatResponse
// @Failure 500 {object} ErrorResponse "Insight generator failure"
// @Router /httpchat [post]
func (h *ChatHandler) HTTPChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "message field is required")
		return
	}

	reply, err := h.chatService.Reply(c.Request.Context(), req.Message)
	if err != nil {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] chatHandler.HTTPChat: generator failed: %v", requestID, err)
		RespondError(c, http.StatusInternalServerError, "CHAT_FAILED", "could not generate a reply")
		return
	}
	c.JSON(http.StatusOK, ChatResponse{Response: reply})
}

// WebsocketChat handles GET /chat: a long-lived bidirectional channel that
// answers one text frame per received frame, in receipt order. Client
// disconnect is normal termination.
func (h *ChatHandler) WebsocketChat(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("chatHandler.WebsocketChat: upgrade failed: %v", err)
		return
	}
	defer func() { _ = conn.Close() }()

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("chatHandler.WebsocketChat: read failed: %v", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		reply, err := h.chatService.ChannelReply(c.Request.Context(), string(msg))
		if err != nil {
			log.Printf("chatHandler.WebsocketChat: generator failed: %v", err)
			reply = "Sorry, I could not generate a reply. Please try again."
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			return
		}
	}
}
