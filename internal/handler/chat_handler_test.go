package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resumeiq/internal/handler"
	"resumeiq/internal/service"
	"resumeiq/mocks"
)

func postChat(t *testing.T, h *handler.ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/httpchat", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.HTTPChat(c)
	return w
}

func TestChatHandler_HTTPChat_Success(t *testing.T) {
	mockSvc := new(mocks.MockChatService)
	h := handler.NewChatHandler(mockSvc)

	mockSvc.On("Reply", mock.Anything, "how do I negotiate salary?").
		Return("Start by researching market rates.", nil)

	w := postChat(t, h, `{"message":"how do I negotiate salary?"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Start by researching market rates.", resp.Response)
}

func TestChatHandler_HTTPChat_GeneratorFailureIs500(t *testing.T) {
	mockSvc := new(mocks.MockChatService)
	h := handler.NewChatHandler(mockSvc)

	mockSvc.On("Reply", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))

	w := postChat(t, h, `{"message":"hello"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestChatHandler_HTTPChat_MissingMessage(t *testing.T) {
	mockSvc := new(mocks.MockChatService)
	h := handler.NewChatHandler(mockSvc)

	w := postChat(t, h, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Reply", mock.Anything, mock.Anything)
}

// dialWebsocket spins up the chat route on a test server and connects.
func dialWebsocket(t *testing.T, chatSvc service.ChatService) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewChatHandler(chatSvc)
	r.GET("/chat", h.WebsocketChat)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/chat"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestChatHandler_Websocket_ResumePrefixShortCircuits(t *testing.T) {
	mockSvc := new(mocks.MockChatService)
	mockSvc.On("ChannelReply", mock.Anything, "resume:anything").
		Return(service.ResumeUploadHint, nil)

	conn := dialWebsocket(t, mockSvc)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("resume:anything")))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "Please upload your resume.", string(msg))
}

func TestChatHandler_Websocket_OneReplyPerMessageInOrder(t *testing.T) {
	mockSvc := new(mocks.MockChatService)
	mockSvc.On("ChannelReply", mock.Anything, "first").Return("reply one", nil)
	mockSvc.On("ChannelReply", mock.Anything, "second").Return("reply two", nil)

	conn := dialWebsocket(t, mockSvc)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("first")))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("second")))

	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "reply one", string(msg))

	_, msg, err = conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "reply two", string(msg))
}
