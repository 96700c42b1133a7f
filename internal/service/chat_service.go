package service

import (
	"context"
	"strings"

	"resumeiq/internal/insight"
	"resumeiq/internal/port"
)

// ResumePrefix short-circuits a chat message to the upload hint without
// contacting the insight generator.
const ResumePrefix = "resume:"

// ResumeUploadHint is the fixed reply for ResumePrefix messages.
const ResumeUploadHint = "Please upload your resume."

// ChatService produces career-advisor chat replies.
type ChatService interface {
	// Reply sends the message to the insight generator and returns its raw
	// reply unmodified. Generator failures are returned to the caller.
	Reply(ctx context.Context, message string) (string, error)
	// ChannelReply is Reply with the chat-channel prefix rule applied:
	// messages starting with ResumePrefix yield ResumeUploadHint directly.
	ChannelReply(ctx context.Context, message string) (string, error)
}

type chatService struct {
	generator port.InsightGenerator
}

// NewChatService creates a ChatService.
func NewChatService(generator port.InsightGenerator) ChatService {
	return &chatService{generator: generator}
}

func (s *chatService) Reply(ctx context.Context, message string) (string, error) {
	return s.generator.Generate(ctx, insight.BuildChatPrompt(message))
}

func (s *chatService) ChannelReply(ctx context.Context, message string) (string, error) {
	if strings.HasPrefix(message, ResumePrefix) {
		return ResumeUploadHint, nil
	}
	return s.Reply(ctx, message)
}
