package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resumeiq/internal/service"
	"resumeiq/mocks"
)

func TestChatService_Reply_PassesThroughRawReply(t *testing.T) {
	gen := new(mocks.MockInsightGenerator)
	svc := service.NewChatService(gen)

	gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "career advisor") && strings.Contains(p, "how do I improve my resume?")
	})).Return("Tailor it to each job posting.", nil)

	reply, err := svc.Reply(context.Background(), "how do I improve my resume?")
	require.NoError(t, err)
	assert.Equal(t, "Tailor it to each job posting.", reply)
}

func TestChatService_Reply_PropagatesGeneratorError(t *testing.T) {
	gen := new(mocks.MockInsightGenerator)
	svc := service.NewChatService(gen)

	gen.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))

	_, err := svc.Reply(context.Background(), "hello")
	assert.Error(t, err)
}

func TestChatService_ChannelReply_ResumePrefixShortCircuits(t *testing.T) {
	gen := new(mocks.MockInsightGenerator)
	svc := service.NewChatService(gen)

	reply, err := svc.ChannelReply(context.Background(), "resume:anything")
	require.NoError(t, err)
	assert.Equal(t, service.ResumeUploadHint, reply)
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestChatService_ChannelReply_OtherMessagesUseGenerator(t *testing.T) {
	gen := new(mocks.MockInsightGenerator)
	svc := service.NewChatService(gen)

	gen.On("Generate", mock.Anything, mock.Anything).Return("Happy to help with your job search!", nil)

	reply, err := svc.ChannelReply(context.Background(), "I feel stuck in my career")
	require.NoError(t, err)
	assert.Equal(t, "Happy to help with your job search!", reply)
}
