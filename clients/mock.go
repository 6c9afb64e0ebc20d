package clients

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"
)

// MockChatClient is a mock implementation of the ChatClient interface
type MockChatClient struct {
	mock.Mock
}

func (m *MockChatClient) BotUserID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockChatClient) PostMessage(ctx context.Context, channelID, content string) (string, error) {
	args := m.Called(ctx, channelID, content)
	return args.String(0), args.Error(1)
}

func (m *MockChatClient) PostDirectMessage(ctx context.Context, userID, content string) error {
	args := m.Called(ctx, userID, content)
	return args.Error(0)
}

func (m *MockChatClient) FetchMessageText(
	ctx context.Context,
	channelID, messageID string,
) (mo.Option[string], error) {
	args := m.Called(ctx, channelID, messageID)
	return args.Get(0).(mo.Option[string]), args.Error(1)
}
