package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sproutly/domain/dto"
)

func newChatServiceForTest(t *testing.T) (*ChatServiceImpl, *fakeUserRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	svc := NewChatService(newFakeChatRepo(), userRepo).(*ChatServiceImpl)
	return svc, userRepo
}

func TestCreateChatAssignsTimestamp(t *testing.T) {
	ctx := context.Background()
	svc, userRepo := newChatServiceForTest(t)
	owner := seedUser(t, userRepo, "alice")

	chat, err := svc.CreateChat(ctx, owner.ID, &dto.CreateChatRequest{
		Message: "How is my plant doing?",
		IsUser:  true,
	})
	require.NoError(t, err)

	assert.WithinDuration(t, time.Now(), chat.Timestamp, time.Second)
	assert.True(t, chat.IsUser)
	assert.Equal(t, owner.ID, chat.UserID)
}

func TestGetUserChatsChronological(t *testing.T) {
	ctx := context.Background()
	svc, userRepo := newChatServiceForTest(t)
	owner := seedUser(t, userRepo, "alice")
	other := seedUser(t, userRepo, "bob")

	messages := []string{"first", "second", "third"}
	for _, msg := range messages {
		_, err := svc.CreateChat(ctx, owner.ID, &dto.CreateChatRequest{Message: msg, IsUser: true})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}
	_, err := svc.CreateChat(ctx, other.ID, &dto.CreateChatRequest{Message: "not yours", IsUser: true})
	require.NoError(t, err)

	chats, err := svc.GetUserChats(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, chats, 3)

	for i, chat := range chats {
		assert.Equal(t, messages[i], chat.Message)
	}
	for i := 1; i < len(chats); i++ {
		assert.False(t, chats[i].Timestamp.Before(chats[i-1].Timestamp))
	}
}

func TestCreateChatUnknownUser(t *testing.T) {
	svc, _ := newChatServiceForTest(t)

	_, err := svc.CreateChat(context.Background(), 42, &dto.CreateChatRequest{Message: "hello"})
	assert.EqualError(t, err, "user not found")
}
