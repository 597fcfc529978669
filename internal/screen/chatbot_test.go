package screen

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatbot_SendAppendsBothBubbles(t *testing.T) {
	env := newScreenEnv(t, func(w http.ResponseWriter, r *http.Request) {
		jsonOK(w, `"소설을 좋아하신다면 데미안을 추천드려요."`)
	})
	env.login(t)
	bot := NewChatbot(nil, env.sess, env.client, env.nav, env.alert)

	require.True(t, bot.Send(context.Background(), "책 추천해줘"))

	messages := bot.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "user", messages[0].Sender)
	assert.Equal(t, "책 추천해줘", messages[0].Text)
	assert.Equal(t, "ai", messages[1].Sender)
}

func TestChatbot_FailureStillProducesReplyBubble(t *testing.T) {
	env := newScreenEnv(t, func(w http.ResponseWriter, r *http.Request) {
		jsonFail(w, http.StatusInternalServerError, "")
	})
	env.login(t)
	bot := NewChatbot(nil, env.sess, env.client, env.nav, env.alert)

	assert.False(t, bot.Send(context.Background(), "책 추천해줘"))

	messages := bot.Messages()
	require.Len(t, messages, 2, "the conversation must never hang in a loading state")
	assert.Equal(t, "AI 응답을 가져오는데 실패했습니다.", messages[1].Text)
}

func TestChatbot_DropsSendWhileWaiting(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	env := newScreenEnv(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		jsonOK(w, `"네, 추천드릴게요."`)
	})
	env.login(t)
	bot := NewChatbot(nil, env.sess, env.client, env.nav, env.alert)

	done := make(chan bool, 1)
	go func() { done <- bot.Send(context.Background(), "첫 질문") }()
	<-started

	assert.False(t, bot.Send(context.Background(), "둘째 질문"), "sends while waiting are dropped")

	close(release)
	select {
	case ok := <-done:
		assert.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("first send never finished")
	}
	assert.EqualValues(t, 1, env.calls.Load())
	assert.Len(t, bot.Messages(), 2)
}

func TestChatbot_NoSessionLeavesLogUntouched(t *testing.T) {
	env := newScreenEnv(t, func(w http.ResponseWriter, r *http.Request) {
		jsonOK(w, `null`)
	})
	bot := NewChatbot(nil, env.sess, env.client, env.nav, env.alert)

	assert.False(t, bot.Send(context.Background(), "책 추천해줘"))

	assert.Empty(t, bot.Messages(), "no dangling user bubble without a session")
	assert.Zero(t, env.calls.Load())
	assert.Equal(t, RouteLogin, env.nav.lastReplaced())
}

func TestChatbot_IgnoresBlankInput(t *testing.T) {
	env := newScreenEnv(t, func(w http.ResponseWriter, r *http.Request) {
		jsonOK(w, `null`)
	})
	env.login(t)
	bot := NewChatbot(nil, env.sess, env.client, env.nav, env.alert)

	assert.False(t, bot.Send(context.Background(), "   "))
	assert.Empty(t, bot.Messages())
	assert.Zero(t, env.calls.Load())
}
