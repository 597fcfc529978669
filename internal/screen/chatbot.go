package screen

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"bookcalendar/internal/api"
	"bookcalendar/internal/domain"
	"bookcalendar/internal/session"
)

// ChatMessage is one bubble of the recommender conversation.
type ChatMessage struct {
	Sender string // "user" or "ai"
	Text   string
}

// Chatbot drives the AI recommender screen.
type Chatbot struct {
	base

	mu       sync.Mutex
	waiting  bool
	messages []ChatMessage
}

func NewChatbot(logger *zap.Logger, sess *session.Manager, client *api.Client, nav Navigator, alert Alerter) *Chatbot {
	return &Chatbot{base: newBase(logger, sess, client, nav, alert)}
}

// Send posts one user message. While a reply is pending further sends are
// dropped. A failed call still produces a terminal bubble so the
// conversation never hangs in a loading state.
func (c *Chatbot) Send(ctx context.Context, input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}

	c.mu.Lock()
	if c.waiting {
		c.mu.Unlock()
		return false
	}
	c.waiting = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.waiting = false
		c.mu.Unlock()
	}()

	// The user bubble only appears once the send can actually go out;
	// without a session the screen routes to login with the log untouched.
	if !c.requireSession() {
		return false
	}
	c.mu.Lock()
	c.messages = append(c.messages, ChatMessage{Sender: "user", Text: input})
	c.mu.Unlock()

	reply, err := c.api.Chat(ctx, input)
	if err != nil {
		c.logger.Warn("chat failed", zap.Error(err))
		reply = "AI 응답을 가져오는데 실패했습니다."
	}
	c.mu.Lock()
	c.messages = append(c.messages, ChatMessage{Sender: "ai", Text: reply})
	c.mu.Unlock()
	return err == nil
}

// Messages returns the conversation snapshot.
func (c *Chatbot) Messages() []ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ChatMessage(nil), c.messages...)
}

// Recommend fetches the recommendation list.
func (c *Chatbot) Recommend(ctx context.Context) ([]domain.RecommendedBook, bool) {
	if !c.requireSession() {
		return nil, false
	}
	books, err := c.api.Recommend(ctx)
	if err != nil {
		c.fail(err, "추천 도서를 불러오지 못했습니다.")
		return nil, false
	}
	return books, true
}

// AddToCart saves a recommended book into the cart.
func (c *Chatbot) AddToCart(ctx context.Context, book domain.RecommendedBook) bool {
	if !c.requireSession() {
		return false
	}
	req := domain.CartAddRequest{BookName: book.BookName, Author: book.Author, URL: book.URL}
	if err := c.api.RecommendToCart(ctx, req); err != nil {
		c.fail(err, "장바구니 추가 중 문제가 발생했습니다.")
		return false
	}
	c.alert.Alert("장바구니 추가 완료", "\""+book.BookName+"\"이(가) 장바구니에 추가되었습니다.")
	return true
}
