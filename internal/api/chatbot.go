package api

import (
	"context"

	"bookcalendar/internal/domain"
)

// Recommend fetches the AI book recommendations.
func (c *Client) Recommend(ctx context.Context) ([]domain.RecommendedBook, error) {
	var out []domain.RecommendedBook
	err := c.get(ctx, "/chatbot/recommend", &out)
	return out, err
}

// Chat sends one message to the AI recommender and returns its reply.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	var out string
	err := c.post(ctx, "/chatbot/chat", domain.ChatRequest{ChatMessage: message}, &out)
	return out, err
}

// RecommendToCart saves a chatbot recommendation into the cart.
func (c *Client) RecommendToCart(ctx context.Context, req domain.CartAddRequest) error {
	return c.post(ctx, "/chatbot/cart", req, nil)
}
