package api

import (
	"context"

	"bookcalendar/internal/domain"
)

// BookInfo fetches the currently registered book. An empty BookName means
// no book is registered and the caller routes to registration.
func (c *Client) BookInfo(ctx context.Context) (domain.Book, error) {
	var book domain.Book
	err := c.get(ctx, "/book/info", &book)
	return book, err
}

// RegisterBook starts a new reading.
func (c *Client) RegisterBook(ctx context.Context, req domain.BookRegisterRequest) error {
	return c.post(ctx, "/book", req, nil)
}

// AbandonBook gives up the current reading and drops the registered book.
func (c *Client) AbandonBook(ctx context.Context) error {
	return c.patch(ctx, "/book", nil, nil)
}

// CompleteBook finishes the current reading and returns follow-up
// recommendations.
func (c *Client) CompleteBook(ctx context.Context) ([]domain.RecommendedBook, error) {
	var books []domain.RecommendedBook
	err := c.post(ctx, "/book/complete", nil, &books)
	return books, err
}

// UpdatePeriod moves the target finish date of the current book.
func (c *Client) UpdatePeriod(ctx context.Context, finishDate string) error {
	return c.post(ctx, "/book/period", domain.PeriodRequest{FinishDate: finishDate}, nil)
}

// AddBookToCart saves a recommended book for later.
func (c *Client) AddBookToCart(ctx context.Context, req domain.CartAddRequest) error {
	return c.post(ctx, "/book/cart", req, nil)
}
