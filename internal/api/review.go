package api

import (
	"context"
	"net/url"

	"bookcalendar/internal/domain"
)

// WriteReview submits today's reading log and returns the AI follow-up
// questions together with the progress summary.
func (c *Client) WriteReview(ctx context.Context, pages int, contents string) (domain.ReviewQuestions, error) {
	var out domain.ReviewQuestions
	req := domain.ReviewWriteRequest{Pages: pages, Contents: contents}
	err := c.post(ctx, "/review/write", req, &out)
	return out, err
}

// WriteAnswers submits the answers to the follow-up questions.
func (c *Client) WriteAnswers(ctx context.Context, req domain.AnswerRequest) (domain.ReviewSummary, error) {
	var out domain.ReviewSummary
	err := c.post(ctx, "/question/write", req, &out)
	return out, err
}

// ReviewByDate fetches the review written on date (YYYY-MM-DD). The zero
// Review means nothing was written that day.
func (c *Client) ReviewByDate(ctx context.Context, date string) (domain.Review, error) {
	var out domain.Review
	err := c.get(ctx, "/review/date?date="+url.QueryEscape(date), &out)
	return out, err
}

// ReviewCalendar fetches the written-day markers for a month (YYYY-MM).
func (c *Client) ReviewCalendar(ctx context.Context, month string) ([]domain.CalendarDay, error) {
	var out []domain.CalendarDay
	err := c.get(ctx, "/review/calendar?month="+url.QueryEscape(month), &out)
	return out, err
}

// MainPage fetches the home screen progress block.
func (c *Client) MainPage(ctx context.Context) (domain.MainPage, error) {
	var out domain.MainPage
	err := c.get(ctx, "/review/mainpage", &out)
	return out, err
}
