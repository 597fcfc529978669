package api

import (
	"context"
	"fmt"

	"bookcalendar/internal/domain"
)

// ProfileSimple fetches the nickname/rank header of the my-page screen.
func (c *Client) ProfileSimple(ctx context.Context) (domain.ProfileSimple, error) {
	var out domain.ProfileSimple
	err := c.get(ctx, "/mypage/info/simple", &out)
	return out, err
}

// ProfileAll fetches the full member profile.
func (c *Client) ProfileAll(ctx context.Context) (domain.Profile, error) {
	var out domain.Profile
	err := c.get(ctx, "/mypage/info/all", &out)
	return out, err
}

// UpdateProfile saves edited profile fields.
func (c *Client) UpdateProfile(ctx context.Context, p domain.Profile) error {
	return c.patch(ctx, "/mypage/info", p, nil)
}

// Cart lists the saved books.
func (c *Client) Cart(ctx context.Context) ([]domain.CartItem, error) {
	var out []domain.CartItem
	err := c.get(ctx, "/mypage/cart", &out)
	return out, err
}

// AddCartItem saves a book into the cart.
func (c *Client) AddCartItem(ctx context.Context, req domain.CartAddRequest) error {
	return c.post(ctx, "/mypage/cart", req, nil)
}

// DeleteCartItem removes a saved book.
func (c *Client) DeleteCartItem(ctx context.Context, cartID int) error {
	return c.delete(ctx, fmt.Sprintf("/mypage/cart/%d", cartID))
}

// Scraps lists the bookmarked posts.
func (c *Client) Scraps(ctx context.Context) ([]domain.Scrap, error) {
	var out []domain.Scrap
	err := c.get(ctx, "/mypage/scraps", &out)
	return out, err
}

// ScrapDetail fetches one bookmarked post.
func (c *Client) ScrapDetail(ctx context.Context, scrapID int) (domain.Scrap, error) {
	var out domain.Scrap
	err := c.get(ctx, fmt.Sprintf("/mypage/scrap/%d", scrapID), &out)
	return out, err
}

// DeleteScrap removes a bookmark.
func (c *Client) DeleteScrap(ctx context.Context, scrapID int) error {
	return c.delete(ctx, fmt.Sprintf("/mypage/scrap/%d", scrapID))
}

// MyReviews lists the member's written reviews.
func (c *Client) MyReviews(ctx context.Context) ([]domain.Review, error) {
	var out []domain.Review
	err := c.get(ctx, "/mypage/reviews", &out)
	return out, err
}

// MyReview fetches one written review.
func (c *Client) MyReview(ctx context.Context, reviewID int) (domain.Review, error) {
	var out domain.Review
	err := c.get(ctx, fmt.Sprintf("/mypage/review/%d", reviewID), &out)
	return out, err
}

// DeleteReview removes a written review.
func (c *Client) DeleteReview(ctx context.Context, reviewID int) error {
	return c.delete(ctx, fmt.Sprintf("/mypage/review/%d", reviewID))
}

// Statistics fetches the challenge screen counters.
func (c *Client) Statistics(ctx context.Context) (domain.Statistics, error) {
	var out domain.Statistics
	err := c.get(ctx, "/mypage/statistics", &out)
	return out, err
}
