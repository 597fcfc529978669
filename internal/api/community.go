package api

import (
	"context"
	"fmt"
	"net/url"

	"bookcalendar/internal/domain"
)

// Posts lists the whole community board.
func (c *Client) Posts(ctx context.Context) ([]domain.Post, error) {
	var out []domain.Post
	err := c.get(ctx, "/community/lists", &out)
	return out, err
}

// TopLikedPosts lists the most liked posts.
func (c *Client) TopLikedPosts(ctx context.Context) ([]domain.Post, error) {
	var out []domain.Post
	err := c.get(ctx, "/community/posts/top-liked", &out)
	return out, err
}

// SearchPosts searches the board by keyword.
func (c *Client) SearchPosts(ctx context.Context, keyword string) ([]domain.Post, error) {
	var out []domain.Post
	err := c.post(ctx, "/community/search?keyword="+url.QueryEscape(keyword), nil, &out)
	return out, err
}

// PostDetail fetches a single post with its contents.
func (c *Client) PostDetail(ctx context.Context, postID int) (domain.Post, error) {
	var out domain.Post
	err := c.get(ctx, fmt.Sprintf("/community/lists/%d", postID), &out)
	return out, err
}

// WritePost creates a board post.
func (c *Client) WritePost(ctx context.Context, title, contents string) error {
	return c.post(ctx, "/community/posts", domain.PostWriteRequest{Title: title, Contents: contents}, nil)
}

// DeletePost removes an own post.
func (c *Client) DeletePost(ctx context.Context, postID int) error {
	return c.delete(ctx, fmt.Sprintf("/community/posts/%d", postID))
}

// LikePost toggles the like on a post.
func (c *Client) LikePost(ctx context.Context, postID int) error {
	return c.post(ctx, fmt.Sprintf("/community/posts/%d/like", postID), nil, nil)
}

// ScrapPost bookmarks a post into the member's scraps.
func (c *Client) ScrapPost(ctx context.Context, postID int) error {
	return c.post(ctx, fmt.Sprintf("/community/posts/%d/scrap", postID), nil, nil)
}

// ReportPost flags a post for moderation.
func (c *Client) ReportPost(ctx context.Context, postID int) error {
	return c.post(ctx, fmt.Sprintf("/community/posts/%d/report", postID), nil, nil)
}

// Comments lists the comments of a post.
func (c *Client) Comments(ctx context.Context, postID int) ([]domain.Comment, error) {
	var out []domain.Comment
	err := c.get(ctx, fmt.Sprintf("/community/posts/%d/comments", postID), &out)
	return out, err
}

// WriteComment adds a comment to a post.
func (c *Client) WriteComment(ctx context.Context, postID int, contents string) error {
	return c.post(ctx, fmt.Sprintf("/community/posts/%d/comments", postID), domain.CommentWriteRequest{Contents: contents}, nil)
}

// DeleteComment removes an own comment.
func (c *Client) DeleteComment(ctx context.Context, commentID int) error {
	return c.delete(ctx, fmt.Sprintf("/community/comments/%d", commentID))
}
