package screen

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"bookcalendar/internal/api"
	"bookcalendar/internal/domain"
	"bookcalendar/internal/session"
)

// Community drives the board: list, search, post detail, comments and the
// optimistic like/scrap toggles.
type Community struct {
	base

	mu       sync.Mutex
	posts    []domain.Post
	topLiked []domain.Post
}

func NewCommunity(logger *zap.Logger, sess *session.Manager, client *api.Client, nav Navigator, alert Alerter) *Community {
	return &Community{base: newBase(logger, sess, client, nav, alert)}
}

// Refresh loads the full list and the top-liked list. The two reads run
// concurrently and each updates only its own slice; render order follows
// whichever resolves first.
func (c *Community) Refresh(ctx context.Context) {
	if !c.requireSession() {
		return
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		posts, err := c.api.Posts(ctx)
		if err != nil {
			c.fail(err, "전체 게시글을 불러오는데 실패했습니다.")
			return
		}
		sort.Slice(posts, func(i, j int) bool { return posts[i].Date > posts[j].Date })
		c.mu.Lock()
		c.posts = posts
		c.mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		top, err := c.api.TopLikedPosts(ctx)
		if err != nil {
			c.logger.Warn("top liked fetch failed", zap.Error(err))
			return
		}
		c.mu.Lock()
		c.topLiked = top
		c.mu.Unlock()
	}()

	wg.Wait()
}

// Posts returns the current list snapshot.
func (c *Community) Posts() []domain.Post {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Post(nil), c.posts...)
}

// TopLiked returns the current top-liked snapshot.
func (c *Community) TopLiked() []domain.Post {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Post(nil), c.topLiked...)
}

// Search queries the board by keyword.
func (c *Community) Search(ctx context.Context, keyword string) ([]domain.Post, bool) {
	if keyword == "" {
		return nil, false
	}
	if !c.requireSession() {
		return nil, false
	}
	results, err := c.api.SearchPosts(ctx, keyword)
	if err != nil {
		c.fail(err, "검색 중 문제가 발생했습니다.")
		return nil, false
	}
	return results, true
}

// Detail fetches a single post.
func (c *Community) Detail(ctx context.Context, postID int) (domain.Post, bool) {
	if !c.requireSession() {
		return domain.Post{}, false
	}
	post, err := c.api.PostDetail(ctx, postID)
	if err != nil {
		c.fail(err, "게시글을 불러오지 못했습니다.")
		return domain.Post{}, false
	}
	return post, post.PostID != 0
}

// AddPost validates title and contents and creates a post.
func (c *Community) AddPost(ctx context.Context, title, contents string) bool {
	if title == "" || contents == "" {
		c.alert.Alert("입력 오류", "제목과 본문을 모두 작성해주세요.")
		return false
	}
	if !c.requireSession() {
		return false
	}
	if err := c.api.WritePost(ctx, title, contents); err != nil {
		c.fail(err, "게시물 등록에 실패했습니다.")
		return false
	}
	c.alert.Alert("게시물 등록 완료", "")
	return true
}

// DeletePost removes a post.
func (c *Community) DeletePost(ctx context.Context, postID int) bool {
	if !c.requireSession() {
		return false
	}
	if err := c.api.DeletePost(ctx, postID); err != nil {
		c.fail(err, "삭제 권한이 없거나 오류가 발생했습니다.")
		return false
	}
	return true
}

// ToggleLike flips the like state optimistically: the local list changes
// first, the request follows, and a failure restores the snapshot.
func (c *Community) ToggleLike(ctx context.Context, postID int) {
	c.mu.Lock()
	idx := -1
	for i := range c.posts {
		if c.posts[i].PostID == postID {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return
	}
	before := c.posts[idx]
	if before.Liked {
		c.posts[idx].Liked = false
		c.posts[idx].LikeCount--
	} else {
		c.posts[idx].Liked = true
		c.posts[idx].LikeCount++
	}
	c.mu.Unlock()

	if err := c.api.LikePost(ctx, postID); err != nil {
		c.mu.Lock()
		if idx < len(c.posts) && c.posts[idx].PostID == postID {
			c.posts[idx] = before
		}
		c.mu.Unlock()
		c.fail(err, "좋아요 처리에 실패했습니다.")
	}
}

// Scrap bookmarks a post.
func (c *Community) Scrap(ctx context.Context, postID int) bool {
	if !c.requireSession() {
		return false
	}
	if err := c.api.ScrapPost(ctx, postID); err != nil {
		c.fail(err, "스크랩에 실패했습니다.")
		return false
	}
	c.alert.Alert("알림", "게시글을 스크랩했습니다.")
	return true
}

// Report flags a post for moderation.
func (c *Community) Report(ctx context.Context, postID int) bool {
	if !c.requireSession() {
		return false
	}
	if err := c.api.ReportPost(ctx, postID); err != nil {
		c.fail(err, "신고 처리에 실패했습니다.")
		return false
	}
	c.alert.Alert("알림", "게시글을 신고했습니다.")
	return true
}

// Comments fetches the comment list of a post.
func (c *Community) Comments(ctx context.Context, postID int) ([]domain.Comment, bool) {
	if !c.requireSession() {
		return nil, false
	}
	comments, err := c.api.Comments(ctx, postID)
	if err != nil {
		c.fail(err, "댓글 목록을 불러오지 못했습니다.")
		return nil, false
	}
	return comments, true
}

// AddComment posts a comment and refetches the list so the server-assigned
// fields show up.
func (c *Community) AddComment(ctx context.Context, postID int, contents string) ([]domain.Comment, bool) {
	if contents == "" {
		return nil, false
	}
	if !c.requireSession() {
		return nil, false
	}
	if err := c.api.WriteComment(ctx, postID, contents); err != nil {
		c.fail(err, "댓글 등록 중 오류가 발생했습니다.")
		return nil, false
	}
	return c.Comments(ctx, postID)
}

// DeleteComment removes a comment and refetches the list.
func (c *Community) DeleteComment(ctx context.Context, postID, commentID int) ([]domain.Comment, bool) {
	if !c.requireSession() {
		return nil, false
	}
	if err := c.api.DeleteComment(ctx, commentID); err != nil {
		c.fail(err, "댓글 삭제 중 오류가 발생했습니다.")
		return nil, false
	}
	return c.Comments(ctx, postID)
}
