package screen

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func communityHandler(likeStatus int, likeMessage string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/community/lists":
			jsonOK(w, `[
				{"postId":1,"title":"첫 글","likeCount":3,"liked":false,"date":"2026-08-28"},
				{"postId":2,"title":"둘째 글","likeCount":7,"liked":true,"date":"2026-08-29"}
			]`)
		case r.URL.Path == "/community/posts/top-liked":
			jsonOK(w, `[{"postId":2,"title":"둘째 글","likeCount":7}]`)
		case strings.HasSuffix(r.URL.Path, "/like"):
			if likeStatus != http.StatusOK {
				jsonFail(w, likeStatus, likeMessage)
				return
			}
			jsonOK(w, `null`)
		default:
			jsonOK(w, `null`)
		}
	}
}

func TestCommunity_RefreshFillsBothLists(t *testing.T) {
	env := newScreenEnv(t, communityHandler(http.StatusOK, ""))
	env.login(t)
	community := NewCommunity(nil, env.sess, env.client, env.nav, env.alert)

	community.Refresh(context.Background())

	posts := community.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, 2, posts[0].PostID, "newest post sorts first")
	assert.Len(t, community.TopLiked(), 1)
}

func TestCommunity_ToggleLikeIsOptimistic(t *testing.T) {
	env := newScreenEnv(t, communityHandler(http.StatusOK, ""))
	env.login(t)
	community := NewCommunity(nil, env.sess, env.client, env.nav, env.alert)
	community.Refresh(context.Background())

	community.ToggleLike(context.Background(), 1)

	posts := community.Posts()
	require.Len(t, posts, 2)
	for _, p := range posts {
		if p.PostID == 1 {
			assert.True(t, p.Liked)
			assert.Equal(t, 4, p.LikeCount)
		}
	}
}

func TestCommunity_ToggleLikeRollsBackOnFailure(t *testing.T) {
	env := newScreenEnv(t, communityHandler(http.StatusBadRequest, "좋아요 처리 중 오류가 발생했습니다."))
	env.login(t)
	community := NewCommunity(nil, env.sess, env.client, env.nav, env.alert)
	community.Refresh(context.Background())

	community.ToggleLike(context.Background(), 1)

	for _, p := range community.Posts() {
		if p.PostID == 1 {
			assert.False(t, p.Liked, "a rejected like must roll back")
			assert.Equal(t, 3, p.LikeCount)
		}
	}
	assert.Equal(t, "좋아요 처리 중 오류가 발생했습니다.", env.alert.last())
}

func TestCommunity_AddPostValidatesForm(t *testing.T) {
	env := newScreenEnv(t, communityHandler(http.StatusOK, ""))
	env.login(t)
	community := NewCommunity(nil, env.sess, env.client, env.nav, env.alert)

	assert.False(t, community.AddPost(context.Background(), "", "본문"))
	assert.False(t, community.AddPost(context.Background(), "제목", ""))
	assert.Zero(t, env.calls.Load())
}

func TestCommunity_RefreshWithoutSessionRoutesToLogin(t *testing.T) {
	env := newScreenEnv(t, communityHandler(http.StatusOK, ""))
	community := NewCommunity(nil, env.sess, env.client, env.nav, env.alert)

	community.Refresh(context.Background())

	assert.Zero(t, env.calls.Load())
	assert.Equal(t, RouteLogin, env.nav.lastReplaced())
}

func TestCommunity_AddCommentRefetchesList(t *testing.T) {
	env := newScreenEnv(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			jsonOK(w, `[{"commentId":1,"contents":"좋은 글이네요","nickName":"reader"}]`)
			return
		}
		jsonOK(w, `null`)
	})
	env.login(t)
	community := NewCommunity(nil, env.sess, env.client, env.nav, env.alert)

	comments, ok := community.AddComment(context.Background(), 1, "좋은 글이네요")
	require.True(t, ok)
	require.Len(t, comments, 1)
	assert.Equal(t, "좋은 글이네요", comments[0].Contents)
}
