package mockapi

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bookcalendar/internal/api"
	"bookcalendar/internal/domain"
	"bookcalendar/internal/session"
)

// newMockEnv boots the full mock backend behind httptest and returns a
// real client wired against it, the same stack cmd/app talks to.
func newMockEnv(t *testing.T) (*api.Client, *session.Manager) {
	t.Helper()
	tokens := NewTokenService("integration-test-secret", time.Minute, time.Hour)
	server := NewServer(tokens, zap.NewNop())
	srv := httptest.NewServer(server.Router())
	t.Cleanup(srv.Close)

	sess := session.NewManager(session.NewMemoryStore(), zap.NewNop())
	return api.New(srv.URL+"/api/api/v1", 0, sess, zap.NewNop()), sess
}

func signup(t *testing.T, client *api.Client, nickName string) {
	t.Helper()
	ctx := context.Background()
	err := client.Register(ctx, domain.RegisterRequest{
		NickName: nickName, Password: "password1", PhoneNumber: "01012345678",
		Genre: "소설", Job: "학생", Birth: "2000-01-01",
	})
	require.NoError(t, err)
	require.NoError(t, client.Login(ctx, nickName, "password1"))
}

func TestServer_RegisterLoginLogout(t *testing.T) {
	client, sess := newMockEnv(t)
	ctx := context.Background()

	signup(t, client, "reader")
	token, has := sess.Token()
	require.True(t, has)
	assert.NotEmpty(t, token)
	assert.False(t, sess.ExpiresAt().IsZero(), "issued access token carries an expiry")

	err := client.Register(ctx, domain.RegisterRequest{
		NickName: "reader", Password: "password1", PhoneNumber: "01012345678",
		Genre: "소설", Job: "학생", Birth: "2000-01-01",
	})
	require.Error(t, err)
	assert.Equal(t, "이미 존재하는 닉네임입니다.", api.ServerMessage(err))

	client.Logout(ctx)
	_, has = sess.Token()
	assert.False(t, has)
}

func TestServer_LoginRejectsWrongPassword(t *testing.T) {
	client, sess := newMockEnv(t)
	ctx := context.Background()
	signup(t, client, "reader")
	client.Logout(ctx)

	err := client.Login(ctx, "reader", "wrong")
	require.Error(t, err)
	assert.Equal(t, "닉네임 또는 비밀번호가 올바르지 않습니다.", api.ServerMessage(err))
	_, has := sess.Token()
	assert.False(t, has)
}

func TestServer_InvalidTokenIs401(t *testing.T) {
	client, sess := newMockEnv(t)
	require.NoError(t, sess.SetPair("not-a-jwt", ""))
	routed := false
	sess.SetOnUnauthorized(func() { routed = true })

	_, err := client.BookInfo(context.Background())
	require.ErrorIs(t, err, api.ErrUnauthorized)
	_, has := sess.Token()
	assert.False(t, has)
	assert.True(t, routed)
}

func TestServer_BookAndReviewFlow(t *testing.T) {
	client, _ := newMockEnv(t)
	ctx := context.Background()
	signup(t, client, "reader")

	// No book yet: the shelf reads empty, reviews are rejected.
	book, err := client.BookInfo(ctx)
	require.NoError(t, err)
	assert.Empty(t, book.BookName)

	_, err = client.WriteReview(ctx, 30, "아직 책이 없다")
	require.Error(t, err)
	assert.Equal(t, "도서 등록 후 이용하세요.", api.ServerMessage(err))

	require.NoError(t, client.RegisterBook(ctx, domain.BookRegisterRequest{
		BookName: "데미안", Author: "헤르만 헤세", TotalPage: 248,
		Genre: "소설", StartDate: "2026-08-01", FinishDate: "2026-09-01",
	}))
	book, err = client.BookInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "데미안", book.BookName)

	questions, err := client.WriteReview(ctx, 30, "감정 묘사가 인상 깊었다")
	require.NoError(t, err)
	require.NotZero(t, questions.QuestionID)
	assert.NotEmpty(t, questions.Question1)

	// One review per day.
	_, err = client.WriteReview(ctx, 10, "한 번 더")
	require.Error(t, err)
	assert.Equal(t, "오늘 이미 작성한 독후감이 존재합니다.", api.ServerMessage(err))

	summary, err := client.WriteAnswers(ctx, domain.AnswerRequest{
		QuestionID: questions.QuestionID,
		Answer1:    "싱클레어가 알을 깨는 장면", Answer2: "네", Answer3: "성장할 것 같다",
	})
	require.NoError(t, err)
	assert.Equal(t, 30, summary.CurrentPages)

	// Answering the same question twice is rejected.
	_, err = client.WriteAnswers(ctx, domain.AnswerRequest{
		QuestionID: questions.QuestionID,
		Answer1:    "a", Answer2: "b", Answer3: "c",
	})
	require.Error(t, err)
	assert.Equal(t, "이미 답변한 질문입니다.", api.ServerMessage(err))

	today := time.Now().Format("2006-01-02")
	review, err := client.ReviewByDate(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, "감정 묘사가 인상 깊었다", review.Contents)

	days, err := client.ReviewCalendar(ctx, today[:7])
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, today, days[0].Date)

	main, err := client.MainPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30*100/248, main.Progress)
}

func TestServer_CompleteBookRecommends(t *testing.T) {
	client, _ := newMockEnv(t)
	ctx := context.Background()
	signup(t, client, "reader")
	require.NoError(t, client.RegisterBook(ctx, domain.BookRegisterRequest{
		BookName: "데미안", Author: "헤르만 헤세", TotalPage: 248,
		Genre: "소설", StartDate: "2026-08-01", FinishDate: "2026-09-01",
	}))

	books, err := client.CompleteBook(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, books, "completing a book yields recommendations")

	// The shelf is empty again.
	book, err := client.BookInfo(ctx)
	require.NoError(t, err)
	assert.Empty(t, book.BookName)
}

func TestServer_CommunityFlow(t *testing.T) {
	client, _ := newMockEnv(t)
	ctx := context.Background()
	signup(t, client, "writer")

	require.NoError(t, client.WritePost(ctx, "첫 글", "모두 반가워요"))
	posts, err := client.Posts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	postID := posts[0].PostID

	require.NoError(t, client.LikePost(ctx, postID))
	post, err := client.PostDetail(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, 1, post.LikeCount)
	assert.True(t, post.Liked)

	// Like is a toggle.
	require.NoError(t, client.LikePost(ctx, postID))
	post, err = client.PostDetail(ctx, postID)
	require.NoError(t, err)
	assert.Zero(t, post.LikeCount)

	require.NoError(t, client.WriteComment(ctx, postID, "좋은 글이네요"))
	comments, err := client.Comments(ctx, postID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "writer", comments[0].NickName)

	require.NoError(t, client.DeleteComment(ctx, comments[0].CommentID))
	comments, err = client.Comments(ctx, postID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	results, err := client.SearchPosts(ctx, "첫")
	require.NoError(t, err)
	assert.Len(t, results, 1)

	require.NoError(t, client.DeletePost(ctx, postID))
	posts, err = client.Posts(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestServer_ScrapShowsUpInMyPage(t *testing.T) {
	client, _ := newMockEnv(t)
	ctx := context.Background()
	signup(t, client, "reader")

	require.NoError(t, client.WritePost(ctx, "스크랩용", "보관할 글"))
	posts, err := client.Posts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.NoError(t, client.ScrapPost(ctx, posts[0].PostID))

	scraps, err := client.Scraps(ctx)
	require.NoError(t, err)
	require.Len(t, scraps, 1)
	assert.Equal(t, "스크랩용", scraps[0].Title)

	detail, err := client.ScrapDetail(ctx, scraps[0].ScrapID)
	require.NoError(t, err)
	assert.Equal(t, "보관할 글", detail.Contents)

	require.NoError(t, client.DeleteScrap(ctx, scraps[0].ScrapID))
	scraps, err = client.Scraps(ctx)
	require.NoError(t, err)
	assert.Empty(t, scraps)
}

func TestServer_CartFlow(t *testing.T) {
	client, _ := newMockEnv(t)
	ctx := context.Background()
	signup(t, client, "reader")

	require.NoError(t, client.AddCartItem(ctx, domain.CartAddRequest{
		BookName: "1984", Author: "조지 오웰", URL: "http://example.com/1984",
	}))
	items, err := client.Cart(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "1984", items[0].BookName)

	require.NoError(t, client.DeleteCartItem(ctx, items[0].CartID))
	items, err = client.Cart(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestServer_ProfileAndStatistics(t *testing.T) {
	client, _ := newMockEnv(t)
	ctx := context.Background()
	signup(t, client, "reader")

	simple, err := client.ProfileSimple(ctx)
	require.NoError(t, err)
	assert.Equal(t, "reader", simple.NickName)

	profile, err := client.ProfileAll(ctx)
	require.NoError(t, err)
	profile.Job = "개발자"
	require.NoError(t, client.UpdateProfile(ctx, profile))

	profile, err = client.ProfileAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "개발자", profile.Job)

	stats, err := client.Statistics(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.BookCount)
}

func TestServer_ChatbotAnswersAndSavesToCart(t *testing.T) {
	client, _ := newMockEnv(t)
	ctx := context.Background()
	signup(t, client, "reader")

	reply, err := client.Chat(ctx, "책 추천해줘")
	require.NoError(t, err)
	assert.NotEmpty(t, reply)

	books, err := client.Recommend(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, books)

	require.NoError(t, client.RecommendToCart(ctx, domain.CartAddRequest{
		BookName: books[0].BookName, Author: books[0].Author, URL: books[0].URL,
	}))
	items, err := client.Cart(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
