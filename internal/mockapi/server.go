// Package mockapi is an in-memory gin implementation of the BookCalendar
// backend contract, used by cmd/mockserver for local development and by
// the integration tests. It reproduces the {data}/{message} envelope, the
// bearer-token policy and the Korean rejection messages of the real API.
package mockapi

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookcalendar/internal/domain"
)

// Server holds the mock state. Everything lives in memory and is guarded
// by a single mutex; the mock favors simplicity over throughput.
type Server struct {
	logger *zap.Logger
	tokens *TokenService

	mu      sync.Mutex
	members map[string]*member
	posts   []*post
	nextID  int
}

type member struct {
	nickName     string
	passwordHash string
	phoneNumber  string
	genre        string
	job          string
	birth        string
	rank         int
	bookCount    int

	book       *domain.Book
	reviews    []domain.Review
	questions  map[int]bool
	cart       []domain.CartItem
	scraps     []domain.Scrap
	chatbotLog []string
}

type post struct {
	domain.Post
	likedBy    map[string]bool
	reportedBy map[string]bool
	comments   []domain.Comment
}

// NewServer builds a mock backend issuing tokens through tokens.
func NewServer(tokens *TokenService, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		logger:  logger,
		tokens:  tokens,
		members: make(map[string]*member),
		nextID:  1,
	}
}

// Router mounts the full /api/api/v1 surface.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(s.requestLogger(), gin.Recovery())

	v1 := r.Group("/api/api/v1")

	v1.POST("/member/login", s.login)
	v1.POST("/member/register", s.register)

	authed := v1.Group("", s.authRequired())
	authed.POST("/member/logout", s.logout)

	authed.GET("/book/info", s.bookInfo)
	authed.POST("/book", s.registerBook)
	authed.PATCH("/book", s.abandonBook)
	authed.POST("/book/complete", s.completeBook)
	authed.POST("/book/period", s.updatePeriod)
	authed.POST("/book/cart", s.addCart)

	authed.POST("/review/write", s.writeReview)
	authed.GET("/review/date", s.reviewByDate)
	authed.GET("/review/calendar", s.reviewCalendar)
	authed.GET("/review/mainpage", s.mainPage)
	authed.POST("/question/write", s.writeAnswers)

	authed.GET("/community/lists", s.listPosts)
	authed.GET("/community/lists/:postId", s.postDetail)
	authed.GET("/community/posts/top-liked", s.topLiked)
	authed.POST("/community/search", s.searchPosts)
	authed.POST("/community/posts", s.writePost)
	authed.DELETE("/community/posts/:postId", s.deletePost)
	authed.POST("/community/posts/:postId/like", s.likePost)
	authed.POST("/community/posts/:postId/scrap", s.scrapPost)
	authed.POST("/community/posts/:postId/report", s.reportPost)
	authed.GET("/community/posts/:postId/comments", s.listComments)
	authed.POST("/community/posts/:postId/comments", s.writeComment)
	authed.DELETE("/community/comments/:commentId", s.deleteComment)

	authed.GET("/mypage/info/simple", s.profileSimple)
	authed.GET("/mypage/info/all", s.profileAll)
	authed.PATCH("/mypage/info", s.updateProfile)
	authed.GET("/mypage/cart", s.listCart)
	authed.POST("/mypage/cart", s.addCart)
	authed.DELETE("/mypage/cart/:cartId", s.deleteCart)
	authed.GET("/mypage/scraps", s.listScraps)
	authed.GET("/mypage/scrap/:scrapId", s.scrapDetail)
	authed.DELETE("/mypage/scrap/:scrapId", s.deleteScrap)
	authed.GET("/mypage/reviews", s.listReviews)
	authed.GET("/mypage/review/:reviewId", s.reviewDetail)
	authed.DELETE("/mypage/review/:reviewId", s.deleteReview)
	authed.GET("/mypage/statistics", s.statistics)

	authed.GET("/chatbot/recommend", s.recommend)
	authed.POST("/chatbot/chat", s.chat)
	authed.POST("/chatbot/cart", s.addCart)

	return r
}

const claimsKey = "auth_claims"

// authRequired enforces the bearer contract: anything missing or invalid
// is a 401 with the message envelope.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			fail(c, http.StatusUnauthorized, "인증이 필요합니다.")
			c.Abort()
			return
		}
		claims, err := s.tokens.ParseAccess(strings.TrimSpace(header[len("Bearer "):]))
		if err != nil {
			fail(c, http.StatusUnauthorized, "유효하지 않은 토큰입니다.")
			c.Abort()
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// currentMember resolves the authenticated member. The caller must hold no
// lock; the server mutex is taken here.
func (s *Server) currentMember(c *gin.Context) (*member, bool) {
	val, ok := c.Get(claimsKey)
	if !ok {
		fail(c, http.StatusUnauthorized, "인증이 필요합니다.")
		return nil, false
	}
	claims := val.(Claims)
	s.mu.Lock()
	m := s.members[claims.NickName]
	s.mu.Unlock()
	if m == nil {
		fail(c, http.StatusUnauthorized, "존재하지 않는 회원입니다.")
		return nil, false
	}
	return m, true
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
