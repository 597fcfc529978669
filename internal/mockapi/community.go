package mockapi

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"bookcalendar/internal/domain"
)

func (s *Server) writePost(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	var req domain.PostWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	if req.Title == "" || req.Contents == "" {
		fail(c, http.StatusBadRequest, "제목과 본문을 모두 작성해주세요.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := &post{
		Post: domain.Post{
			PostID:   s.nextID,
			Title:    req.Title,
			Author:   m.nickName,
			Contents: req.Contents,
			Date:     time.Now().Format(time.RFC3339),
		},
		likedBy:    make(map[string]bool),
		reportedBy: make(map[string]bool),
	}
	s.nextID++
	s.posts = append(s.posts, p)
	ok(c, gin.H{"postId": p.PostID})
}

func (s *Server) listPosts(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, p.listViewFor(m.nickName))
	}
	ok(c, out)
}

func (s *Server) topLiked(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sorted := append([]*post(nil), s.posts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].likedBy) > len(sorted[j].likedBy)
	})
	limit := 3
	if len(sorted) < limit {
		limit = len(sorted)
	}
	out := make([]domain.Post, 0, limit)
	for _, p := range sorted[:limit] {
		out = append(out, p.listViewFor(m.nickName))
	}
	ok(c, out)
}

func (s *Server) searchPosts(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	keyword := c.Query("keyword")
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Post
	for _, p := range s.posts {
		if strings.Contains(p.Title, keyword) || strings.Contains(p.Contents, keyword) {
			out = append(out, p.listViewFor(m.nickName))
		}
	}
	ok(c, out)
}

func (s *Server) postDetail(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findPostLocked(c)
	if p == nil {
		return
	}
	view := p.listViewFor(m.nickName)
	view.Contents = p.Contents
	ok(c, view)
}

func (s *Server) deletePost(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findPostLocked(c)
	if p == nil {
		return
	}
	if p.Author != m.nickName {
		fail(c, http.StatusForbidden, "삭제 권한이 없습니다.")
		return
	}
	kept := s.posts[:0]
	for _, candidate := range s.posts {
		if candidate.PostID != p.PostID {
			kept = append(kept, candidate)
		}
	}
	s.posts = kept
	ok(c, nil)
}

func (s *Server) likePost(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findPostLocked(c)
	if p == nil {
		return
	}
	// Toggle semantics: a second like removes the first.
	if p.likedBy[m.nickName] {
		delete(p.likedBy, m.nickName)
	} else {
		p.likedBy[m.nickName] = true
	}
	ok(c, gin.H{"likeCount": len(p.likedBy), "liked": p.likedBy[m.nickName]})
}

func (s *Server) scrapPost(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findPostLocked(c)
	if p == nil {
		return
	}
	for _, scrap := range m.scraps {
		if scrap.Title == p.Title {
			fail(c, http.StatusBadRequest, "이미 스크랩한 게시글입니다.")
			return
		}
	}
	m.scraps = append(m.scraps, domain.Scrap{
		ScrapID:  s.nextID,
		Title:    p.Title,
		Contents: p.Contents,
		DateTime: time.Now().Format(time.RFC3339),
	})
	s.nextID++
	ok(c, nil)
}

func (s *Server) reportPost(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findPostLocked(c)
	if p == nil {
		return
	}
	if p.reportedBy[m.nickName] {
		fail(c, http.StatusBadRequest, "이미 신고한 게시글입니다.")
		return
	}
	p.reportedBy[m.nickName] = true
	ok(c, nil)
}

func (s *Server) listComments(c *gin.Context) {
	if _, found := s.currentMember(c); !found {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findPostLocked(c)
	if p == nil {
		return
	}
	ok(c, p.comments)
}

func (s *Server) writeComment(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	var req domain.CommentWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Contents == "" {
		fail(c, http.StatusBadRequest, "댓글 내용을 입력해주세요.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findPostLocked(c)
	if p == nil {
		return
	}
	p.comments = append(p.comments, domain.Comment{
		CommentID:   s.nextID,
		NickName:    m.nickName,
		Rank:        m.rank,
		ReviewCount: len(m.reviews),
		Contents:    req.Contents,
		Date:        time.Now().Format(time.RFC3339),
	})
	s.nextID++
	ok(c, nil)
}

func (s *Server) deleteComment(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	commentID, err := strconv.Atoi(c.Param("commentId"))
	if err != nil {
		fail(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		for i, comment := range p.comments {
			if comment.CommentID != commentID {
				continue
			}
			if comment.NickName != m.nickName {
				fail(c, http.StatusForbidden, "삭제 권한이 없습니다.")
				return
			}
			p.comments = append(p.comments[:i], p.comments[i+1:]...)
			ok(c, nil)
			return
		}
	}
	fail(c, http.StatusNotFound, "존재하지 않는 댓글입니다.")
}

// findPostLocked resolves the :postId param. The server mutex must be held;
// a nil return means the response was already written.
func (s *Server) findPostLocked(c *gin.Context) *post {
	postID, err := strconv.Atoi(c.Param("postId"))
	if err != nil {
		fail(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return nil
	}
	for _, p := range s.posts {
		if p.PostID == postID {
			return p
		}
	}
	fail(c, http.StatusNotFound, "존재하지 않는 게시글입니다.")
	return nil
}

func (p *post) listViewFor(nickName string) domain.Post {
	view := p.Post
	view.Contents = ""
	view.LikeCount = len(p.likedBy)
	view.Liked = p.likedBy[nickName]
	return view
}
