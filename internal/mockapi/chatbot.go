package mockapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bookcalendar/internal/domain"
)

func (s *Server) recommend(c *gin.Context) {
	if _, found := s.currentMember(c); !found {
		return
	}
	ok(c, recommendedBooks)
}

func (s *Server) chat(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ChatMessage) == "" {
		fail(c, http.StatusBadRequest, "메시지를 입력해주세요.")
		return
	}

	s.mu.Lock()
	m.chatbotLog = append(m.chatbotLog, req.ChatMessage)
	genre := m.genre
	s.mu.Unlock()

	reply := "말씀해주신 취향을 바탕으로 몇 권 추천해드릴게요. 추천 목록을 확인해보세요."
	if genre != "" {
		reply = genre + " 장르를 좋아하신다면 추천 목록의 도서들이 잘 맞을 거예요."
	}
	ok(c, reply)
}
