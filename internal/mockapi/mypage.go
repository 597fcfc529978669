package mockapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookcalendar/internal/domain"
)

func (s *Server) listCart(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ok(c, m.cart)
}

func (s *Server) addCart(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	var req domain.CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	if req.BookName == "" || req.Author == "" {
		fail(c, http.StatusBadRequest, "도서 정보를 입력해주세요.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m.cart = append(m.cart, domain.CartItem{
		CartID:   s.nextID,
		BookName: req.BookName,
		Author:   req.Author,
		URL:      req.URL,
	})
	s.nextID++
	ok(c, nil)
}

func (s *Server) deleteCart(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	cartID, err := strconv.Atoi(c.Param("cartId"))
	if err != nil {
		fail(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range m.cart {
		if item.CartID == cartID {
			m.cart = append(m.cart[:i], m.cart[i+1:]...)
			ok(c, nil)
			return
		}
	}
	fail(c, http.StatusNotFound, "존재하지 않는 도서입니다.")
}

func (s *Server) listScraps(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Scrap, 0, len(m.scraps))
	for _, scrap := range m.scraps {
		scrap.Contents = ""
		out = append(out, scrap)
	}
	ok(c, out)
}

func (s *Server) scrapDetail(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	scrapID, err := strconv.Atoi(c.Param("scrapId"))
	if err != nil {
		fail(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, scrap := range m.scraps {
		if scrap.ScrapID == scrapID {
			ok(c, scrap)
			return
		}
	}
	fail(c, http.StatusNotFound, "존재하지 않는 스크랩입니다.")
}

func (s *Server) deleteScrap(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	scrapID, err := strconv.Atoi(c.Param("scrapId"))
	if err != nil {
		fail(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, scrap := range m.scraps {
		if scrap.ScrapID == scrapID {
			m.scraps = append(m.scraps[:i], m.scraps[i+1:]...)
			ok(c, nil)
			return
		}
	}
	fail(c, http.StatusNotFound, "존재하지 않는 스크랩입니다.")
}

func (s *Server) listReviews(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Review, 0, len(m.reviews))
	for _, r := range m.reviews {
		r.Contents = ""
		out = append(out, r)
	}
	ok(c, out)
}

func (s *Server) reviewDetail(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	reviewID, err := strconv.Atoi(c.Param("reviewId"))
	if err != nil {
		fail(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range m.reviews {
		if r.ReviewID == reviewID {
			ok(c, r)
			return
		}
	}
	fail(c, http.StatusNotFound, "존재하지 않는 독후감입니다.")
}

func (s *Server) deleteReview(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	reviewID, err := strconv.Atoi(c.Param("reviewId"))
	if err != nil {
		fail(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range m.reviews {
		if r.ReviewID == reviewID {
			m.reviews = append(m.reviews[:i], m.reviews[i+1:]...)
			ok(c, nil)
			return
		}
	}
	fail(c, http.StatusNotFound, "존재하지 않는 독후감입니다.")
}
