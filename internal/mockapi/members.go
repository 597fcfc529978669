package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"bookcalendar/internal/domain"
)

func (s *Server) register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	if req.NickName == "" || req.Password == "" || req.PhoneNumber == "" ||
		req.Genre == "" || req.Job == "" || req.Birth == "" {
		fail(c, http.StatusBadRequest, "모든 항목을 입력해주세요.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, http.StatusInternalServerError, "회원가입에 실패했습니다.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.members[req.NickName]; exists {
		fail(c, http.StatusBadRequest, "이미 존재하는 닉네임입니다.")
		return
	}
	s.members[req.NickName] = &member{
		nickName:     req.NickName,
		passwordHash: string(hash),
		phoneNumber:  req.PhoneNumber,
		genre:        req.Genre,
		job:          req.Job,
		birth:        req.Birth,
		rank:         1,
		questions:    make(map[int]bool),
	}
	s.logger.Info("member registered", zap.String("nickName", req.NickName))
	ok(c, gin.H{"nickName": req.NickName})
}

func (s *Server) login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}

	s.mu.Lock()
	m := s.members[req.NickName]
	s.mu.Unlock()
	if m == nil || bcrypt.CompareHashAndPassword([]byte(m.passwordHash), []byte(req.Password)) != nil {
		fail(c, http.StatusBadRequest, "닉네임 또는 비밀번호가 올바르지 않습니다.")
		return
	}

	pair, err := s.tokens.GeneratePair(m.nickName)
	if err != nil {
		fail(c, http.StatusInternalServerError, "로그인에 실패했습니다.")
		return
	}
	ok(c, pair)
}

func (s *Server) logout(c *gin.Context) {
	// Stateless tokens: nothing to revoke, the client drops them locally.
	ok(c, nil)
}

func (s *Server) profileSimple(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ok(c, domain.ProfileSimple{NickName: m.nickName, Rank: m.rank})
}

func (s *Server) profileAll(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ok(c, domain.Profile{
		NickName:    m.nickName,
		PhoneNumber: m.phoneNumber,
		Genre:       m.genre,
		Job:         m.job,
		Birth:       m.birth,
	})
}

func (s *Server) updateProfile(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	var req domain.Profile
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if req.PhoneNumber != "" {
		m.phoneNumber = req.PhoneNumber
	}
	if req.Genre != "" {
		m.genre = req.Genre
	}
	if req.Job != "" {
		m.job = req.Job
	}
	if req.Birth != "" {
		m.birth = req.Birth
	}
	ok(c, nil)
}

func (s *Server) statistics(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ok(c, domain.Statistics{
		BookCount:   m.bookCount,
		ReviewCount: len(m.reviews),
		Rank:        m.rank,
	})
}
