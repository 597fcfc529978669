package mockapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookcalendar/internal/domain"
)

const dateLayout = "2006-01-02"

func (s *Server) bookInfo(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.book == nil {
		// No registered book: an empty data payload, not an error.
		ok(c, nil)
		return
	}
	ok(c, *m.book)
}

func (s *Server) registerBook(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	var req domain.BookRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	if req.BookName == "" || req.Author == "" || req.TotalPage <= 0 {
		fail(c, http.StatusBadRequest, "도서 정보를 모두 입력해주세요.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if m.book != nil {
		fail(c, http.StatusBadRequest, "이미 등록된 도서가 존재합니다.")
		return
	}
	m.book = &domain.Book{
		BookName:   req.BookName,
		Author:     req.Author,
		Genre:      req.Genre,
		TotalPage:  req.TotalPage,
		StartDate:  req.StartDate,
		FinishDate: req.FinishDate,
	}
	ok(c, nil)
}

func (s *Server) abandonBook(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.book == nil {
		fail(c, http.StatusBadRequest, "등록된 도서가 없습니다.")
		return
	}
	m.book = nil
	ok(c, nil)
}

func (s *Server) completeBook(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.book == nil {
		fail(c, http.StatusBadRequest, "등록된 도서가 없습니다.")
		return
	}
	m.book = nil
	m.bookCount++
	if m.bookCount%3 == 0 {
		m.rank++
	}
	ok(c, recommendedBooks)
}

func (s *Server) updatePeriod(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	var req domain.PeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FinishDate == "" {
		fail(c, http.StatusBadRequest, "종료일을 입력해주세요.")
		return
	}
	if _, err := time.Parse(dateLayout, req.FinishDate); err != nil {
		fail(c, http.StatusBadRequest, "날짜 형식이 올바르지 않습니다.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.book == nil {
		fail(c, http.StatusBadRequest, "등록된 도서가 없습니다.")
		return
	}
	m.book.FinishDate = req.FinishDate
	ok(c, nil)
}

func (s *Server) writeReview(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	var req domain.ReviewWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	if req.Pages <= 0 || req.Contents == "" {
		fail(c, http.StatusBadRequest, "페이지 수와 독후감을 모두 입력해주세요.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if m.book == nil {
		fail(c, http.StatusBadRequest, "도서 등록 후 이용하세요.")
		return
	}
	today := time.Now().Format(dateLayout)
	for _, r := range m.reviews {
		if r.Date == today {
			fail(c, http.StatusBadRequest, "오늘 이미 작성한 독후감이 존재합니다.")
			return
		}
	}

	review := domain.Review{
		ReviewID: s.nextID,
		BookName: m.book.BookName,
		Pages:    req.Pages,
		Contents: req.Contents,
		Date:     today,
	}
	s.nextID++
	m.reviews = append(m.reviews, review)
	questionID := s.nextID
	s.nextID++
	m.questions[questionID] = false

	ok(c, domain.ReviewQuestions{
		QuestionID:    questionID,
		Question1:     "오늘 읽은 부분에서 가장 인상 깊었던 장면은 무엇인가요?",
		Question2:     "등장인물의 선택에 동의하시나요?",
		Question3:     "다음 내용은 어떻게 전개될 것 같나요?",
		ReviewSummary: m.summaryLocked(),
	})
}

func (s *Server) writeAnswers(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	var req domain.AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	if req.Answer1 == "" || req.Answer2 == "" || req.Answer3 == "" {
		fail(c, http.StatusBadRequest, "모든 질문에 답변해주세요.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	answered, exists := m.questions[req.QuestionID]
	if !exists {
		fail(c, http.StatusBadRequest, "존재하지 않는 질문입니다.")
		return
	}
	if answered {
		fail(c, http.StatusBadRequest, "이미 답변한 질문입니다.")
		return
	}
	m.questions[req.QuestionID] = true
	ok(c, m.summaryLocked())
}

func (s *Server) reviewByDate(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	date := c.Query("date")
	if date == "" {
		fail(c, http.StatusBadRequest, "조회할 날짜 정보가 없습니다.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range m.reviews {
		if r.Date == date {
			ok(c, r)
			return
		}
	}
	ok(c, nil)
}

func (s *Server) reviewCalendar(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	month := c.Query("month")
	if month == "" {
		fail(c, http.StatusBadRequest, "조회할 월 정보가 없습니다.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var days []domain.CalendarDay
	for _, r := range m.reviews {
		if len(r.Date) >= len(month) && r.Date[:len(month)] == month {
			days = append(days, domain.CalendarDay{Date: r.Date, Written: true})
		}
	}
	ok(c, days)
}

func (s *Server) mainPage(c *gin.Context) {
	m, found := s.currentMember(c)
	if !found {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	summary := m.summaryLocked()
	ok(c, domain.MainPage{Progress: summary.Progress, RemainDate: summary.RemainDate})
}

// summaryLocked computes the progress report. The server mutex must be held.
func (m *member) summaryLocked() domain.ReviewSummary {
	var summary domain.ReviewSummary
	if m.book == nil {
		return summary
	}
	summary.TotalPages = m.book.TotalPage
	summary.FinishDate = m.book.FinishDate
	for _, r := range m.reviews {
		if r.BookName == m.book.BookName && r.Pages > summary.CurrentPages {
			summary.CurrentPages = r.Pages
		}
	}
	if summary.TotalPages > 0 {
		summary.Progress = summary.CurrentPages * 100 / summary.TotalPages
	}
	if finish, err := time.Parse(dateLayout, m.book.FinishDate); err == nil {
		remain := int(time.Until(finish).Hours() / 24)
		if remain < 0 {
			remain = 0
		}
		summary.RemainDate = remain
	}
	summary.AverageMessage = "꾸준히 잘 읽고 있어요."
	summary.AIMessage = "남은 분량도 지금 속도면 충분히 완독할 수 있어요."
	return summary
}

var recommendedBooks = []domain.RecommendedBook{
	{BookName: "데미안", Author: "헤르만 헤세", URL: "https://www.aladin.co.kr/shop/wproduct.aspx?ItemId=1"},
	{BookName: "어린 왕자", Author: "생텍쥐페리", URL: "https://www.aladin.co.kr/shop/wproduct.aspx?ItemId=2"},
	{BookName: "1984", Author: "조지 오웰", URL: ""},
}
