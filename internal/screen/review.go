package screen

import (
	"context"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"bookcalendar/internal/api"
	"bookcalendar/internal/domain"
	"bookcalendar/internal/session"
)

// Review drives the daily report form and the follow-up question screen.
type Review struct {
	base

	mu         sync.Mutex
	submitting bool
}

func NewReview(logger *zap.Logger, sess *session.Manager, client *api.Client, nav Navigator, alert Alerter) *Review {
	return &Review{base: newBase(logger, sess, client, nav, alert)}
}

// Submit validates and sends today's reading log. An empty report or a
// non-numeric page count blocks the call; a submit while one is already in
// flight is dropped.
func (r *Review) Submit(ctx context.Context, pages, contents string) (domain.ReviewQuestions, bool) {
	r.mu.Lock()
	if r.submitting {
		r.mu.Unlock()
		return domain.ReviewQuestions{}, false
	}
	r.submitting = true
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.submitting = false
		r.mu.Unlock()
	}()

	if pages == "" || contents == "" {
		r.alert.Alert("입력 오류", "페이지 수와 독후감을 모두 입력해주세요.")
		return domain.ReviewQuestions{}, false
	}
	pageCount, err := strconv.Atoi(pages)
	if err != nil || pageCount <= 0 {
		r.alert.Alert("입력 오류", "페이지 수는 숫자로 입력해주세요.")
		return domain.ReviewQuestions{}, false
	}
	if !r.requireSession() {
		return domain.ReviewQuestions{}, false
	}

	questions, err := r.api.WriteReview(ctx, pageCount, contents)
	if err != nil {
		r.logger.Warn("review submit failed", zap.Error(err))
		r.fail(err, "독후감 등록에 실패했습니다.")
		return domain.ReviewQuestions{}, false
	}
	return questions, true
}

// Answer sends the three follow-up answers and returns the summary shown
// on the result screen. All questions must be answered.
func (r *Review) Answer(ctx context.Context, questionID int, a1, a2, a3 string) (domain.ReviewSummary, bool) {
	r.mu.Lock()
	if r.submitting {
		r.mu.Unlock()
		return domain.ReviewSummary{}, false
	}
	r.submitting = true
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.submitting = false
		r.mu.Unlock()
	}()

	if a1 == "" || a2 == "" || a3 == "" {
		r.alert.Alert("입력 오류", "모든 질문에 답변해주세요!")
		return domain.ReviewSummary{}, false
	}
	if !r.requireSession() {
		return domain.ReviewSummary{}, false
	}

	summary, err := r.api.WriteAnswers(ctx, domain.AnswerRequest{
		QuestionID: questionID,
		Answer1:    a1,
		Answer2:    a2,
		Answer3:    a3,
	})
	if err != nil {
		r.fail(err, "서버와 통신 중 문제가 발생했습니다.")
		return domain.ReviewSummary{}, false
	}
	return summary, true
}

// ByDate fetches the review written on date. ok is false when nothing was
// written that day or the call failed.
func (r *Review) ByDate(ctx context.Context, date string) (domain.Review, bool) {
	if date == "" {
		r.alert.Alert("오류", "조회할 날짜 정보가 없습니다.")
		return domain.Review{}, false
	}
	if !r.requireSession() {
		return domain.Review{}, false
	}
	review, err := r.api.ReviewByDate(ctx, date)
	if err != nil {
		r.fail(err, "독후감 정보를 불러오는데 실패했습니다.")
		return domain.Review{}, false
	}
	return review, review.Contents != ""
}

// Calendar fetches the written-day markers for a month.
func (r *Review) Calendar(ctx context.Context, month string) ([]domain.CalendarDay, bool) {
	if !r.requireSession() {
		return nil, false
	}
	days, err := r.api.ReviewCalendar(ctx, month)
	if err != nil {
		r.fail(err, "달력 정보를 불러오는데 실패했습니다.")
		return nil, false
	}
	return days, true
}

// MainPage fetches the home screen progress block.
func (r *Review) MainPage(ctx context.Context) (domain.MainPage, bool) {
	if !r.requireSession() {
		return domain.MainPage{}, false
	}
	page, err := r.api.MainPage(ctx)
	if err != nil {
		r.fail(err, "진행 상황을 불러오는데 실패했습니다.")
		return domain.MainPage{}, false
	}
	return page, true
}
