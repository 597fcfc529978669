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

// Book drives the current-book and book-registration screens.
type Book struct {
	base

	mu         sync.Mutex
	completing bool
}

func NewBook(logger *zap.Logger, sess *session.Manager, client *api.Client, nav Navigator, alert Alerter) *Book {
	return &Book{base: newBase(logger, sess, client, nav, alert)}
}

// Load fetches the registered book. When none is registered the screen
// routes to registration instead of treating the empty result as an error.
func (b *Book) Load(ctx context.Context) (domain.Book, bool) {
	if !b.requireSession() {
		return domain.Book{}, false
	}
	book, err := b.api.BookInfo(ctx)
	if err != nil {
		b.fail(err, "도서 정보를 불러오는 데 실패했습니다.")
		return domain.Book{}, false
	}
	if book.BookName == "" {
		b.nav.Replace(RouteBookRegister)
		return domain.Book{}, false
	}
	return book, true
}

// Register validates the form and registers a new book. pages must be a
// positive number; validation failures never reach the network.
func (b *Book) Register(ctx context.Context, title, author, genre, pages, startDate, finishDate string) bool {
	if title == "" || author == "" || genre == "" || pages == "" || startDate == "" || finishDate == "" {
		b.alert.Alert("입력 오류", "모든 항목을 입력해주세요.")
		return false
	}
	totalPage, err := strconv.Atoi(pages)
	if err != nil || totalPage <= 0 {
		b.alert.Alert("입력 오류", "페이지 수는 숫자로 입력해주세요.")
		return false
	}
	if !b.requireSession() {
		return false
	}
	req := domain.BookRegisterRequest{
		BookName:   title,
		Author:     author,
		TotalPage:  totalPage,
		Genre:      genre,
		StartDate:  startDate,
		FinishDate: finishDate,
	}
	if err := b.api.RegisterBook(ctx, req); err != nil {
		b.fail(err, "도서 등록에 실패했어요.")
		return false
	}
	b.alert.Alert("도서 등록 완료!", "")
	b.nav.Push(RouteMain)
	return true
}

// Abandon gives up the current reading and returns to registration.
func (b *Book) Abandon(ctx context.Context) bool {
	if !b.requireSession() {
		return false
	}
	if err := b.api.AbandonBook(ctx); err != nil {
		b.fail(err, "독서 포기에 실패했습니다.")
		return false
	}
	b.alert.Alert("알림", "독서를 포기했습니다.")
	b.nav.Replace(RouteBookRegister)
	return true
}

// Complete finishes the reading and returns the recommendations. A second
// tap while the first request is in flight is ignored.
func (b *Book) Complete(ctx context.Context) ([]domain.RecommendedBook, bool) {
	b.mu.Lock()
	if b.completing {
		b.mu.Unlock()
		return nil, false
	}
	b.completing = true
	b.mu.Unlock()
	defer func() {
		b.mu.Lock()
		b.completing = false
		b.mu.Unlock()
	}()

	if !b.requireSession() {
		return nil, false
	}
	books, err := b.api.CompleteBook(ctx)
	if err != nil {
		b.fail(err, "도서 완료 처리 중 문제가 발생했습니다.")
		return nil, false
	}
	return books, true
}

// ExtendPeriod moves the target finish date.
func (b *Book) ExtendPeriod(ctx context.Context, finishDate string) bool {
	if finishDate == "" {
		b.alert.Alert("입력 오류", "종료일을 입력해주세요.")
		return false
	}
	if !b.requireSession() {
		return false
	}
	if err := b.api.UpdatePeriod(ctx, finishDate); err != nil {
		b.fail(err, "기간 변경에 실패했습니다.")
		return false
	}
	return true
}
