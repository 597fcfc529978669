package screen

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"bookcalendar/internal/api"
	"bookcalendar/internal/domain"
	"bookcalendar/internal/session"
)

// MyPage drives the account screens: profile, cart, scraps, written
// reviews, statistics and logout.
type MyPage struct {
	base

	mu     sync.Mutex
	cart   []domain.CartItem
	scraps []domain.Scrap
}

func NewMyPage(logger *zap.Logger, sess *session.Manager, client *api.Client, nav Navigator, alert Alerter) *MyPage {
	return &MyPage{base: newBase(logger, sess, client, nav, alert)}
}

// ProfileSimple loads the nickname/rank header.
func (m *MyPage) ProfileSimple(ctx context.Context) (domain.ProfileSimple, bool) {
	if !m.requireSession() {
		return domain.ProfileSimple{}, false
	}
	p, err := m.api.ProfileSimple(ctx)
	if err != nil {
		m.fail(err, "회원 정보를 불러오지 못했습니다.")
		return domain.ProfileSimple{}, false
	}
	return p, true
}

// ProfileAll loads the full profile.
func (m *MyPage) ProfileAll(ctx context.Context) (domain.Profile, bool) {
	if !m.requireSession() {
		return domain.Profile{}, false
	}
	p, err := m.api.ProfileAll(ctx)
	if err != nil {
		m.fail(err, "회원 정보를 불러오지 못했습니다.")
		return domain.Profile{}, false
	}
	return p, true
}

// SaveProfile patches edited profile fields.
func (m *MyPage) SaveProfile(ctx context.Context, p domain.Profile) bool {
	if p.NickName == "" {
		m.alert.Alert("입력 오류", "닉네임을 입력해주세요.")
		return false
	}
	if !m.requireSession() {
		return false
	}
	if err := m.api.UpdateProfile(ctx, p); err != nil {
		m.fail(err, "정보를 저장하는 데 문제가 발생했습니다.")
		return false
	}
	m.alert.Alert("저장 완료", "프로필 정보가 수정되었습니다.")
	return true
}

// LoadCart fetches the saved books.
func (m *MyPage) LoadCart(ctx context.Context) ([]domain.CartItem, bool) {
	if !m.requireSession() {
		return nil, false
	}
	items, err := m.api.Cart(ctx)
	if err != nil {
		m.fail(err, "장바구니를 불러오지 못했습니다.")
		return nil, false
	}
	m.mu.Lock()
	m.cart = items
	m.mu.Unlock()
	return items, true
}

// AddCartItem validates the form and saves a book.
func (m *MyPage) AddCartItem(ctx context.Context, bookName, author, url string) bool {
	if bookName == "" || author == "" || url == "" {
		m.alert.Alert("입력 오류", "모든 항목을 입력해주세요.")
		return false
	}
	if !m.requireSession() {
		return false
	}
	req := domain.CartAddRequest{BookName: bookName, Author: author, URL: url}
	if err := m.api.AddCartItem(ctx, req); err != nil {
		m.fail(err, "도서 추가 중 문제가 발생했습니다.")
		return false
	}
	m.alert.Alert("도서 등록 완료", "장바구니에 도서가 추가되었습니다.")
	return true
}

// DeleteCartItem removes a saved book optimistically: the row disappears
// first and comes back if the server rejects the delete.
func (m *MyPage) DeleteCartItem(ctx context.Context, cartID int) bool {
	if !m.requireSession() {
		return false
	}
	m.mu.Lock()
	before := m.cart
	kept := make([]domain.CartItem, 0, len(m.cart))
	for _, item := range m.cart {
		if item.CartID != cartID {
			kept = append(kept, item)
		}
	}
	m.cart = kept
	m.mu.Unlock()

	if err := m.api.DeleteCartItem(ctx, cartID); err != nil {
		m.mu.Lock()
		m.cart = before
		m.mu.Unlock()
		m.fail(err, "삭제 중 문제가 발생했습니다.")
		return false
	}
	m.alert.Alert("삭제 완료", "도서가 장바구니에서 삭제되었습니다.")
	return true
}

// Cart returns the current cart snapshot.
func (m *MyPage) Cart() []domain.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.CartItem(nil), m.cart...)
}

// LoadScraps fetches the bookmarked posts.
func (m *MyPage) LoadScraps(ctx context.Context) ([]domain.Scrap, bool) {
	if !m.requireSession() {
		return nil, false
	}
	scraps, err := m.api.Scraps(ctx)
	if err != nil {
		m.fail(err, "스크랩 목록을 불러오지 못했습니다.")
		return nil, false
	}
	m.mu.Lock()
	m.scraps = scraps
	m.mu.Unlock()
	return scraps, true
}

// ScrapDetail fetches one bookmark.
func (m *MyPage) ScrapDetail(ctx context.Context, scrapID int) (domain.Scrap, bool) {
	if !m.requireSession() {
		return domain.Scrap{}, false
	}
	s, err := m.api.ScrapDetail(ctx, scrapID)
	if err != nil {
		m.fail(err, "스크랩을 불러오지 못했습니다.")
		return domain.Scrap{}, false
	}
	return s, true
}

// DeleteScrap removes a bookmark optimistically with rollback.
func (m *MyPage) DeleteScrap(ctx context.Context, scrapID int) bool {
	if !m.requireSession() {
		return false
	}
	m.mu.Lock()
	before := m.scraps
	kept := make([]domain.Scrap, 0, len(m.scraps))
	for _, s := range m.scraps {
		if s.ScrapID != scrapID {
			kept = append(kept, s)
		}
	}
	m.scraps = kept
	m.mu.Unlock()

	if err := m.api.DeleteScrap(ctx, scrapID); err != nil {
		m.mu.Lock()
		m.scraps = before
		m.mu.Unlock()
		m.fail(err, "삭제 중 문제가 발생했습니다.")
		return false
	}
	return true
}

// Scraps returns the current scrap snapshot.
func (m *MyPage) Scraps() []domain.Scrap {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Scrap(nil), m.scraps...)
}

// Reviews fetches the member's written reviews.
func (m *MyPage) Reviews(ctx context.Context) ([]domain.Review, bool) {
	if !m.requireSession() {
		return nil, false
	}
	reviews, err := m.api.MyReviews(ctx)
	if err != nil {
		m.fail(err, "독후감 목록을 불러오지 못했습니다.")
		return nil, false
	}
	return reviews, true
}

// ReviewDetail fetches one written review.
func (m *MyPage) ReviewDetail(ctx context.Context, reviewID int) (domain.Review, bool) {
	if !m.requireSession() {
		return domain.Review{}, false
	}
	review, err := m.api.MyReview(ctx, reviewID)
	if err != nil {
		m.fail(err, "독후감을 불러오지 못했습니다.")
		return domain.Review{}, false
	}
	return review, true
}

// DeleteReview removes a written review.
func (m *MyPage) DeleteReview(ctx context.Context, reviewID int) bool {
	if !m.requireSession() {
		return false
	}
	if err := m.api.DeleteReview(ctx, reviewID); err != nil {
		m.fail(err, "삭제 중 문제가 발생했습니다.")
		return false
	}
	m.alert.Alert("삭제 완료", "해당 독후감이 삭제되었습니다.")
	return true
}

// Statistics fetches the challenge counters.
func (m *MyPage) Statistics(ctx context.Context) (domain.Statistics, bool) {
	if !m.requireSession() {
		return domain.Statistics{}, false
	}
	stats, err := m.api.Statistics(ctx)
	if err != nil {
		m.fail(err, "통계 정보를 불러오지 못했습니다.")
		return domain.Statistics{}, false
	}
	return stats, true
}
