package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bookcalendar/internal/api"
	"bookcalendar/internal/config"
	"bookcalendar/internal/domain"
	"bookcalendar/internal/screen"
	"bookcalendar/internal/session"
)

// terminal is the Navigator and Alerter of the terminal front end. Routes
// set the screen the main loop renders next.
type terminal struct {
	route string
}

func (t *terminal) Replace(route string) { t.route = route }
func (t *terminal) Push(route string)    { t.route = route }

func (t *terminal) Alert(title, message string) {
	if message == "" {
		fmt.Printf("[%s]\n", title)
		return
	}
	fmt.Printf("[%s] %s\n", title, message)
}

type app struct {
	reader *bufio.Reader
	term   *terminal
	sess   *session.Manager

	auth      *screen.Auth
	book      *screen.Book
	review    *screen.Review
	community *screen.Community
	mypage    *screen.MyPage
	chatbot   *screen.Chatbot
}

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	var logger *zap.Logger
	if cfg.Debug {
		logger, _ = zap.NewDevelopment()
	} else {
		logger = zap.NewNop()
	}
	defer logger.Sync()

	store, err := session.NewFileStore(cfg.CredentialsDir)
	if err != nil {
		log.Fatal(err)
	}
	sess := session.NewManager(store, logger)
	client := api.New(cfg.BaseURL, cfg.Timeout, sess, logger)

	term := &terminal{route: screen.RouteLogin}
	sess.SetOnUnauthorized(func() { term.Replace(screen.RouteLogin) })

	a := &app{
		reader:    bufio.NewReader(os.Stdin),
		term:      term,
		sess:      sess,
		auth:      screen.NewAuth(logger, sess, client, term, term),
		book:      screen.NewBook(logger, sess, client, term, term),
		review:    screen.NewReview(logger, sess, client, term, term),
		community: screen.NewCommunity(logger, sess, client, term, term),
		mypage:    screen.NewMyPage(logger, sess, client, term, term),
		chatbot:   screen.NewChatbot(logger, sess, client, term, term),
	}

	// A stored credential skips the login screen until the server says 401.
	if _, ok := sess.Token(); ok {
		term.Replace(screen.RouteMain)
	}

	for {
		switch a.term.route {
		case screen.RouteLogin:
			a.loginScreen(ctx)
		case screen.RouteSignup:
			a.signupScreen(ctx)
		case screen.RouteMain:
			a.mainScreen(ctx)
		case screen.RouteBook:
			a.bookScreen(ctx)
		case screen.RouteBookRegister:
			a.bookRegisterScreen(ctx)
		case screen.RouteCommunity:
			a.communityScreen(ctx)
		case screen.RouteMyPage:
			a.myPageScreen(ctx)
		case screen.RouteCart:
			a.cartScreen(ctx)
		default:
			a.term.Replace(screen.RouteMain)
		}
	}
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	line, _ := a.reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func (a *app) loginScreen(ctx context.Context) {
	fmt.Println("\n===== BookCalendar 로그인 =====")
	fmt.Println("[1] 로그인")
	fmt.Println("[2] 회원가입")
	fmt.Println("[3] 종료")
	switch a.prompt("선택: ") {
	case "1":
		nickname := a.prompt("닉네임: ")
		password := a.prompt("비밀번호: ")
		a.auth.Login(ctx, nickname, password)
	case "2":
		a.term.Replace(screen.RouteSignup)
	case "3":
		os.Exit(0)
	}
}

func (a *app) signupScreen(ctx context.Context) {
	fmt.Println("\n===== 회원가입 =====")
	req := domain.RegisterRequest{
		NickName:    a.prompt("닉네임: "),
		Password:    a.prompt("비밀번호: "),
		PhoneNumber: a.prompt("전화번호: "),
		Genre:       a.prompt("선호 장르: "),
		Job:         a.prompt("직업: "),
		Birth:       a.prompt("생년월일(YYYY-MM-DD): "),
	}
	if !a.auth.Signup(ctx, req) {
		a.term.Replace(screen.RouteLogin)
	}
}

func (a *app) mainScreen(ctx context.Context) {
	fmt.Println("\n===== 메인 =====")
	if page, ok := a.review.MainPage(ctx); ok {
		fmt.Printf("독서 진행률: %d%% (D-%d)\n", page.Progress, page.RemainDate)
	}
	fmt.Println("[1] 현재 도서")
	fmt.Println("[2] 독후감 작성")
	fmt.Println("[3] 날짜별 독후감 조회")
	fmt.Println("[4] AI 추천 챗봇")
	fmt.Println("[5] 커뮤니티")
	fmt.Println("[6] 마이페이지")
	fmt.Println("[7] 종료")
	switch a.prompt("선택: ") {
	case "1":
		a.term.Push(screen.RouteBook)
	case "2":
		a.writeReviewFlow(ctx)
	case "3":
		date := a.prompt("조회 날짜(YYYY-MM-DD): ")
		if review, ok := a.review.ByDate(ctx, date); ok {
			fmt.Printf("%s의 독후감: %s\n", date, review.Contents)
		} else {
			fmt.Println("해당 날짜에 작성된 독후감이 없습니다.")
		}
	case "4":
		a.chatbotScreen(ctx)
	case "5":
		a.term.Push(screen.RouteCommunity)
	case "6":
		a.term.Push(screen.RouteMyPage)
	case "7":
		os.Exit(0)
	}
}

func (a *app) bookScreen(ctx context.Context) {
	book, ok := a.book.Load(ctx)
	if !ok {
		return
	}
	fmt.Println("\n===== 현재 읽고 있는 도서 =====")
	fmt.Printf("제목: %s\n저자: %s\n장르: %s\n총 페이지: %d\n시작일: %s\n종료일: %s\n",
		book.BookName, book.Author, book.Genre, book.TotalPage, book.StartDate, book.FinishDate)
	fmt.Println("[1] 독서 완료")
	fmt.Println("[2] 독서 포기")
	fmt.Println("[3] 기간 변경")
	fmt.Println("[4] 뒤로가기")
	switch a.prompt("선택: ") {
	case "1":
		if books, done := a.book.Complete(ctx); done {
			fmt.Println("독서를 완료했습니다! 다음 도서를 추천드려요:")
			printRecommendations(books)
			a.term.Replace(screen.RouteBookRegister)
		}
	case "2":
		a.book.Abandon(ctx)
	case "3":
		a.book.ExtendPeriod(ctx, a.prompt("새 종료일(YYYY-MM-DD): "))
	default:
		a.term.Replace(screen.RouteMain)
	}
}

func (a *app) bookRegisterScreen(ctx context.Context) {
	fmt.Println("\n===== 도서 등록 =====")
	title := a.prompt("제목: ")
	author := a.prompt("저자: ")
	genre := a.prompt("장르: ")
	pages := a.prompt("총 페이지 수: ")
	startDate := a.prompt("시작일(YYYY-MM-DD): ")
	finishDate := a.prompt("종료일(YYYY-MM-DD): ")
	if !a.book.Register(ctx, title, author, genre, pages, startDate, finishDate) {
		a.term.Replace(screen.RouteMain)
	}
}

func (a *app) writeReviewFlow(ctx context.Context) {
	fmt.Println("\n===== 오늘의 독후감 =====")
	pages := a.prompt("오늘까지 읽은 페이지: ")
	contents := a.prompt("독후감: ")
	questions, ok := a.review.Submit(ctx, pages, contents)
	if !ok {
		return
	}

	fmt.Println("\nAI가 질문을 준비했어요. 답변해주세요.")
	fmt.Println("Q1.", questions.Question1)
	a1 := a.prompt("답변: ")
	fmt.Println("Q2.", questions.Question2)
	a2 := a.prompt("답변: ")
	fmt.Println("Q3.", questions.Question3)
	a3 := a.prompt("답변: ")

	summary, ok := a.review.Answer(ctx, questions.QuestionID, a1, a2, a3)
	if !ok {
		return
	}
	fmt.Printf("\n진행률 %d%% (%d/%d쪽), 남은 기간 %d일\n",
		summary.Progress, summary.CurrentPages, summary.TotalPages, summary.RemainDate)
	if summary.AverageMessage != "" {
		fmt.Println(summary.AverageMessage)
	}
	if summary.AIMessage != "" {
		fmt.Println(summary.AIMessage)
	}
}

func (a *app) chatbotScreen(ctx context.Context) {
	fmt.Println("\n===== AI 추천 챗봇 ('목록'으로 추천 확인, '종료'로 나가기) =====")
	for {
		input := a.prompt("나 > ")
		if input == "종료" {
			return
		}
		if input == "목록" {
			if books, ok := a.chatbot.Recommend(ctx); ok {
				printRecommendations(books)
				idx := a.prompt("장바구니에 담을 번호(건너뛰려면 엔터): ")
				if n, err := strconv.Atoi(idx); err == nil && n >= 1 && n <= len(books) {
					a.chatbot.AddToCart(ctx, books[n-1])
				}
			}
			continue
		}
		if a.chatbot.Send(ctx, input) {
			messages := a.chatbot.Messages()
			fmt.Println("AI >", messages[len(messages)-1].Text)
		}
	}
}

func (a *app) communityScreen(ctx context.Context) {
	a.community.Refresh(ctx)
	fmt.Println("\n===== 커뮤니티 =====")
	if top := a.community.TopLiked(); len(top) > 0 {
		fmt.Println("-- 인기 게시글 --")
		for _, p := range top {
			fmt.Printf("  [%d] %s (작성자: %s, 좋아요 %d)\n", p.PostID, p.Title, p.Author, p.LikeCount)
		}
	}
	fmt.Println("-- 전체 게시글 --")
	for _, p := range a.community.Posts() {
		fmt.Printf("  [%d] %s (작성자: %s, 좋아요 %d)\n", p.PostID, p.Title, p.Author, p.LikeCount)
	}
	fmt.Println("[1] 게시글 보기  [2] 글쓰기  [3] 검색  [4] 좋아요  [5] 뒤로가기")
	switch a.prompt("선택: ") {
	case "1":
		a.postDetailFlow(ctx)
	case "2":
		title := a.prompt("제목: ")
		contents := a.prompt("본문: ")
		a.community.AddPost(ctx, title, contents)
	case "3":
		keyword := a.prompt("검색어: ")
		if results, ok := a.community.Search(ctx, keyword); ok {
			for _, p := range results {
				fmt.Printf("  [%d] %s (작성자: %s)\n", p.PostID, p.Title, p.Author)
			}
		}
	case "4":
		if id, err := strconv.Atoi(a.prompt("게시글 번호: ")); err == nil {
			a.community.ToggleLike(ctx, id)
		}
	default:
		a.term.Replace(screen.RouteMain)
	}
}

func (a *app) postDetailFlow(ctx context.Context) {
	id, err := strconv.Atoi(a.prompt("게시글 번호: "))
	if err != nil {
		return
	}
	post, ok := a.community.Detail(ctx, id)
	if !ok {
		return
	}
	fmt.Printf("\n%s\n작성자: %s\n\n%s\n", post.Title, post.Author, post.Contents)
	if comments, ok := a.community.Comments(ctx, id); ok {
		for _, comment := range comments {
			fmt.Printf("  %s · Lv.%d · 리뷰 %d개: %s\n",
				comment.NickName, comment.Rank, comment.ReviewCount, comment.Contents)
		}
	}
	fmt.Println("[1] 댓글 작성  [2] 스크랩  [3] 신고  [4] 삭제  [5] 뒤로가기")
	switch a.prompt("선택: ") {
	case "1":
		a.community.AddComment(ctx, id, a.prompt("댓글: "))
	case "2":
		a.community.Scrap(ctx, id)
	case "3":
		a.community.Report(ctx, id)
	case "4":
		a.community.DeletePost(ctx, id)
	}
}

func (a *app) myPageScreen(ctx context.Context) {
	if profile, ok := a.mypage.ProfileSimple(ctx); ok {
		fmt.Printf("\n===== 마이페이지: %s (Lv.%d) =====\n", profile.NickName, profile.Rank)
	} else {
		return
	}
	fmt.Println("[1] 내 정보")
	fmt.Println("[2] 정보 수정")
	fmt.Println("[3] 장바구니")
	fmt.Println("[4] 스크랩 목록")
	fmt.Println("[5] 내 독후감")
	fmt.Println("[6] 독서 통계")
	fmt.Println("[7] 로그아웃")
	fmt.Println("[8] 뒤로가기")
	switch a.prompt("선택: ") {
	case "1":
		if p, ok := a.mypage.ProfileAll(ctx); ok {
			fmt.Printf("닉네임: %s\n전화번호: %s\n장르: %s\n직업: %s\n생년월일: %s\n",
				p.NickName, p.PhoneNumber, p.Genre, p.Job, p.Birth)
		}
	case "2":
		a.editProfileFlow(ctx)
	case "3":
		a.term.Push(screen.RouteCart)
	case "4":
		a.scrapFlow(ctx)
	case "5":
		a.myReviewsFlow(ctx)
	case "6":
		if stats, ok := a.mypage.Statistics(ctx); ok {
			fmt.Printf("완독한 책: %d권, 작성한 독후감: %d개\n", stats.BookCount, stats.ReviewCount)
		}
	case "7":
		a.auth.Logout(ctx)
	default:
		a.term.Replace(screen.RouteMain)
	}
}

func (a *app) editProfileFlow(ctx context.Context) {
	current, ok := a.mypage.ProfileAll(ctx)
	if !ok {
		return
	}
	edited := current
	if v := a.prompt(fmt.Sprintf("전화번호 [%s]: ", current.PhoneNumber)); v != "" {
		edited.PhoneNumber = v
	}
	if v := a.prompt(fmt.Sprintf("장르 [%s]: ", current.Genre)); v != "" {
		edited.Genre = v
	}
	if v := a.prompt(fmt.Sprintf("직업 [%s]: ", current.Job)); v != "" {
		edited.Job = v
	}
	a.mypage.SaveProfile(ctx, edited)
}

func (a *app) cartScreen(ctx context.Context) {
	items, ok := a.mypage.LoadCart(ctx)
	if !ok {
		a.term.Replace(screen.RouteMyPage)
		return
	}
	fmt.Println("\n===== 장바구니 =====")
	for _, item := range items {
		fmt.Printf("  [%d] %s - %s\n", item.CartID, item.BookName, item.Author)
	}
	fmt.Println("[1] 도서 추가  [2] 삭제  [3] 뒤로가기")
	switch a.prompt("선택: ") {
	case "1":
		bookName := a.prompt("제목: ")
		author := a.prompt("저자: ")
		url := a.prompt("URL: ")
		a.mypage.AddCartItem(ctx, bookName, author, url)
	case "2":
		if id, err := strconv.Atoi(a.prompt("삭제할 번호: ")); err == nil {
			a.mypage.DeleteCartItem(ctx, id)
		}
	default:
		a.term.Replace(screen.RouteMyPage)
	}
}

func (a *app) scrapFlow(ctx context.Context) {
	scraps, ok := a.mypage.LoadScraps(ctx)
	if !ok {
		return
	}
	for _, s := range scraps {
		fmt.Printf("  [%d] %s (%s)\n", s.ScrapID, s.Title, s.DateTime)
	}
	fmt.Println("[1] 상세 보기  [2] 삭제  [3] 뒤로가기")
	switch a.prompt("선택: ") {
	case "1":
		if id, err := strconv.Atoi(a.prompt("스크랩 번호: ")); err == nil {
			if s, ok := a.mypage.ScrapDetail(ctx, id); ok {
				fmt.Printf("%s\n\n%s\n", s.Title, s.Contents)
			}
		}
	case "2":
		if id, err := strconv.Atoi(a.prompt("삭제할 번호: ")); err == nil {
			a.mypage.DeleteScrap(ctx, id)
		}
	}
}

func (a *app) myReviewsFlow(ctx context.Context) {
	reviews, ok := a.mypage.Reviews(ctx)
	if !ok {
		return
	}
	for _, r := range reviews {
		fmt.Printf("  [%d] %s (%s)\n", r.ReviewID, r.BookName, r.Date)
	}
	fmt.Println("[1] 상세 보기  [2] 삭제  [3] 뒤로가기")
	switch a.prompt("선택: ") {
	case "1":
		if id, err := strconv.Atoi(a.prompt("독후감 번호: ")); err == nil {
			if r, ok := a.mypage.ReviewDetail(ctx, id); ok {
				fmt.Printf("%s (%s)\n\n%s\n", r.BookName, r.Date, r.Contents)
			}
		}
	case "2":
		if id, err := strconv.Atoi(a.prompt("삭제할 번호: ")); err == nil {
			a.mypage.DeleteReview(ctx, id)
		}
	}
}

func printRecommendations(books []domain.RecommendedBook) {
	for i, book := range books {
		if book.URL != "" {
			fmt.Printf("  [%d] %s - %s (%s)\n", i+1, book.BookName, book.Author, book.URL)
		} else {
			fmt.Printf("  [%d] %s - %s\n", i+1, book.BookName, book.Author)
		}
	}
}
