package domain

// ReviewWriteRequest submits a daily reading log.
type ReviewWriteRequest struct {
	Pages    int    `json:"pages"`
	Contents string `json:"contents"`
}

// ReviewQuestions is returned after writing a review: three AI follow-up
// questions plus the progress summary fields shown on the result screen.
type ReviewQuestions struct {
	QuestionID int    `json:"questionId"`
	Question1  string `json:"question1"`
	Question2  string `json:"question2"`
	Question3  string `json:"question3"`
	ReviewSummary
}

// ReviewSummary carries the post-submit reading progress report.
type ReviewSummary struct {
	TotalPages     int    `json:"totalPages"`
	CurrentPages   int    `json:"currentPages"`
	Progress       int    `json:"progress"`
	FinishDate     string `json:"finishDate"`
	RemainDate     int    `json:"remainDate"`
	AverageMessage string `json:"averageMessage"`
	AIMessage      string `json:"aiMessage"`
}

// AnswerRequest submits answers for the follow-up questions of a review.
type AnswerRequest struct {
	QuestionID int    `json:"questionId"`
	Answer1    string `json:"answer1"`
	Answer2    string `json:"answer2"`
	Answer3    string `json:"answer3"`
	Feedback1  int    `json:"feedback1"`
	Feedback2  int    `json:"feedback2"`
	Feedback3  int    `json:"feedback3"`
}

// Review is a stored daily reading log.
type Review struct {
	ReviewID int    `json:"reviewId"`
	BookName string `json:"bookName,omitempty"`
	Pages    int    `json:"pages,omitempty"`
	Contents string `json:"contents"`
	Date     string `json:"date,omitempty"`
}

// MainPage is the reading status block of the home screen.
type MainPage struct {
	Progress   int `json:"progress"`
	RemainDate int `json:"remainDate"`
}

// CalendarDay marks one day of the review calendar.
type CalendarDay struct {
	Date    string `json:"date"`
	Written bool   `json:"written"`
}
