package domain

// Book mirrors the currently registered book as the backend reports it.
type Book struct {
	BookName   string `json:"bookName"`
	Author     string `json:"author"`
	Genre      string `json:"genre"`
	TotalPage  int    `json:"totalPage"`
	StartDate  string `json:"startDate"`
	FinishDate string `json:"finishDate,omitempty"`
}

// BookRegisterRequest registers a new book to read.
type BookRegisterRequest struct {
	BookName   string `json:"bookName"`
	Author     string `json:"author"`
	TotalPage  int    `json:"totalPage"`
	Genre      string `json:"genre"`
	StartDate  string `json:"startDate"`
	FinishDate string `json:"finishDate"`
}

// PeriodRequest moves the target finish date of the current book.
type PeriodRequest struct {
	FinishDate string `json:"finishDate"`
}

// RecommendedBook is one entry of a recommendation list.
type RecommendedBook struct {
	BookName string `json:"bookName"`
	Author   string `json:"author"`
	URL      string `json:"url,omitempty"`
}
