package domain

// ProfileSimple is the header block of the my-page screen.
type ProfileSimple struct {
	NickName string `json:"nickName"`
	Rank     int    `json:"rank"`
}

// Profile is the full member profile, also used as the PATCH body.
type Profile struct {
	NickName    string `json:"nickName"`
	PhoneNumber string `json:"phoneNumber"`
	Genre       string `json:"genre"`
	Job         string `json:"job"`
	Birth       string `json:"birth"`
}

// CartItem is a saved book the member wants to read later.
type CartItem struct {
	CartID   int    `json:"cartId"`
	BookName string `json:"bookName"`
	Author   string `json:"author"`
	URL      string `json:"url,omitempty"`
}

// CartAddRequest adds a book to the cart by hand or from a recommendation.
type CartAddRequest struct {
	BookName string `json:"bookName"`
	Author   string `json:"author"`
	URL      string `json:"url"`
}

// Scrap is a bookmarked community post.
type Scrap struct {
	ScrapID  int    `json:"scrapId"`
	Title    string `json:"title"`
	Contents string `json:"contents,omitempty"`
	DateTime string `json:"dateTime"`
}

// Statistics is the challenge screen payload.
type Statistics struct {
	BookCount   int `json:"bookCount"`
	ReviewCount int `json:"reviewCount,omitempty"`
	Rank        int `json:"rank,omitempty"`
}
