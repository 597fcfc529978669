package domain

// Post is a community board entry. List endpoints omit Contents.
type Post struct {
	PostID    int    `json:"postId"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Contents  string `json:"contents,omitempty"`
	Date      string `json:"date,omitempty"`
	LikeCount int    `json:"likeCount"`
	Liked     bool   `json:"liked,omitempty"`
	Scrapped  bool   `json:"scrapped,omitempty"`
}

// PostWriteRequest creates a new board post.
type PostWriteRequest struct {
	Title    string `json:"title"`
	Contents string `json:"contents"`
}

// Comment belongs to a post and carries its author's gamification state.
type Comment struct {
	CommentID   int    `json:"commentId"`
	NickName    string `json:"nickName"`
	Rank        int    `json:"rank"`
	ReviewCount int    `json:"reviewCount"`
	Contents    string `json:"contents"`
	Date        string `json:"date"`
}

// CommentWriteRequest adds a comment to a post.
type CommentWriteRequest struct {
	Contents string `json:"contents"`
}
