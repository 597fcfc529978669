package domain

// ChatRequest sends one user utterance to the AI recommender.
type ChatRequest struct {
	ChatMessage string `json:"chatMessage"`
}
