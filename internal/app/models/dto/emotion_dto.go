package dto

// RecordEmotionRequest represents an emotion check-in for one student
type RecordEmotionRequest struct {
	Emotion string `json:"emotion" binding:"required"`
	Date    string `json:"date" binding:"required"`
}

// VotesResponse maps emotion labels to occurrence counts for one class/date.
// Labels with zero votes are omitted.
type VotesResponse struct {
	Votes map[string]int `json:"votes"`
}

// HistoryEntry is one dated emotion record in a student's history
type HistoryEntry struct {
	Date    string `json:"date"`
	Emotion string `json:"emotion"`
}
