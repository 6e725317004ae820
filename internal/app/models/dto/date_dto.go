package dto

// AddDateRequest represents a new calendar marker for a class
type AddDateRequest struct {
	Date    string `json:"date" binding:"required"`
	ClassID int64  `json:"classId" binding:"required"`
}
