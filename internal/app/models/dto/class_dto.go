package dto

// RosterEntry is one student entry in a class creation request.
// Entries with a blank name are skipped, not rejected.
type RosterEntry struct {
	Name string `json:"name"`
}

// CreateClassRequest represents a class creation request.
// Students must be present as a list; an empty list is allowed, which is
// why the field carries no binding tag and is checked in the service.
type CreateClassRequest struct {
	Name     string        `json:"name" binding:"required"`
	Students []RosterEntry `json:"students"`
}
