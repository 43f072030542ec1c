package dto

// Error represents a standard error response
type Error struct {
	Error string `json:"error" example:"error message"`
}

// ValidationError lists every violated field constraint.
type ValidationError struct {
	Error   string   `json:"error" example:"invalid request"`
	Details []string `json:"details" example:"Prospect name is required.,Company name is required."`
}
