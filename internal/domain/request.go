package domain

import "time"

// ServiceRequest is a free-text submission logged for human follow-up
type ServiceRequest struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Text      string    `json:"text"`
	Language  Language  `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName returns the best available human-readable name
func (r ServiceRequest) DisplayName() string {
	name := r.FirstName
	if r.LastName != "" {
		if name != "" {
			name += " "
		}
		name += r.LastName
	}
	if name == "" {
		name = r.Username
	}
	return name
}
