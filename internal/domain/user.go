package domain

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle            UserState = "idle"
	StateAwaitingRequest UserState = "awaiting_request"
)
