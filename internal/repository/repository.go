package repository

import (
	"github.com/Ramilbey/china-agent-bot/internal/domain"
)

// PreferenceRepository defines language preference operations
type PreferenceRepository interface {
	Get(userID int64) (domain.Language, bool)
	Set(userID int64, lang domain.Language) error
}

// StatsRepository defines usage counter operations
type StatsRepository interface {
	Add(name string, delta int) error
	AddLanguage(lang domain.Language, delta int) error
	Snapshot() domain.Stats
}

// RequestRepository defines service request log operations
type RequestRepository interface {
	Append(req domain.ServiceRequest) error
	All() []domain.ServiceRequest
}
