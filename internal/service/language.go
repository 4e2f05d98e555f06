package service

import (
	"github.com/Ramilbey/china-agent-bot/internal/domain"
	"github.com/Ramilbey/china-agent-bot/internal/repository"

	"go.uber.org/zap"
)

// LanguageService handles language preferences and the per-language
// user counters that move with them
type LanguageService struct {
	prefs  repository.PreferenceRepository
	stats  repository.StatsRepository
	logger *zap.Logger
}

// NewLanguageService creates a new language service
func NewLanguageService(
	prefs repository.PreferenceRepository,
	stats repository.StatsRepository,
	logger *zap.Logger,
) *LanguageService {
	return &LanguageService{
		prefs:  prefs,
		stats:  stats,
		logger: logger,
	}
}

// Language returns the stored language for userID, defaulting to
// English. Never fails.
func (s *LanguageService) Language(userID int64) domain.Language {
	lang, _ := s.prefs.Get(userID)
	return lang
}

// HasLanguage reports whether userID has ever chosen a language
func (s *LanguageService) HasLanguage(userID int64) bool {
	_, ok := s.prefs.Get(userID)
	return ok
}

// SetLanguage stores lang for userID and keeps the user counters in
// step: a first-time choice counts a new user, a change moves one count
// between language buckets, choosing the current language again changes
// nothing. Counter write failures are logged and do not fail the call;
// the preference itself is what the user asked for.
func (s *LanguageService) SetLanguage(userID int64, lang domain.Language) error {
	current, known := s.prefs.Get(userID)
	if known && current == lang {
		return nil
	}

	if err := s.prefs.Set(userID, lang); err != nil {
		return err
	}

	if known {
		if err := s.stats.AddLanguage(current, -1); err != nil {
			s.logger.Error("Failed to decrement language counter",
				zap.String("language", string(current)),
				zap.Error(err),
			)
		}
	} else {
		if err := s.stats.Add(domain.CounterUsers, 1); err != nil {
			s.logger.Error("Failed to increment user counter", zap.Error(err))
		}
	}

	if err := s.stats.AddLanguage(lang, 1); err != nil {
		s.logger.Error("Failed to increment language counter",
			zap.String("language", string(lang)),
			zap.Error(err),
		)
	}

	return nil
}
