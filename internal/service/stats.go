package service

import (
	"fmt"
	"strings"

	"github.com/Ramilbey/china-agent-bot/internal/domain"
	"github.com/Ramilbey/china-agent-bot/internal/repository"

	"go.uber.org/zap"
)

// StatsService handles usage counters and reporting
type StatsService struct {
	stats  repository.StatsRepository
	logger *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(stats repository.StatsRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		stats:  stats,
		logger: logger,
	}
}

// CountMessage tallies one inbound message. Failures are logged only:
// a counter must never break message handling.
func (s *StatsService) CountMessage() {
	if err := s.stats.Add(domain.CounterMessages, 1); err != nil {
		s.logger.Error("Failed to increment message counter", zap.Error(err))
	}
}

// Snapshot returns a read-only copy of all counters
func (s *StatsService) Snapshot() domain.Stats {
	return s.stats.Snapshot()
}

// FormatReport renders the counters for the admin /stats reply
func (s *StatsService) FormatReport() string {
	snap := s.Snapshot()

	var b strings.Builder
	b.WriteString("📊 Bot statistics\n\n")
	fmt.Fprintf(&b, "Users: %d\n", snap.Counters[domain.CounterUsers])
	fmt.Fprintf(&b, "Messages: %d\n", snap.Counters[domain.CounterMessages])
	fmt.Fprintf(&b, "Requests: %d\n", snap.Counters[domain.CounterRequests])
	b.WriteString("\nBy language:\n")
	for _, lang := range domain.Languages {
		fmt.Fprintf(&b, "%s: %d\n", lang, snap.Languages[lang])
	}
	return b.String()
}
