package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/Ramilbey/china-agent-bot/internal/domain"
	"github.com/Ramilbey/china-agent-bot/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier delivers a text message to a single chat. The handler
// provides a Telegram-backed implementation.
type Notifier interface {
	Notify(chatID int64, text string) error
}

// RequestService handles service request submissions
type RequestService struct {
	requests repository.RequestRepository
	stats    repository.StatsRepository
	notifier Notifier
	adminIDs []int64
	logger   *zap.Logger
}

// NewRequestService creates a new request service
func NewRequestService(
	requests repository.RequestRepository,
	stats repository.StatsRepository,
	notifier Notifier,
	adminIDs []int64,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		requests: requests,
		stats:    stats,
		notifier: notifier,
		adminIDs: adminIDs,
		logger:   logger,
	}
}

// Submit records one service request: assigns ID and timestamp, appends
// it to the log, bumps the request counter and notifies every
// configured admin. Notification is best-effort per admin and never
// affects the submission outcome.
func (s *RequestService) Submit(req domain.ServiceRequest) (domain.ServiceRequest, error) {
	if strings.TrimSpace(req.Text) == "" {
		return req, fmt.Errorf("request text cannot be empty")
	}

	req.ID = uuid.NewString()
	req.CreatedAt = time.Now().UTC()

	if err := s.requests.Append(req); err != nil {
		return req, fmt.Errorf("append request: %w", err)
	}

	if err := s.stats.Add(domain.CounterRequests, 1); err != nil {
		s.logger.Error("Failed to increment request counter", zap.Error(err))
	}

	s.notifyAdmins(req)

	return req, nil
}

// All returns every logged request in submission order
func (s *RequestService) All() []domain.ServiceRequest {
	return s.requests.All()
}

func (s *RequestService) notifyAdmins(req domain.ServiceRequest) {
	text := formatAdminNotification(req)
	for _, adminID := range s.adminIDs {
		if err := s.notifier.Notify(adminID, text); err != nil {
			s.logger.Warn("Failed to notify admin",
				zap.Int64("admin_id", adminID),
				zap.String("request_id", req.ID),
				zap.Error(err),
			)
		}
	}
}

func formatAdminNotification(req domain.ServiceRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📨 New service request %s\n", req.ID)
	fmt.Fprintf(&b, "From: %s", req.DisplayName())
	if req.Username != "" {
		fmt.Fprintf(&b, " (@%s)", req.Username)
	}
	fmt.Fprintf(&b, " [%d]\n", req.UserID)
	fmt.Fprintf(&b, "Language: %s\n", req.Language)
	fmt.Fprintf(&b, "Time: %s\n\n", req.CreatedAt.Format(time.RFC3339))
	b.WriteString(req.Text)
	return b.String()
}
