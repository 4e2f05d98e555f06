package testutil

import (
	"time"

	"github.com/Ramilbey/china-agent-bot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRequest creates a test service request
func NewTestRequest(userID int64, text string, lang domain.Language) domain.ServiceRequest {
	return domain.ServiceRequest{
		ID:        "test-request",
		UserID:    userID,
		Username:  "tester",
		FirstName: "Test",
		LastName:  "User",
		Text:      text,
		Language:  lang,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}
