package testutil

import (
	"github.com/Ramilbey/china-agent-bot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockPreferenceRepository is a mock for PreferenceRepository
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) Get(userID int64) (domain.Language, bool) {
	args := m.Called(userID)
	return args.Get(0).(domain.Language), args.Bool(1)
}

func (m *MockPreferenceRepository) Set(userID int64, lang domain.Language) error {
	args := m.Called(userID, lang)
	return args.Error(0)
}

// MockStatsRepository is a mock for StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Add(name string, delta int) error {
	args := m.Called(name, delta)
	return args.Error(0)
}

func (m *MockStatsRepository) AddLanguage(lang domain.Language, delta int) error {
	args := m.Called(lang, delta)
	return args.Error(0)
}

func (m *MockStatsRepository) Snapshot() domain.Stats {
	args := m.Called()
	return args.Get(0).(domain.Stats)
}

// MockRequestRepository is a mock for RequestRepository
type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Append(req domain.ServiceRequest) error {
	args := m.Called(req)
	return args.Error(0)
}

func (m *MockRequestRepository) All() []domain.ServiceRequest {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.ServiceRequest)
}

// MockNotifier is a mock for service.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(chatID int64, text string) error {
	args := m.Called(chatID, text)
	return args.Error(0)
}
