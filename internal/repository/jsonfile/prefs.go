package jsonfile

import (
	"strconv"
	"sync"

	"github.com/Ramilbey/china-agent-bot/internal/domain"
)

// PrefsStore implements repository.PreferenceRepository over a JSON
// object keyed by user ID
type PrefsStore struct {
	mu    sync.RWMutex
	path  string
	langs map[string]domain.Language
}

// NewPrefsStore loads the preference document at path
func NewPrefsStore(path string) (*PrefsStore, error) {
	s := &PrefsStore{
		path:  path,
		langs: make(map[string]domain.Language),
	}
	if err := readDocument(path, &s.langs); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the stored language for userID. The second result is
// false only when the user has never chosen a language; an entry with a
// corrupted code still counts as known so the user is not re-counted,
// it just falls back to the default language.
func (s *PrefsStore) Get(userID int64) (domain.Language, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lang, ok := s.langs[strconv.FormatInt(userID, 10)]
	if !ok {
		return domain.DefaultLanguage, false
	}
	if !lang.Valid() {
		return domain.DefaultLanguage, true
	}
	return lang, true
}

// Set stores the language for userID and persists the document
func (s *PrefsStore) Set(userID int64, lang domain.Language) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.langs[strconv.FormatInt(userID, 10)] = lang
	return writeDocument(s.path, s.langs)
}
