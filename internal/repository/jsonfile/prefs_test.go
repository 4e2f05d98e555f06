package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Ramilbey/china-agent-bot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefsStore_DefaultForUnknownUser(t *testing.T) {
	store, err := NewPrefsStore(filepath.Join(t.TempDir(), "user_lang.json"))
	require.NoError(t, err)

	lang, known := store.Get(42)
	assert.Equal(t, domain.LanguageEnglish, lang)
	assert.False(t, known)
}

func TestPrefsStore_SetAndGet(t *testing.T) {
	store, err := NewPrefsStore(filepath.Join(t.TempDir(), "user_lang.json"))
	require.NoError(t, err)

	require.NoError(t, store.Set(42, domain.LanguageRussian))

	lang, known := store.Get(42)
	assert.Equal(t, domain.LanguageRussian, lang)
	assert.True(t, known)
}

func TestPrefsStore_SurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_lang.json")

	store, err := NewPrefsStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(42, domain.LanguageRussian))
	require.NoError(t, store.Set(43, domain.LanguageUzbek))

	reloaded, err := NewPrefsStore(path)
	require.NoError(t, err)

	lang, known := reloaded.Get(42)
	assert.True(t, known)
	assert.Equal(t, domain.LanguageRussian, lang)

	lang, known = reloaded.Get(43)
	assert.True(t, known)
	assert.Equal(t, domain.LanguageUzbek, lang)
}

func TestPrefsStore_FileIsPrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_lang.json")

	store, err := NewPrefsStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(42, domain.LanguageUzbek))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"42\": \"uz\"")
}

func TestPrefsStore_InvalidStoredCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_lang.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"42": "xx"}`), 0o644))

	store, err := NewPrefsStore(path)
	require.NoError(t, err)

	// The entry is corrupted but the user is still known, so callers
	// must not count them as a first-time user again.
	lang, known := store.Get(42)
	assert.Equal(t, domain.DefaultLanguage, lang)
	assert.True(t, known)
}

func TestPrefsStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_lang.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store, err := NewPrefsStore(path)
	assert.Error(t, err)
	assert.Nil(t, store)
}
