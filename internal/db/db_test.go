package db

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("sqlite3", ":memory:", zap.NewNop())
	require.NoError(t, err, "Failed to create test database")
	t.Cleanup(func() {
		assert.NoError(t, s.Close(), "Failed to close test database")
	})
	return s
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("nosuchdriver", "whatever", nil)
	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	s := setupTestStore(t)
	assert.NoError(t, s.Ping())
}

func TestCreate(t *testing.T) {
	s := setupTestStore(t)

	tests := []struct {
		name     string
		url      *URL
		wantErr  bool
		conflict bool
	}{
		{
			name:    "valid url",
			url:     &URL{ShortCode: "abc123", OriginalURL: "https://example.com/"},
			wantErr: false,
		},
		{
			name:     "duplicate short code",
			url:      &URL{ShortCode: "abc123", OriginalURL: "https://different.com/"},
			wantErr:  true,
			conflict: true,
		},
		{
			name:     "duplicate original url",
			url:      &URL{ShortCode: "xyz789", OriginalURL: "https://example.com/"},
			wantErr:  true,
			conflict: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Create(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.conflict, errors.Is(err, ErrConflict))
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, tt.url.ID)
			}
		})
	}
}

func TestGetByShortCode(t *testing.T) {
	s := setupTestStore(t)

	testURL := &URL{ShortCode: "TeSt12", OriginalURL: "https://test.com/"}
	require.NoError(t, s.Create(testURL))

	tests := []struct {
		name      string
		shortCode string
		wantErr   error
	}{
		{"existing short code", "TeSt12", nil},
		{"short codes are case sensitive", "test12", ErrNotFound},
		{"non-existing short code", "NOTFND", ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.GetByShortCode(tt.shortCode)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testURL.ID, got.ID)
			assert.Equal(t, testURL.OriginalURL, got.OriginalURL)
		})
	}
}

func TestGetByOriginalURL(t *testing.T) {
	s := setupTestStore(t)

	testURL := &URL{ShortCode: "orig01", OriginalURL: "https://original.com/"}
	require.NoError(t, s.Create(testURL))

	got, err := s.GetByOriginalURL("https://original.com/")
	require.NoError(t, err)
	assert.Equal(t, "orig01", got.ShortCode)

	got, err = s.GetByOriginalURL("https://notfound.com/")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, got)
}

func TestShortCodeExists(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, s.Create(&URL{ShortCode: "taken1", OriginalURL: "https://a.com/"}))

	exists, err := s.ShortCodeExists("taken1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.ShortCodeExists("free01")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestList(t *testing.T) {
	s := setupTestStore(t)

	urls, err := s.List()
	require.NoError(t, err)
	assert.NotNil(t, urls)
	assert.Empty(t, urls)

	codes := []string{"zzzzzz", "aaaaaa", "mmmmmm"}
	for i, code := range codes {
		require.NoError(t, s.Create(&URL{ShortCode: code, OriginalURL: fmt.Sprintf("https://site%d.com/", i)}))
	}

	urls, err = s.List()
	require.NoError(t, err)
	require.Len(t, urls, len(codes))
	for i, u := range urls {
		assert.Equal(t, codes[i], u.ShortCode, "records must come back in insertion order")
	}
}

func TestDeleteByShortCode(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, s.Create(&URL{ShortCode: "del123", OriginalURL: "https://delete.me/"}))
	require.NoError(t, s.Create(&URL{ShortCode: "keep12", OriginalURL: "https://keep.me/"}))

	require.NoError(t, s.DeleteByShortCode("del123"))

	_, err := s.GetByShortCode("del123")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.DeleteByShortCode("del123"), ErrNotFound)
	assert.ErrorIs(t, s.DeleteByShortCode("nope00"), ErrNotFound)

	urls, err := s.List()
	require.NoError(t, err)
	require.Len(t, urls, 1)
	assert.Equal(t, "keep12", urls[0].ShortCode)

	// The original URL is free again once its record is gone.
	assert.NoError(t, s.Create(&URL{ShortCode: "new123", OriginalURL: "https://delete.me/"}))
}

func TestUniquenessAcrossInsertions(t *testing.T) {
	s := setupTestStore(t)

	const n = 200
	for i := 0; i < n; i++ {
		require.NoError(t, s.Create(&URL{
			ShortCode:   fmt.Sprintf("c%05d", i),
			OriginalURL: fmt.Sprintf("https://example.com/%d", i),
		}))
	}

	urls, err := s.List()
	require.NoError(t, err)
	require.Len(t, urls, n)

	seen := make(map[string]string, n)
	for _, u := range urls {
		prev, dup := seen[u.ShortCode]
		assert.False(t, dup, "short code %s maps to both %s and %s", u.ShortCode, prev, u.OriginalURL)
		seen[u.ShortCode] = u.OriginalURL
	}
}

func TestTableName(t *testing.T) {
	assert.Equal(t, "urls", URL{}.TableName())
}

func TestConflictIsLoggedThroughZap(t *testing.T) {
	tests := []struct {
		name        string
		level       zapcore.Level
		wantEntries bool
	}{
		{"info level stays quiet", zapcore.InfoLevel, false},
		{"debug level traces gorm", zapcore.DebugLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(tt.level)
			s, err := Open("sqlite3", ":memory:", zap.New(core))
			require.NoError(t, err)
			defer s.Close()

			require.NoError(t, s.Create(&URL{ShortCode: "abc123", OriginalURL: "https://example.com/"}))
			err = s.Create(&URL{ShortCode: "abc123", OriginalURL: "https://other.com/"})
			require.ErrorIs(t, err, ErrConflict)

			if !tt.wantEntries {
				assert.Zero(t, logs.Len())
				return
			}

			conflicts := logs.FilterMessage("gorm").FilterFieldKey("message").All()
			found := false
			for _, e := range conflicts {
				if msg, _ := e.ContextMap()["message"].(string); strings.Contains(msg, "UNIQUE constraint failed") {
					found = true
					assert.Equal(t, zapcore.DebugLevel, e.Level)
				}
			}
			assert.True(t, found, "expected the constraint error in the zap stream")
			assert.NotZero(t, logs.FilterMessage("gorm query").Len())
		})
	}
}

func TestGormLoggerPrint(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := gormLogger{log: zap.New(core)}

	l.Print("sql", "db.go:10", 3*time.Millisecond, "SELECT 1", []interface{}{}, int64(1))
	l.Print("log", "db.go:11", "something happened")
	l.Print("odd")

	entries := logs.All()
	require.Len(t, entries, 3)

	query := entries[0].ContextMap()
	assert.Equal(t, "gorm query", entries[0].Message)
	assert.Equal(t, "SELECT 1", query["sql"])
	assert.Equal(t, "db.go:10", query["source"])
	assert.Equal(t, 3*time.Millisecond, query["duration"])

	assert.Equal(t, "gorm", entries[1].Message)
	assert.Equal(t, "something happened", entries[1].ContextMap()["message"])
	assert.Equal(t, "odd", entries[2].ContextMap()["message"])
}
