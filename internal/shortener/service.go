package shortener

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"url-shortener/internal/db"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks url-shortener/internal/shortener Store

// Store is the persistence the Service needs. *db.Store implements it.
type Store interface {
	Ping() error
	GetByShortCode(shortCode string) (*db.URL, error)
	GetByOriginalURL(originalURL string) (*db.URL, error)
	ShortCodeExists(shortCode string) (bool, error)
	Create(u *db.URL) error
	List() ([]db.URL, error)
	DeleteByShortCode(shortCode string) error
}

// maxInsertAttempts bounds how often Shorten retries an insert that lost a race.
const maxInsertAttempts = 3

// Link is the public view of a stored URL.
type Link struct {
	OriginalURL string `json:"original_url"`
	ShortCode   string `json:"short_code"`
	ShortURL    string `json:"short_url"`
}

// NewLink projects a record onto its public view.
func NewLink(u db.URL, baseURL string) Link {
	return Link{
		OriginalURL: u.OriginalURL,
		ShortCode:   u.ShortCode,
		ShortURL:    strings.TrimRight(baseURL, "/") + "/" + u.ShortCode,
	}
}

// Service implements shortening, listing, resolving and deleting URLs.
type Service struct {
	store     Store
	allocator *Allocator
	baseURL   string
	log       *zap.Logger
}

// NewService wires a Service. A nil logger disables logging.
func NewService(store Store, allocator *Allocator, baseURL string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:     store,
		allocator: allocator,
		baseURL:   baseURL,
		log:       log,
	}
}

// Shorten returns the link for rawURL, creating it on first use.
// Shortening the same URL again yields the same short code.
func (s *Service) Shorten(rawURL string) (Link, error) {
	originalURL, err := NormalizeURL(rawURL)
	if err != nil {
		return Link{}, err
	}

	for attempt := 1; ; attempt++ {
		existing, err := s.store.GetByOriginalURL(originalURL)
		if err == nil {
			return NewLink(*existing, s.baseURL), nil
		}
		if !errors.Is(err, db.ErrNotFound) {
			return Link{}, fmt.Errorf("look up %q: %w", originalURL, err)
		}

		code, err := s.allocator.Allocate(s.store.ShortCodeExists)
		if err != nil {
			return Link{}, err
		}

		record := &db.URL{OriginalURL: originalURL, ShortCode: code}
		err = s.store.Create(record)
		if err == nil {
			s.log.Info("shortened url",
				zap.String("original_url", originalURL),
				zap.String("short_code", code))
			return NewLink(*record, s.baseURL), nil
		}
		if !errors.Is(err, db.ErrConflict) || attempt >= maxInsertAttempts {
			return Link{}, fmt.Errorf("save %q: %w", originalURL, err)
		}

		// A concurrent writer took either the URL or the code; the next
		// round picks up its record or draws a new code.
		s.log.Warn("insert conflict, retrying",
			zap.String("original_url", originalURL),
			zap.String("short_code", code),
			zap.Int("attempt", attempt))
	}
}

// List returns every link in insertion order.
func (s *Service) List() ([]Link, error) {
	records, err := s.store.List()
	if err != nil {
		return nil, fmt.Errorf("list urls: %w", err)
	}

	links := make([]Link, 0, len(records))
	for _, r := range records {
		links = append(links, NewLink(r, s.baseURL))
	}
	return links, nil
}

// Resolve returns the original URL for shortCode, or db.ErrNotFound.
func (s *Service) Resolve(shortCode string) (string, error) {
	if !IsValidShortCode(shortCode) {
		return "", db.ErrNotFound
	}

	record, err := s.store.GetByShortCode(shortCode)
	if err != nil {
		return "", err
	}
	return record.OriginalURL, nil
}

// Delete removes the link for shortCode, or returns db.ErrNotFound.
func (s *Service) Delete(shortCode string) error {
	if !IsValidShortCode(shortCode) {
		return db.ErrNotFound
	}

	if err := s.store.DeleteByShortCode(shortCode); err != nil {
		return err
	}
	s.log.Info("deleted url", zap.String("short_code", shortCode))
	return nil
}

// Ping reports whether the backing store is reachable.
func (s *Service) Ping() error {
	return s.store.Ping()
}
