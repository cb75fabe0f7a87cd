package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" // PostgreSQL driver
	_ "github.com/jinzhu/gorm/dialects/sqlite"   // SQLite driver
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("url not found")
	// ErrConflict is returned when an insert hits the unique index on
	// original_url or short_code.
	ErrConflict = errors.New("url already exists")
)

// URL represents the data model for a shortened URL.
type URL struct {
	ID          uint   `gorm:"primary_key"`
	OriginalURL string `gorm:"unique_index;not null"`
	ShortCode   string `gorm:"unique_index;not null"`
}

// TableName pins the table name used by gorm.
func (URL) TableName() string {
	return "urls"
}

// Store is the persistence layer for URL records.
type Store struct {
	db *gorm.DB
}

// Open connects to the database and migrates the schema. gorm output goes to
// log; statements are only traced when its debug level is enabled.
func Open(driver, dataSourceName string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	conn, err := gorm.Open(driver, dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	conn.SetLogger(gormLogger{log: log})
	conn.LogMode(log.Core().Enabled(zapcore.DebugLevel))

	// SQLite allows a single writer; an in-memory database also lives on one connection only.
	if driver == "sqlite3" {
		conn.DB().SetMaxOpenConns(1)
	}

	s := &Store{db: conn}
	if err := s.Migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

// Migrate creates or updates the urls table.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&URL{}).Error; err != nil {
		return fmt.Errorf("migrate urls table: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks that the database is reachable.
func (s *Store) Ping() error {
	return s.db.DB().Ping()
}

// GetByShortCode retrieves a record by its short code.
func (s *Store) GetByShortCode(shortCode string) (*URL, error) {
	return s.first("short_code = ?", shortCode)
}

// GetByOriginalURL retrieves a record by its original URL.
func (s *Store) GetByOriginalURL(originalURL string) (*URL, error) {
	return s.first("original_url = ?", originalURL)
}

func (s *Store) first(query string, arg string) (*URL, error) {
	var u URL
	if err := s.db.Where(query, arg).First(&u).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ShortCodeExists reports whether a record already uses shortCode.
func (s *Store) ShortCodeExists(shortCode string) (bool, error) {
	var count int
	if err := s.db.Model(&URL{}).Where("short_code = ?", shortCode).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new record. A unique-index violation is reported as ErrConflict.
func (s *Store) Create(u *URL) error {
	if err := s.db.Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert %q: %w", u.ShortCode, ErrConflict)
		}
		return err
	}
	return nil
}

// List returns every record in insertion order.
func (s *Store) List() ([]URL, error) {
	urls := make([]URL, 0)
	if err := s.db.Order("id asc").Find(&urls).Error; err != nil {
		return nil, err
	}
	return urls, nil
}

// DeleteByShortCode removes the record with shortCode, or returns ErrNotFound.
func (s *Store) DeleteByShortCode(shortCode string) error {
	res := s.db.Where("short_code = ?", shortCode).Delete(&URL{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
