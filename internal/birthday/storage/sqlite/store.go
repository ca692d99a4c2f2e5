package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/louisbranch/birthdaybot/internal/birthday/storage"
	"github.com/louisbranch/birthdaybot/internal/birthday/storage/sqlite/migrations"
	sqlitemigrate "github.com/louisbranch/birthdaybot/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for birthday records.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a birthday SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// InsertRecord appends one birthday row and returns the assigned id.
// AUTOINCREMENT keeps ids monotonic so deleted ids are never handed out
// again.
func (s *Store) InsertRecord(ctx context.Context, name string, date string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	date = strings.TrimSpace(date)
	if name == "" {
		return 0, fmt.Errorf("name is required")
	}
	if date == "" {
		return 0, fmt.Errorf("date is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO birthdays (name, date) VALUES (?, ?)
`, name, date)
	if err != nil {
		return 0, fmt.Errorf("insert birthday: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert birthday last id: %w", err)
	}
	return id, nil
}

// ListRecords returns all birthday rows in insertion order.
func (s *Store) ListRecords(ctx context.Context) ([]storage.BirthdayRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, name, date
FROM birthdays
ORDER BY id ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list birthdays: %w", err)
	}
	defer rows.Close()

	records := make([]storage.BirthdayRecord, 0)
	for rows.Next() {
		var record storage.BirthdayRecord
		if err := rows.Scan(&record.ID, &record.Name, &record.Date); err != nil {
			return nil, fmt.Errorf("scan birthday row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate birthday rows: %w", err)
	}
	return records, nil
}

// DeleteRecord removes one birthday row by id.
func (s *Store) DeleteRecord(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(ctx, `
DELETE FROM birthdays WHERE id = ?
`, id)
	if err != nil {
		return fmt.Errorf("delete birthday: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete birthday rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
