package storage

import (
	"context"
	"errors"
)

// ErrNotFound indicates a requested birthday record is missing.
var ErrNotFound = errors.New("birthday record not found")

// BirthdayRecord stores one tracked birthday row.
//
// ID is assigned by the store at insert time and is never reused, even
// after the record is deleted. Date holds the original DD.MM.YYYY text
// exactly as the administrator entered it.
type BirthdayRecord struct {
	ID   int64
	Name string
	Date string
}

// Store persists birthday records in insertion order.
type Store interface {
	// InsertRecord appends a new record and returns its assigned id.
	InsertRecord(ctx context.Context, name string, date string) (int64, error)
	// ListRecords returns all records in insertion order. An empty
	// store yields an empty slice, not an error.
	ListRecords(ctx context.Context) ([]BirthdayRecord, error)
	// DeleteRecord removes one record by id. Missing records yield
	// ErrNotFound.
	DeleteRecord(ctx context.Context, id int64) error
}
