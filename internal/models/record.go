package models

import (
	"fmt"
	"time"

	"github.com/kakeibo-app/backend/internal/importer/helpers"
	"gorm.io/gorm"
)

// RecordType is the direction of a record.
type RecordType string

const (
	TypeExpense RecordType = "expense"
	TypeIncome  RecordType = "income"
)

// Record is a single income or expense entry.
type Record struct {
	ID          uint64     `json:"id" gorm:"primaryKey;autoIncrement" example:"17"`
	Amount      int64      `json:"amount" gorm:"not null;check:amount_positive,amount > 0" example:"1200"`
	Description string     `json:"description" gorm:"not null" example:"ランチ"`
	Category    string     `json:"category" gorm:"not null" example:"食費"`
	Type        RecordType `json:"type" gorm:"not null;default:expense;check:type_valid,type IN ('expense', 'income')" example:"expense"`
	Date        time.Time  `json:"date" gorm:"not null" example:"2024-05-01T12:30:00Z"`
	ImportHash  string     `json:"-" gorm:"index"`
}

func (Record) TableName() string {
	return "expenses"
}

// DatePrecision is the resolution dates are stored with. All supported
// databases keep at least this precision, so a stored date reads back
// unchanged.
const DatePrecision = time.Millisecond

// normalizeDate returns the date in UTC, truncated to DatePrecision.
// The current time is used for zero dates.
func normalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Truncate(DatePrecision)
}

// BeforeCreate sets the creation date unless one was given and
// calculates the content hash.
func (r *Record) BeforeCreate(_ *gorm.DB) error {
	r.Date = normalizeDate(r.Date)
	r.ImportHash = r.Hash()
	return nil
}

// AfterFind returns all dates in UTC.
func (r *Record) AfterFind(_ *gorm.DB) error {
	r.Date = r.Date.UTC()
	return nil
}

// Hash is the SHA256 checksum of the record's content. The ID is not part of it.
func (r Record) Hash() string {
	return helpers.Sha256String(fmt.Sprintf("%d|%s|%s|%s|%s", r.Amount, r.Description, r.Category, r.Type, r.Date.UTC().Truncate(DatePrecision).Format(time.RFC3339Nano)))
}

// RecordFields is the validated data for a new record.
type RecordFields struct {
	Amount      int64
	Description string
	Category    string
	Type        RecordType
}

// Record returns a new, unsaved record with the fields set.
func (f RecordFields) Record() Record {
	return Record{
		Amount:      f.Amount,
		Description: f.Description,
		Category:    f.Category,
		Type:        f.Type,
	}
}

// apply merges the fields set in an update into the record and returns
// the names of the columns that changed.
func (r *Record) apply(u RecordUpdate) []string {
	var columns []string

	if u.Amount != nil {
		r.Amount = *u.Amount
		columns = append(columns, "amount")
	}

	if u.Description != nil {
		r.Description = *u.Description
		columns = append(columns, "description")
	}

	if u.Category != nil {
		r.Category = *u.Category
		columns = append(columns, "category")
	}

	if u.Type != nil {
		r.Type = *u.Type
		columns = append(columns, "type")
	}

	return columns
}
