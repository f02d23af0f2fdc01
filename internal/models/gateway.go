package models

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Gateway is the persistence abstraction for records.
type Gateway interface {
	// List returns all records in insertion order.
	List(ctx context.Context) ([]Record, error)

	// Get returns a record. The error wraps ErrResourceNotFound if
	// no record has the id.
	Get(ctx context.Context, id uint64) (Record, error)

	// Create stores a new record. The id and date are assigned by the store.
	Create(ctx context.Context, fields RecordFields) (Record, error)

	// Update merges the fields set in the update into the record.
	Update(ctx context.Context, id uint64, update RecordUpdate) (Record, error)

	// Delete removes a record and reports if it existed.
	Delete(ctx context.Context, id uint64) (bool, error)

	// Import stores records with their dates. Records whose content already
	// exists are skipped.
	Import(ctx context.Context, records []Record) (created int, skipped int, err error)

	// DeleteAll removes all records.
	DeleteAll(ctx context.Context) error
}

// GormGateway is a Gateway backed by a gorm database.
type GormGateway struct {
	DB *gorm.DB
}

var _ Gateway = GormGateway{}

func (g GormGateway) List(ctx context.Context) ([]Record, error) {
	records := []Record{}
	err := g.DB.WithContext(ctx).Order("id").Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (g GormGateway) Get(ctx context.Context, id uint64) (Record, error) {
	var record Record
	err := g.DB.WithContext(ctx).First(&record, id).Error
	if err != nil {
		return Record{}, err
	}

	return record, nil
}

func (g GormGateway) Create(ctx context.Context, fields RecordFields) (Record, error) {
	record := fields.Record()
	err := g.DB.WithContext(ctx).Create(&record).Error
	if err != nil {
		return Record{}, err
	}

	return record, nil
}

func (g GormGateway) Update(ctx context.Context, id uint64, update RecordUpdate) (Record, error) {
	var record Record

	err := g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&record, id).Error
		if err != nil {
			return err
		}

		columns := record.apply(update)
		if len(columns) == 0 {
			return nil
		}

		record.ImportHash = record.Hash()
		columns = append(columns, "import_hash")

		return tx.Model(&record).Select(columns).Updates(&record).Error
	})
	if err != nil {
		return Record{}, err
	}

	return record, nil
}

func (g GormGateway) Delete(ctx context.Context, id uint64) (bool, error) {
	result := g.DB.WithContext(ctx).Delete(&Record{}, id)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (g GormGateway) Import(ctx context.Context, records []Record) (int, int, error) {
	var created, skipped int

	err := g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			record.ID = 0
			record.Date = normalizeDate(record.Date)

			var count int64
			err := tx.Model(&Record{}).Where(&Record{ImportHash: record.Hash()}).Count(&count).Error
			if err != nil {
				return err
			}

			if count > 0 {
				skipped++
				continue
			}

			err = tx.Create(&record).Error
			if err != nil {
				return err
			}
			created++
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return created, skipped, nil
}

func (g GormGateway) DeleteAll(ctx context.Context) error {
	return g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Record{}).Error
	})
}

// IsNotFound reports if the error signals a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrResourceNotFound)
}
