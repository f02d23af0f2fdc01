package client

import (
	"context"

	"github.com/kakeibo-app/backend/internal/models"
)

// Draft is the content of the entry form.
type Draft struct {
	Amount      int64
	Description string
	Category    string
	Type        models.RecordType
}

func emptyDraft() Draft {
	return Draft{Type: models.TypeExpense}
}

// Form is the entry form for new records.
type Form struct {
	session *Session
	draft   Draft
}

func NewForm(s *Session) *Form {
	return &Form{session: s, draft: emptyDraft()}
}

func (f *Form) Draft() Draft {
	return f.draft
}

func (f *Form) SetAmount(amount int64) {
	f.draft.Amount = amount
}

func (f *Form) SetDescription(description string) {
	f.draft.Description = description
}

func (f *Form) SetCategory(category string) {
	f.draft.Category = category
}

// SetType changes the type. A category that has been chosen is kept,
// even if it is not offered for the new type.
func (f *Form) SetType(t models.RecordType) {
	f.draft.Type = t
}

// Categories returns the categories offered for the type of the draft.
func (f *Form) Categories() []models.Category {
	return models.CategoriesFor(f.draft.Type)
}

// Reset empties the form.
func (f *Form) Reset() {
	f.draft = emptyDraft()
}

// Submit validates the draft and creates the record. On success, the form
// is reset. On failure, the draft is kept so that it can be corrected.
func (f *Form) Submit(ctx context.Context) (models.Record, error) {
	payload := models.RecordCreate{
		Amount:      &f.draft.Amount,
		Description: &f.draft.Description,
		Category:    &f.draft.Category,
		Type:        &f.draft.Type,
	}

	_, err := models.ValidateCreate(payload)
	if err != nil {
		return models.Record{}, err
	}

	record, err := f.session.Create(ctx, payload)
	if err != nil {
		return models.Record{}, err
	}

	f.Reset()
	return record, nil
}
