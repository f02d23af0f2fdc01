package controllers

import (
	"github.com/kakeibo-app/backend/internal/models"
	"github.com/kakeibo-app/backend/internal/stats"
)

// MessageResponse confirms an operation that has no other result.
type MessageResponse struct {
	Message string `json:"message" example:"支出を削除しました"`
}

// ExportFile is the content of an export.
type ExportFile struct {
	Version      string          `json:"version" example:"1.4.0"`                     // Version of the backend that created the export
	CreationTime string          `json:"creationTime" example:"2024-05-01T12:30:00Z"` // Time of the export
	Data         []models.Record `json:"data"`                                        // All records
}

// ImportResult counts the records of an import.
type ImportResult struct {
	Created int `json:"created" example:"12"` // Records that were stored
	Skipped int `json:"skipped" example:"3"`  // Records that already existed
}

type ImportResponse struct {
	Data ImportResult `json:"data"`
}

// FilteredTotal is the result of the record list filters.
type FilteredTotal struct {
	Count int   `json:"count" example:"4"`
	Total int64 `json:"total" example:"6800"`
}

// SummaryObject holds the statistics for the month of the request.
type SummaryObject struct {
	Balance  stats.Summary      `json:"balance"`
	Monthly  stats.MonthlyStats `json:"monthly"`
	Filtered *FilteredTotal     `json:"filtered,omitempty"` // Only set when a filter is given
}

type SummaryResponse struct {
	Data SummaryObject `json:"data"`
}
