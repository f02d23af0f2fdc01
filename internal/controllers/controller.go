package controllers

import (
	"time"

	"github.com/kakeibo-app/backend/internal/models"
)

// Controller serves the record API from a Gateway.
type Controller struct {
	Gateway models.Gateway

	// Version is reported in exports
	Version string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

func (co Controller) now() time.Time {
	if co.Now == nil {
		return time.Now()
	}
	return co.Now()
}
