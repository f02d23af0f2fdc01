package httputil

import (
	"errors"

	"github.com/kakeibo-app/backend/internal/i18n"
)

var (
	ErrInvalidBody      = errors.New(i18n.MsgInvalidBody)
	ErrRequestBodyEmpty = errors.New(i18n.MsgRequestBodyEmpty)
	ErrInvalidID        = errors.New(i18n.MsgInvalidID)
)
