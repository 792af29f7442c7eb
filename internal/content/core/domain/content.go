package domain

import (
	"errors"
	"time"
)

// ErrContentNotFound signals that no row exists for the requested key.
var ErrContentNotFound = errors.New("site content not found")

// SiteContent is one editable fragment of the marketing site (hero copy,
// office hours, contact blocks). Written by the admin dashboard; this
// service only reads.
type SiteContent struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
