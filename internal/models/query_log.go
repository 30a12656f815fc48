package models

import (
	"time"

	"github.com/google/uuid"
)

// QueryLog records one assistant interaction for later analysis.
// This is a separate table from the scheme store, which stays read-only.
type QueryLog struct {
	ID             uuid.UUID `db:"id"`
	SessionID      string    `db:"session_id"`
	Lang           string    `db:"lang"`
	Transcript     string    `db:"transcript"`
	Category       Category  `db:"category"`
	SchemeID       string    `db:"scheme_id"`
	ResponseSource string    `db:"response_source"` // model / template
	CreatedAt      time.Time `db:"created_at"`
}
