package models

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel holds the fields shared by all persisted records.
// Records in this system are created and listed, never updated,
// so only the creation timestamp is tracked.
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;index"`
}
