package lookup

import (
	"time"
)

// CorElement is one element of the certificate-of-recognition audit standard.
// Form templates reference elements by number.
type CorElement struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Number      int       `gorm:"uniqueIndex;not null;column:number" json:"number"`
	Name        string    `gorm:"size:255;not null;column:name" json:"name"`
	Description string    `gorm:"type:text;not null;default:'';column:description" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (CorElement) TableName() string {
	return "cor_elements"
}

// FieldTypeInfo describes one field type the wizard clients can render.
// Served from code, not stored.
type FieldTypeInfo struct {
	Type            string `json:"type"`
	Label           string `json:"label"`
	RequiresOptions bool   `json:"requires_options"`
}

type FrequencyInfo struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}
