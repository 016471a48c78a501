package logs

import (
	"time"

	"github.com/lib/pq"
)

type SystemLog struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Level     string         `gorm:"size:20;not null" json:"level"`
	Service   string         `gorm:"size:100;not null" json:"service"`
	UserID    *uint          `gorm:"index" json:"user_id,omitempty"`
	Action    string         `gorm:"size:255;not null" json:"action"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	FormCode  *string        `gorm:"size:150;index" json:"form_code,omitempty"`
	CompanyID *string        `gorm:"size:100;index" json:"company_id,omitempty"`
	Codes     pq.StringArray `gorm:"type:text[];column:codes" json:"codes"`
	Metadata  *string        `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (SystemLog) TableName() string {
	return "logs"
}

type LogFilterInput struct {
	UserID    *uint    `json:"user_id"`
	Level     *string  `json:"level"`
	Service   *string  `json:"service"`
	Action    *string  `json:"action"`
	FormCode  *string  `json:"form_code"`
	CompanyID *string  `json:"company_id"`
	Codes     []string `json:"codes"`

	Search   *string `json:"search"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}
