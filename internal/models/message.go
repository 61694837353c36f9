package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/google/uuid"
)

const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// Message is a raw SMS/MMS record as handed over by the message-store
// collaborator. The engine never mutates a message.
type Message struct {
	ID        string `gorm:"type:varchar(64);primaryKey" json:"id"`
	Address   string `gorm:"type:varchar(255);index" json:"address"`
	Body      string `gorm:"type:text;not null" json:"body"`
	Date      int64  `gorm:"not null;index" json:"date"` // epoch milliseconds
	Direction string `gorm:"type:varchar(16);not null;default:'inbound'" json:"direction"`

	CreatedAt time.Time `json:"-"`
}

// BeforeCreate hook for Message
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Direction == "" {
		m.Direction = DirectionInbound
	}
	return nil
}

// TableName returns the table name for Message
func (m *Message) TableName() string {
	return "messages"
}

// Time converts the epoch-millisecond timestamp to a time.Time.
func (m *Message) Time() time.Time {
	return time.UnixMilli(m.Date)
}

// IsValidDirection checks if the message direction is valid
func IsValidDirection(direction string) bool {
	switch direction {
	case DirectionInbound, DirectionOutbound:
		return true
	default:
		return false
	}
}
