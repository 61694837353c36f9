package repositories

import (
	"smsledger/internal/models"
)

// MessageRepositoryInterface defines the contract for message repository operations
type MessageRepositoryInterface interface {
	Create(message *models.Message) error
	BulkCreate(messages []models.Message) (int, error)
	GetByID(id string) (*models.Message, error)
	GetAll() ([]models.Message, error)
	GetByAddress(address string) ([]models.Message, error)
	Count() (int64, error)
	DeleteAll() (int64, error)
}
