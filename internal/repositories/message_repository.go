package repositories

import (
	"errors"
	"fmt"

	"smsledger/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrMessageNotFound is returned when a message lookup matches no rows
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository handles database operations for stored messages
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) MessageRepositoryInterface {
	return &MessageRepository{
		db: db,
	}
}

// Create stores a single message
func (r *MessageRepository) Create(message *models.Message) error {
	if message == nil {
		return errors.New("message cannot be nil")
	}

	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}

// BulkCreate stores a batch of messages, skipping rows whose ID already
// exists. Returns the number of rows actually inserted.
func (r *MessageRepository) BulkCreate(messages []models.Message) (int, error) {
	if len(messages) == 0 {
		return 0, nil
	}

	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&messages)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to bulk create messages: %w", result.Error)
	}

	return int(result.RowsAffected), nil
}

// GetByID retrieves a message by its ID
func (r *MessageRepository) GetByID(id string) (*models.Message, error) {
	var message models.Message
	if err := r.db.Where("id = ?", id).First(&message).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to get message by ID: %w", err)
	}

	return &message, nil
}

// GetAll retrieves every stored message, newest first
func (r *MessageRepository) GetAll() ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Order("date DESC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	return messages, nil
}

// GetByAddress retrieves messages from a specific sender, newest first
func (r *MessageRepository) GetByAddress(address string) ([]models.Message, error) {
	var messages []models.Message
	if err := r.db.Where("address = ?", address).
		Order("date DESC").
		Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to get messages by address: %w", err)
	}

	return messages, nil
}

// Count returns the number of stored messages
func (r *MessageRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Message{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}

	return count, nil
}

// DeleteAll removes every stored message and returns the number deleted
func (r *MessageRepository) DeleteAll() (int64, error) {
	result := r.db.Where("1 = 1").Delete(&models.Message{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete messages: %w", result.Error)
	}

	return result.RowsAffected, nil
}
