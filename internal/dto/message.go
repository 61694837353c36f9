package dto

// Message Request DTOs

// MessagePayload is a single SMS/MMS record as submitted by a client
type MessagePayload struct {
	ID        string `json:"id" validate:"omitempty,max=64"`
	Address   string `json:"address" validate:"required,min=1,max=64"`
	Body      string `json:"body" validate:"required,min=1"`
	Date      int64  `json:"date" validate:"required,epoch_millis"`
	Direction string `json:"direction" validate:"omitempty,message_direction"`
}

// IngestMessagesRequest contains a batch of messages to store
type IngestMessagesRequest struct {
	Messages []MessagePayload `json:"messages" validate:"required,min=1,max=5000,dive"`
}

// Message Response DTOs

// MessageView is a stored message as returned by the API
type MessageView struct {
	ID        string `json:"id"`
	Address   string `json:"address"`
	Body      string `json:"body"`
	Date      int64  `json:"date"`
	Direction string `json:"direction"`
}

// IngestMessagesResponse reports how many messages were stored
type IngestMessagesResponse struct {
	Stored int `json:"stored"`
	Total  int `json:"total"`
}

// ListMessagesResponse contains all stored messages, newest first
type ListMessagesResponse struct {
	Messages []MessageView `json:"messages"`
	Count    int           `json:"count"`
}
