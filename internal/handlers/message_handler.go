package handlers

import (
	"net/http"

	"smsledger/internal/dto"
	"smsledger/internal/errors"
	"smsledger/internal/models"
	"smsledger/internal/repositories"
	"smsledger/internal/services"

	"github.com/labstack/echo/v4"
)

// MessageHandler handles message ingestion and listing endpoints
type MessageHandler struct {
	messageRepo repositories.MessageRepositoryInterface
	analyzer    services.AnalyzerServiceInterface
	metrics     services.MetricsRecorderInterface
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(
	messageRepo repositories.MessageRepositoryInterface,
	analyzer services.AnalyzerServiceInterface,
	metrics services.MetricsRecorderInterface,
) *MessageHandler {
	if metrics == nil {
		metrics = services.NewNoopMetrics()
	}
	return &MessageHandler{
		messageRepo: messageRepo,
		analyzer:    analyzer,
		metrics:     metrics,
	}
}

// IngestMessages stores a batch of SMS/MMS records
func (h *MessageHandler) IngestMessages(c echo.Context) error {
	var req dto.IngestMessagesRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	messages := make([]models.Message, 0, len(req.Messages))
	for _, payload := range req.Messages {
		messages = append(messages, payloadToMessage(payload))
	}

	stored, err := h.messageRepo.BulkCreate(messages)
	if err != nil {
		return SendSystemError(c, err)
	}

	// New messages change the corpus; drop any memoized analysis
	h.analyzer.Invalidate()

	if total, err := h.messageRepo.Count(); err == nil {
		h.metrics.RecordGauge("messages.stored", float64(total), nil)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.IngestMessagesResponse{
			Stored: stored,
			Total:  len(req.Messages),
		},
		Message: "Messages ingested successfully",
	})
}

// ListMessages returns all stored messages, newest first
func (h *MessageHandler) ListMessages(c echo.Context) error {
	messages, err := h.messageRepo.GetAll()
	if err != nil {
		return SendSystemError(c, err)
	}

	views := make([]dto.MessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, dto.MessageView{
			ID:        m.ID,
			Address:   m.Address,
			Body:      m.Body,
			Date:      m.Date,
			Direction: m.Direction,
		})
	}

	return c.JSON(http.StatusOK, dto.ListMessagesResponse{
		Messages: views,
		Count:    len(views),
	})
}

// DeleteMessages removes every stored message
func (h *MessageHandler) DeleteMessages(c echo.Context) error {
	deleted, err := h.messageRepo.DeleteAll()
	if err != nil {
		return SendSystemError(c, err)
	}

	h.analyzer.Invalidate()
	h.metrics.RecordGauge("messages.stored", 0, nil)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    map[string]int64{"deleted": deleted},
		Message: "Messages deleted successfully",
	})
}

func payloadToMessage(payload dto.MessagePayload) models.Message {
	direction := payload.Direction
	if direction == "" {
		direction = models.DirectionInbound
	}
	return models.Message{
		ID:        payload.ID,
		Address:   payload.Address,
		Body:      payload.Body,
		Date:      payload.Date,
		Direction: direction,
	}
}
