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

// AnalysisHandler handles extraction endpoints
type AnalysisHandler struct {
	messageRepo repositories.MessageRepositoryInterface
	analyzer    services.AnalyzerServiceInterface
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(
	messageRepo repositories.MessageRepositoryInterface,
	analyzer services.AnalyzerServiceInterface,
) *AnalysisHandler {
	return &AnalysisHandler{
		messageRepo: messageRepo,
		analyzer:    analyzer,
	}
}

// Analyze runs transaction extraction over the stored corpus, or over
// inline messages when the request carries them
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	var messages []models.Message
	if len(req.Messages) > 0 {
		messages = make([]models.Message, 0, len(req.Messages))
		for _, payload := range req.Messages {
			messages = append(messages, payloadToMessage(payload))
		}
	} else {
		stored, err := h.messageRepo.GetAll()
		if err != nil {
			return SendSystemError(c, err)
		}
		if len(stored) == 0 {
			return SendError(c, errors.MessageStoreEmpty)
		}
		messages = stored
	}

	analysis := h.analyzer.Analyze(c.Request().Context(), messages)

	views := make([]dto.TransactionView, 0, len(analysis.Transactions))
	for _, txn := range analysis.Transactions {
		views = append(views, dto.TransactionView{
			Amount:        txn.Amount.StringFixed(2),
			Currency:      txn.Currency,
			Merchant:      txn.Merchant,
			Category:      txn.Category,
			Date:          txn.Date,
			SourceMessage: txn.SourceMessage,
		})
	}

	return c.JSON(http.StatusOK, dto.AnalyzeResponse{
		Transactions: views,
		OTPCount:     len(analysis.OTPMessages),
		MessageCount: len(analysis.Messages),
	})
}
