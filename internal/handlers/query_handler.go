package handlers

import (
	"net/http"

	"smsledger/internal/dto"
	"smsledger/internal/errors"
	"smsledger/internal/repositories"
	"smsledger/internal/services"

	"github.com/labstack/echo/v4"
)

// QueryHandler handles natural-language query endpoints
type QueryHandler struct {
	messageRepo  repositories.MessageRepositoryInterface
	analyzer     services.AnalyzerServiceInterface
	queryService services.QueryServiceInterface
}

// NewQueryHandler creates a new query handler
func NewQueryHandler(
	messageRepo repositories.MessageRepositoryInterface,
	analyzer services.AnalyzerServiceInterface,
	queryService services.QueryServiceInterface,
) *QueryHandler {
	return &QueryHandler{
		messageRepo:  messageRepo,
		analyzer:     analyzer,
		queryService: queryService,
	}
}

// Query answers a natural-language question about the stored corpus
func (h *QueryHandler) Query(c echo.Context) error {
	var req dto.QueryRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	messages, err := h.messageRepo.GetAll()
	if err != nil {
		return SendSystemError(c, err)
	}
	if len(messages) == 0 {
		return SendError(c, errors.MessageStoreEmpty)
	}

	analysis := h.analyzer.Analyze(c.Request().Context(), messages)
	result := h.queryService.Answer(c.Request().Context(), req.Query, analysis)

	return c.JSON(http.StatusOK, dto.QueryResponse{
		Handler: result.Handler,
		Answer:  result.Answer,
	})
}
