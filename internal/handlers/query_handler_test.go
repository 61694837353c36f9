package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smsledger/internal/dto"
	"smsledger/internal/models"
	"smsledger/internal/services"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestQueryHandler(t *testing.T) {
	suite.Run(t, new(QueryHandlerSuite))
}

type QueryHandlerSuite struct {
	suite.Suite
	repo     *fakeMessageRepo
	analyzer *fakeAnalyzer
	queries  *fakeQueryService
	handler  *QueryHandler
	e        *echo.Echo
}

func (s *QueryHandlerSuite) SetupTest() {
	s.repo = &fakeMessageRepo{}
	s.analyzer = &fakeAnalyzer{}
	s.queries = &fakeQueryService{}
	s.handler = NewQueryHandler(s.repo, s.analyzer, s.queries)
	s.e = echo.New()
	s.e.Validator = NewValidator()
}

func (s *QueryHandlerSuite) request(body []byte) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/query", bytes.NewBuffer(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func (s *QueryHandlerSuite) TestQuery() {
	s.Run("answers against the stored corpus", func() {
		s.SetupTest()
		s.repo.messages = []models.Message{
			{ID: "m1", Address: "TX-TESTBANK", Body: "Rs. 499.00 spent at SWIGGY", Date: 1741791002000},
		}
		s.queries.result = services.QueryResult{
			Handler: "merchant_spend",
			Answer:  "This month you spent Rs.499.00 at SWIGGY across 1 transaction(s).",
		}

		body, _ := json.Marshal(dto.QueryRequest{Query: "how much did I spend on swiggy"})
		c, rec := s.request(body)

		err := s.handler.Query(c)
		s.NoError(err)
		s.Equal(http.StatusOK, rec.Code)

		var response dto.QueryResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("merchant_spend", response.Handler)
		s.Contains(response.Answer, "SWIGGY")

		s.Equal("how much did I spend on swiggy", s.queries.lastQuery)
		s.Equal(1, s.analyzer.analyzeCalls)
	})

	s.Run("empty store", func() {
		s.SetupTest()

		body, _ := json.Marshal(dto.QueryRequest{Query: "total spend this week"})
		c, rec := s.request(body)

		err := s.handler.Query(c)
		s.NoError(err)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)

		var errorResp ErrorResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
		s.Equal("MESSAGE_002", errorResp.Error.Code)
	})

	s.Run("empty query fails validation", func() {
		s.SetupTest()

		body, _ := json.Marshal(dto.QueryRequest{Query: ""})
		c, _ := s.request(body)

		err := s.handler.Query(c)
		s.Error(err)
	})

	s.Run("oversized query fails validation", func() {
		s.SetupTest()

		body, _ := json.Marshal(dto.QueryRequest{Query: strings.Repeat("x", 281)})
		c, _ := s.request(body)

		err := s.handler.Query(c)
		s.Error(err)
	})

	s.Run("invalid request body", func() {
		s.SetupTest()

		c, rec := s.request([]byte("not json"))

		err := s.handler.Query(c)
		s.NoError(err)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("repository failure returns system error", func() {
		s.SetupTest()
		s.repo.err = gofakeit.Error()

		body, _ := json.Marshal(dto.QueryRequest{Query: "total spend this week"})
		c, rec := s.request(body)

		err := s.handler.Query(c)
		s.NoError(err)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
