package dto

// Query Request DTOs

// QueryRequest contains a natural-language question about the corpus
type QueryRequest struct {
	Query string `json:"query" validate:"required,min=1,max=280"`
}

// Query Response DTOs

// QueryResponse carries the dispatcher's formatted answer
type QueryResponse struct {
	Handler string `json:"handler"`
	Answer  string `json:"answer"`
}
