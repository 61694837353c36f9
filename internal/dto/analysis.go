package dto

// Analysis Request DTOs

// AnalyzeRequest optionally carries inline messages to analyze.
// When Messages is empty the stored message corpus is used.
type AnalyzeRequest struct {
	Messages []MessagePayload `json:"messages" validate:"omitempty,max=5000,dive"`
}

// Analysis Response DTOs

// TransactionView is an extracted transaction as returned by the API
type TransactionView struct {
	Amount        string `json:"amount"`
	Currency      string `json:"currency" validate:"omitempty,currency_code"`
	Merchant      string `json:"merchant,omitempty"`
	Category      string `json:"category" validate:"omitempty,spend_category"`
	Date          int64  `json:"date"`
	SourceMessage string `json:"sourceMessage"`
}

// AnalyzeResponse summarizes a full extraction pass over the corpus
type AnalyzeResponse struct {
	Transactions []TransactionView `json:"transactions"`
	OTPCount     int               `json:"otpCount"`
	MessageCount int               `json:"messageCount"`
}
