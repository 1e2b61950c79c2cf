package responses

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// ListResponse wraps a list of items
type ListResponse struct {
	Object string      `json:"object"`
	Data   interface{} `json:"data"`
}

// PaginatedResponse represents an offset-paginated list response
type PaginatedResponse struct {
	Object  string      `json:"object"`
	Data    interface{} `json:"data"`
	HasMore bool        `json:"has_more"`
	Limit   int32       `json:"limit"`
	Offset  int32       `json:"offset"`
}
