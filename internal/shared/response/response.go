package response

import (
	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "SUCCESS"
	StatusFailure = "FAILURE"
)

// PaginationMeta is inlined next to the item slice of every list payload.
type PaginationMeta struct {
	Total       int64 `json:"total"`
	Skip        int   `json:"skip"`
	Limit       int   `json:"limit"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
}

func NewPaginationMeta(total int64, skip, limit int) PaginationMeta {
	totalPages := 0
	currentPage := 1
	if limit > 0 {
		// pembulatan ke atas: (total + limit - 1) / limit
		totalPages = int((total + int64(limit) - 1) / int64(limit))
		currentPage = skip/limit + 1
	}

	return PaginationMeta{
		Total:       total,
		Skip:        skip,
		Limit:       limit,
		CurrentPage: currentPage,
		TotalPages:  totalPages,
	}
}

type Envelope struct {
	StatusCode int               `json:"statusCode"`
	Status     string            `json:"status"`
	Message    string            `json:"message"`
	Code       string            `json:"code,omitempty"`
	Data       any               `json:"data,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		StatusCode: status,
		Status:     StatusSuccess,
		Message:    message,
		Data:       data,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, fields map[string]string) {
	c.JSON(status, Envelope{
		StatusCode: status,
		Status:     StatusFailure,
		Message:    message,
		Code:       errorCode,
		Errors:     fields,
	})
}

// Abort writes the failure envelope and stops the handler chain.
func Abort(c *gin.Context, status int, errorCode string, message string) {
	Error(c, status, errorCode, message, nil)
	c.Abort()
}
