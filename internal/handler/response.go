package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dermaconnect/derma-api/pkg/apperror"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// Error writes an application error with its mapped status code.
// Internal errors are masked.
func Error(c *gin.Context, err error) {
	status := apperror.StatusOf(err)
	message := err.Error()
	if status >= 500 {
		message = "internal server error"
	}
	c.JSON(status, NewErrorResponse(message))
}
