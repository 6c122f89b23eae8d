package utils

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"fibernet/internal/shared/errors"
)

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type APIError struct {
	Type    string      `json:"type"`
	Message string      `json:"message"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

type Meta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

func PaginatedResponse(c *gin.Context, data interface{}, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
		Meta:    &Meta{Total: total, Page: page, PageSize: pageSize},
	})
}

func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func ErrorResponse(c *gin.Context, status int, errorType, message string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Type: errorType, Message: message},
	})
}

// ErrorResponseWithError maps an application error to its HTTP status.
// Binding failures from gin surface as validation errors.
func ErrorResponseWithError(c *gin.Context, err error) {
	var bindErr validator.ValidationErrors
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &bindErr) || stderrors.As(err, &syntaxErr) || stderrors.As(err, &typeErr) ||
		stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Error:   &APIError{Type: string(errors.ErrorTypeValidation), Message: err.Error()},
		})
		return
	}

	appErr, ok := errors.GetAppError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, APIResponse{
			Success: false,
			Error:   &APIError{Type: string(errors.ErrorTypeInternal), Message: "internal server error"},
		})
		return
	}

	c.JSON(statusForType(appErr.Type), APIResponse{
		Success: false,
		Error: &APIError{
			Type:    string(appErr.Type),
			Message: appErr.Message,
			Code:    appErr.Code,
			Details: appErr.Details,
		},
	})
}

func statusForType(t errors.ErrorType) int {
	switch t {
	case errors.ErrorTypeValidation, errors.ErrorTypeNotesRequired:
		return http.StatusBadRequest
	case errors.ErrorTypeNotFound:
		return http.StatusNotFound
	case errors.ErrorTypeConflict,
		errors.ErrorTypeDuplicateSerial,
		errors.ErrorTypePortConflict,
		errors.ErrorTypeAssetNotAvailable,
		errors.ErrorTypeInvalidTransition,
		errors.ErrorTypeTaskTerminal:
		return http.StatusConflict
	case errors.ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrorTypeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
