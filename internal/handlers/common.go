package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/protectedpay/protectedpay-api/internal/client/protectedpay"
	"github.com/protectedpay/protectedpay-api/internal/middleware"
	"github.com/protectedpay/protectedpay-api/internal/types/api/responses"
	"go.uber.org/zap"
)

// MsgWalletNotConnected is returned for every operation that needs a signer
// while none is connected
const MsgWalletNotConnected = "Please connect your wallet first"

// sendError logs err with the request's correlation id and sends message as
// the JSON error body
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	log := middleware.LogWithCorrelationID(c.Request.Context())
	fields := []zap.Field{
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", statusCode),
	}
	if statusCode >= http.StatusInternalServerError {
		log.Error(message, fields...)
	} else {
		log.Warn(message, fields...)
	}

	c.JSON(statusCode, responses.ErrorResponse{
		Error:         message,
		CorrelationID: correlationID,
	})
}

// handleServiceError maps a classified service error to a status code and a
// user-facing message. action completes "Failed to ..." for chain failures.
func handleServiceError(c *gin.Context, err error, action string) {
	switch protectedpay.KindOf(err) {
	case protectedpay.KindWalletNotConnected:
		sendError(c, http.StatusConflict, MsgWalletNotConnected, err)
	case protectedpay.KindInvalidInput:
		sendError(c, http.StatusBadRequest, validationMessage(err), err)
	case protectedpay.KindAlreadyRegistered:
		sendError(c, http.StatusConflict, "Username already registered for this address", err)
	case protectedpay.KindNotFound:
		sendError(c, http.StatusNotFound, "Not found", err)
	case protectedpay.KindRejected:
		sendError(c, http.StatusForbidden, "Transaction was rejected by the signer", err)
	case protectedpay.KindTimeout:
		sendError(c, http.StatusGatewayTimeout, fmt.Sprintf("Timed out trying to %s. Please try again.", action), err)
	default:
		sendError(c, http.StatusBadGateway, fmt.Sprintf("Failed to %s. Please try again.", action), err)
	}
}

// validationMessage strips the operation prefix from an invalid input error
func validationMessage(err error) string {
	var e *protectedpay.Error
	if errors.As(err, &e) && e.Err != nil {
		return capitalize(e.Err.Error())
	}
	return capitalize(err.Error())
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// bindJSON binds the request body and answers 400 when it is malformed
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}

func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func sendSuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, responses.SuccessResponse{Message: message})
}

func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, responses.ListResponse{
		Object: "list",
		Data:   items,
	})
}
