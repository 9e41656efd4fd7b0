package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srgjo27/hotel_reservation/internal/core/domain"
)

const (
	codeInvalidRequest  = "INVALID_REQUEST"
	codeUnauthenticated = "UNAUTHENTICATED"
	codeInternal        = "INTERNAL"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func statusOf(kind domain.Kind) int {
	switch kind {
	case domain.KindInvalidDateRange, domain.KindInvalidPartySize:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindInsufficientAvailability:
		return http.StatusConflict
	case domain.KindUnauthorized:
		return http.StatusForbidden
	case domain.KindCancellationWindowClosed:
		return http.StatusUnprocessableEntity
	case domain.KindStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a domain error with its mapped status. Storage and unknown
// failures keep their detail out of the body and in the access log instead.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	kind := domain.KindOf(err)
	status := statusOf(kind)

	switch {
	case kind == "":
		c.JSON(status, errorResponse{Error: "internal server error", Code: codeInternal})
	case kind == domain.KindStorageUnavailable:
		c.JSON(status, errorResponse{Error: "storage unavailable, retry later", Code: string(kind)})
	default:
		c.JSON(status, errorResponse{Error: err.Error(), Code: string(kind)})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: msg, Code: codeInvalidRequest})
}
