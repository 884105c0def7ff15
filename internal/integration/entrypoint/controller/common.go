package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/shopledger/backend/internal/domain/error"
	"github.com/shopledger/backend/internal/integration/entrypoint/dto"
)

// parseDate parses a date string in RFC3339 format, falling back to a
// plain calendar date. Plain dates are interpreted as midnight UTC.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// parseOptionalUUID parses an optional UUID string reference.
func parseOptionalUUID(value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// respondUnauthorized writes the standard unauthenticated response.
func respondUnauthorized(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
