package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopledger/backend/internal/application/usecase/report"
	domainerror "github.com/shopledger/backend/internal/domain/error"
	"github.com/shopledger/backend/internal/integration/entrypoint/dto"
	"github.com/shopledger/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles report delivery endpoints.
type ReportController struct {
	sendWeeklyUseCase *report.SendWeeklyReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(sendWeeklyUseCase *report.SendWeeklyReportUseCase) *ReportController {
	return &ReportController{
		sendWeeklyUseCase: sendWeeklyUseCase,
	}
}

// SendWeekly handles POST /reports/weekly requests. It composes the
// owner's weekly digest and emails it to their account address.
func (c *ReportController) SendWeekly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.sendWeeklyUseCase.Execute(ctx.Request.Context(), report.SendWeeklyReportInput{UserID: userID})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.WeeklyReportResponse{
		Message:    "Weekly report sent",
		ProviderID: output.ProviderID,
	})
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var emailErr *domainerror.EmailError
	if errors.As(err, &emailErr) {
		statusCode := http.StatusBadGateway
		if emailErr.Code == domainerror.ErrCodePermanentEmailFailure {
			statusCode = http.StatusInternalServerError
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: emailErr.Message,
			Code:  string(emailErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
