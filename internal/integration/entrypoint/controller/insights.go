package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopledger/backend/internal/application/usecase/insights"
	domainerror "github.com/shopledger/backend/internal/domain/error"
	"github.com/shopledger/backend/internal/integration/entrypoint/dto"
	"github.com/shopledger/backend/internal/integration/entrypoint/middleware"
)

// InsightsController handles business insights endpoints.
type InsightsController struct {
	getInsightsUseCase *insights.GetInsightsUseCase
	getAdviceUseCase   *insights.GetAdviceUseCase
}

// NewInsightsController creates a new insights controller instance.
func NewInsightsController(
	getInsightsUseCase *insights.GetInsightsUseCase,
	getAdviceUseCase *insights.GetAdviceUseCase,
) *InsightsController {
	return &InsightsController{
		getInsightsUseCase: getInsightsUseCase,
		getAdviceUseCase:   getAdviceUseCase,
	}
}

// Get handles GET /insights requests. It returns the full statistics
// bundle for the authenticated owner's ledger.
func (c *InsightsController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.getInsightsUseCase.Execute(ctx.Request.Context(), insights.GetInsightsInput{UserID: userID})
	if err != nil {
		c.handleInsightsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightsResponse(output.Insights, output.Cached))
}

// GetAdvice handles GET /insights/advice requests.
func (c *InsightsController) GetAdvice(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.getAdviceUseCase.Execute(ctx.Request.Context(), insights.GetAdviceInput{UserID: userID})
	if err != nil {
		c.handleInsightsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdviceResponse{
		Advice: output.Advice,
	})
}

// handleInsightsError handles insights errors and returns appropriate HTTP responses.
func (c *InsightsController) handleInsightsError(ctx *gin.Context, err error) {
	var insightsErr *domainerror.InsightsError
	if errors.As(err, &insightsErr) {
		statusCode := c.getStatusCodeForInsightsError(insightsErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: insightsErr.Message,
			Code:  string(insightsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForInsightsError maps insights error codes to HTTP status codes.
func (c *InsightsController) getStatusCodeForInsightsError(code domainerror.InsightsErrorCode) int {
	switch code {
	case domainerror.ErrCodeAdvisorUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeAdvisorFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
