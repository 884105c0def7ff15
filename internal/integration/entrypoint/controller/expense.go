package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/application/usecase/expense"
	"github.com/shopledger/backend/internal/domain/entity"
	domainerror "github.com/shopledger/backend/internal/domain/error"
	"github.com/shopledger/backend/internal/integration/entrypoint/dto"
	"github.com/shopledger/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense record endpoints.
type ExpenseController struct {
	createUseCase *expense.CreateExpenseUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
	clearUseCase  *expense.ClearExpensesUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	clearUseCase *expense.ClearExpensesUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
		clearUseCase:  clearUseCase,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{UserID: userID})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format",
				Code:  string(domainerror.ErrCodeInvalidExpenseDate),
			})
			return
		}
		date = parsed
	}

	input := expense.CreateExpenseInput{
		UserID:     userID,
		Name:       req.Name,
		Category:   entity.ExpenseCategory(req.Category),
		Amount:     decimal.NewFromFloat(req.Amount),
		Date:       date,
		Note:       req.Note,
		ReceiptURL: req.ReceiptURL,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format",
			Code:  string(domainerror.ErrCodeInvalidExpenseDate),
		})
		return
	}

	input := expense.UpdateExpenseInput{
		ExpenseID:  expenseID,
		UserID:     userID,
		Name:       req.Name,
		Category:   entity.ExpenseCategory(req.Category),
		Amount:     decimal.NewFromFloat(req.Amount),
		Date:       date,
		Note:       req.Note,
		ReceiptURL: req.ReceiptURL,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID",
			Code:  string(domainerror.ErrCodeExpenseNotFound),
		})
		return
	}

	input := expense.DeleteExpenseInput{
		ExpenseID: expenseID,
		UserID:    userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Expense deleted successfully",
	})
}

// Clear handles DELETE /expenses requests. It removes every expense
// owned by the authenticated user.
func (c *ExpenseController) Clear(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.clearUseCase.Execute(ctx.Request.Context(), expense.ClearExpensesInput{UserID: userID})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ClearExpensesResponse{
		DeletedCount: output.Deleted,
	})
}

// handleExpenseError handles expense errors and returns appropriate HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expenseErr *domainerror.ExpenseError
	if errors.As(err, &expenseErr) {
		statusCode := c.getStatusCodeForExpenseError(expenseErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedExpense:
		return http.StatusForbidden
	case domainerror.ErrCodeEmptyExpenseName,
		domainerror.ErrCodeEmptyExpenseCategory,
		domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeInvalidExpenseDate,
		domainerror.ErrCodeMissingExpenseFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
