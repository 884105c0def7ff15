package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/application/usecase/sale"
	domainerror "github.com/shopledger/backend/internal/domain/error"
	"github.com/shopledger/backend/internal/integration/entrypoint/dto"
	"github.com/shopledger/backend/internal/integration/entrypoint/middleware"
)

// SaleController handles sale record endpoints.
type SaleController struct {
	createUseCase *sale.CreateSaleUseCase
	updateUseCase *sale.UpdateSaleUseCase
	deleteUseCase *sale.DeleteSaleUseCase
	listUseCase   *sale.ListSalesUseCase
	clearUseCase  *sale.ClearSalesUseCase
}

// NewSaleController creates a new sale controller instance.
func NewSaleController(
	createUseCase *sale.CreateSaleUseCase,
	updateUseCase *sale.UpdateSaleUseCase,
	deleteUseCase *sale.DeleteSaleUseCase,
	listUseCase *sale.ListSalesUseCase,
	clearUseCase *sale.ClearSalesUseCase,
) *SaleController {
	return &SaleController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
		clearUseCase:  clearUseCase,
	}
}

// List handles GET /sales requests.
func (c *SaleController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), sale.ListSalesInput{UserID: userID})
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(output))
}

// Create handles POST /sales requests.
func (c *SaleController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingSaleFields),
		})
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format",
				Code:  string(domainerror.ErrCodeInvalidSaleDate),
			})
			return
		}
		date = parsed
	}

	productID, err := parseOptionalUUID(req.ProductID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID",
			Code:  string(domainerror.ErrCodeMissingSaleFields),
		})
		return
	}
	customerID, err := parseOptionalUUID(req.CustomerID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid customer ID",
			Code:  string(domainerror.ErrCodeMissingSaleFields),
		})
		return
	}

	input := sale.CreateSaleInput{
		UserID:        userID,
		ItemName:      req.ItemName,
		Quantity:      req.Quantity,
		Price:         decimal.NewFromFloat(req.Price),
		PaymentMethod: req.PaymentMethod,
		Date:          date,
		PhotoURL:      req.PhotoURL,
		Notes:         req.Notes,
		Discount:      decimal.NewFromFloat(req.Discount),
		ProductID:     productID,
		CustomerID:    customerID,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(output.Sale))
}

// Update handles PUT /sales/:id requests.
func (c *SaleController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	saleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sale ID",
			Code:  string(domainerror.ErrCodeSaleNotFound),
		})
		return
	}

	var req dto.UpdateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingSaleFields),
		})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format",
			Code:  string(domainerror.ErrCodeInvalidSaleDate),
		})
		return
	}

	productID, err := parseOptionalUUID(req.ProductID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID",
			Code:  string(domainerror.ErrCodeMissingSaleFields),
		})
		return
	}
	customerID, err := parseOptionalUUID(req.CustomerID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid customer ID",
			Code:  string(domainerror.ErrCodeMissingSaleFields),
		})
		return
	}

	input := sale.UpdateSaleInput{
		SaleID:        saleID,
		UserID:        userID,
		ItemName:      req.ItemName,
		Quantity:      req.Quantity,
		Price:         decimal.NewFromFloat(req.Price),
		PaymentMethod: req.PaymentMethod,
		Date:          date,
		PhotoURL:      req.PhotoURL,
		Notes:         req.Notes,
		Discount:      decimal.NewFromFloat(req.Discount),
		ProductID:     productID,
		CustomerID:    customerID,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(output.Sale))
}

// Delete handles DELETE /sales/:id requests.
func (c *SaleController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	saleID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sale ID",
			Code:  string(domainerror.ErrCodeSaleNotFound),
		})
		return
	}

	input := sale.DeleteSaleInput{
		SaleID: saleID,
		UserID: userID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Sale deleted successfully",
	})
}

// Clear handles DELETE /sales requests. It removes every sale owned by
// the authenticated user.
func (c *SaleController) Clear(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.clearUseCase.Execute(ctx.Request.Context(), sale.ClearSalesInput{UserID: userID})
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ClearSalesResponse{
		DeletedCount: output.Deleted,
	})
}

// handleSaleError handles sale errors and returns appropriate HTTP responses.
func (c *SaleController) handleSaleError(ctx *gin.Context, err error) {
	var saleErr *domainerror.SaleError
	if errors.As(err, &saleErr) {
		statusCode := c.getStatusCodeForSaleError(saleErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: saleErr.Message,
			Code:  string(saleErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSaleError maps sale error codes to HTTP status codes.
func (c *SaleController) getStatusCodeForSaleError(code domainerror.SaleErrorCode) int {
	switch code {
	case domainerror.ErrCodeSaleNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedSale:
		return http.StatusForbidden
	case domainerror.ErrCodeEmptyItemName,
		domainerror.ErrCodeInvalidQuantity,
		domainerror.ErrCodeNegativePrice,
		domainerror.ErrCodeInvalidSaleDate,
		domainerror.ErrCodeMissingSaleFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
