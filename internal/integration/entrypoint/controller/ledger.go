// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moneytrail/backend/internal/application/usecase/ledger"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
	"github.com/moneytrail/backend/internal/integration/entrypoint/dto"
)

// LedgerController handles shared-expense ledger endpoints.
type LedgerController struct {
	balancesUseCase *ledger.GetBalancesUseCase
	settleUseCase   *ledger.SettleBalanceUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	balancesUseCase *ledger.GetBalancesUseCase,
	settleUseCase *ledger.SettleBalanceUseCase,
) *LedgerController {
	return &LedgerController{
		balancesUseCase: balancesUseCase,
		settleUseCase:   settleUseCase,
	}
}

// Balances handles GET /ledger/balances requests.
func (c *LedgerController) Balances(ctx *gin.Context) {
	output, err := c.balancesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalancesResponse(output))
}

// Settle handles POST /ledger/settle requests.
func (c *LedgerController) Settle(ctx *gin.Context) {
	var req dto.SettleBalanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := ledger.SettleBalanceInput{
		Person:           req.Person,
		CashAmount:       req.CashAmount,
		SpentForMeAmount: req.SpentForMeAmount,
		OtherAmount:      req.OtherAmount,
		Description:      req.Description,
	}

	output, err := c.settleUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSettleBalanceResponse(output))
}

// handleLedgerError handles ledger errors and returns appropriate HTTP responses.
func (c *LedgerController) handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		statusCode := c.getStatusCodeForLedgerError(ledgerErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForLedgerError maps ledger error codes to HTTP status codes.
func (c *LedgerController) getStatusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeSettleSelfPerson,
		domainerror.ErrCodeInvalidSettlementKind,
		domainerror.ErrCodeNegativeSettlementAmount,
		domainerror.ErrCodeEmptySettlementPerson:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
