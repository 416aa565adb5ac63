package api

import (
	"errors"
	"net/http"

	"github.com/MintVerse/MintVerse-Gateway/api/apistrings"
	models "github.com/MintVerse/MintVerse-Gateway/api/models"
	basemodels "github.com/MintVerse/MintVerse-Gateway/models"
	"github.com/MintVerse/MintVerse-Gateway/services/wallet"
	"github.com/MintVerse/MintVerse-Gateway/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Wallet struct {
	server        *Server
	walletService *wallet.WalletService
}

func (w Wallet) router(server *Server) {
	w.server = server
	w.walletService = wallet.NewWalletService(
		w.server.store,
		w.server.cache,
		w.server.logger,
		w.server.config.SupportContact,
	)

	serverGroupV1 := server.router.Group("/api/v1/wallet")
	serverGroupV1.GET("transactions", AuthenticatedMiddleware(), w.getTransactions)
	serverGroupV1.POST("withdraw", AuthenticatedMiddleware(), w.withdraw)
	serverGroupV1.POST("deposit", AuthenticatedMiddleware(), w.deposit)
	serverGroupV1.POST("deposit/confirm", AuthenticatedMiddleware(), w.confirmDeposit)
}

type amountRequest struct {
	Amount string `json:"amount" binding:"required"`
}

func bindAmount(ctx *gin.Context) (string, bool) {
	var request amountRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		response := basemodels.NewError(apistrings.InvalidAmountInput)
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			for _, vErr := range vErrs {
				response.Errors = append(response.Errors, vErr.Field()+" failed on "+vErr.Tag())
			}
		}
		ctx.JSON(http.StatusBadRequest, response)
		return "", false
	}
	return request.Amount, true
}

func (w *Wallet) getTransactions(ctx *gin.Context) {
	// Fetch viewer details
	viewer, err := utils.GetActiveViewer(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	transactions, err := w.walletService.ListTransactions(ctx, viewer.UserID)
	if err != nil {
		w.server.logger.Error("Store Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("User Wallet Transactions Fetched Successfully", models.ToTransactionCollectionResponse(transactions)))
}

func (w *Wallet) withdraw(ctx *gin.Context) {
	amount, ok := bindAmount(ctx)
	if !ok {
		return
	}

	viewer, err := utils.GetActiveViewer(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	transaction, err := w.walletService.RequestWithdraw(ctx, viewer.UserID, amount)
	switch {
	case errors.Is(err, wallet.ErrInvalidAmount):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAmount))
		return
	case errors.Is(err, wallet.ErrInsufficientFunds):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InsufficientFunds))
		return
	case errors.Is(err, wallet.ErrProfileNotFound):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.ProfileNotFound))
		return
	case err != nil:
		w.server.logger.Error("Store Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Withdrawal Requested", models.ToTransactionResponse(transaction)))
}

func (w *Wallet) deposit(ctx *gin.Context) {
	amount, ok := bindAmount(ctx)
	if !ok {
		return
	}

	viewer, err := utils.GetActiveViewer(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	intent, err := w.walletService.RequestDeposit(ctx, viewer.UserID, amount)
	switch {
	case errors.Is(err, wallet.ErrInvalidAmount):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidAmount))
		return
	case errors.Is(err, wallet.ErrMissingWalletAddress):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.MissingWalletAddress))
		return
	case errors.Is(err, wallet.ErrProfileNotFound):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.ProfileNotFound))
		return
	case err != nil:
		w.server.logger.Error("Store Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Deposit Confirmation Required", models.ToDepositIntentResponse(intent)))
}

func (w *Wallet) confirmDeposit(ctx *gin.Context) {
	amount, ok := bindAmount(ctx)
	if !ok {
		return
	}

	viewer, err := utils.GetActiveViewer(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	outcome := w.walletService.ConfirmDeposit(ctx, viewer.UserID, amount)
	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Deposit Processed", models.ToDepositOutcomeResponse(outcome)))
}
