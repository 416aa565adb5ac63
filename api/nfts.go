package api

import (
	"errors"
	"net/http"

	"github.com/MintVerse/MintVerse-Gateway/api/apistrings"
	models "github.com/MintVerse/MintVerse-Gateway/api/models"
	basemodels "github.com/MintVerse/MintVerse-Gateway/models"
	"github.com/MintVerse/MintVerse-Gateway/services/nft"
	"github.com/MintVerse/MintVerse-Gateway/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NFT struct {
	server     *Server
	nftService *nft.NFTService
}

func (n NFT) router(server *Server) {
	n.server = server
	n.nftService = nft.NewNFTService(
		n.server.store,
		n.server.cache,
		n.server.logger,
	)

	serverGroupV1 := server.router.Group("/api/v1/nfts")
	serverGroupV1.GET("", n.listItems)
	serverGroupV1.GET("/:id", OptionalAuthMiddleware(), n.getItem)
	serverGroupV1.POST("/:id/purchase", AuthenticatedMiddleware(), n.purchase)
	serverGroupV1.POST("/:id/purchase/complete", AuthenticatedMiddleware(), n.completePurchase)
}

func itemID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidItemID))
		return uuid.Nil, false
	}
	return id, true
}

func (n *NFT) listItems(ctx *gin.Context) {
	items, err := n.nftService.ListItems(ctx)
	if err != nil {
		n.server.logger.Error("Store Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Marketplace Listing Fetched Successfully", models.ToNFTCollectionResponse(items)))
}

func (n *NFT) getItem(ctx *gin.Context) {
	id, ok := itemID(ctx)
	if !ok {
		return
	}

	item, err := n.nftService.GetItem(ctx, id)
	if errors.Is(err, nft.ErrItemNotFound) {
		// Absence is a terminal state, not a failure
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.ItemNotFound))
		return
	} else if err != nil {
		n.server.logger.Error("Store Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	viewerID := uuid.Nil
	viewerBalance := ""
	if viewer, err := utils.GetActiveViewer(ctx); err == nil {
		viewerID = viewer.UserID
		balance, err := n.nftService.ViewerBalance(ctx, viewer.UserID)
		if err != nil {
			// The item still renders without the balance
			n.server.logger.Error("Store Error", err)
		} else {
			viewerBalance = balance
		}
	}

	purchasability := nft.PurchasabilityOf(item, viewerID)
	ctx.JSON(http.StatusOK, basemodels.NewSuccess("NFT Fetched Successfully", models.ToNFTDetailResponse(item, purchasability, viewerBalance)))
}

func (n *NFT) purchase(ctx *gin.Context) {
	id, ok := itemID(ctx)
	if !ok {
		return
	}

	viewer, err := utils.GetActiveViewer(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	item, err := n.nftService.InitiatePurchase(ctx, viewer.UserID, id)
	switch {
	case errors.Is(err, nft.ErrItemNotFound):
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.ItemNotFound))
		return
	case errors.Is(err, nft.ErrItemNotAvailable):
		ctx.JSON(http.StatusConflict, basemodels.NewError(apistrings.ItemNotAvailable))
		return
	case errors.Is(err, nft.ErrInsufficientFunds):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InsufficientFunds))
		return
	case errors.Is(err, nft.ErrProfileNotFound):
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.ProfileNotFound))
		return
	case err != nil:
		n.server.logger.Error("Store Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Purchase Initiated", models.ToNFTResponse(item)))
}

func (n *NFT) completePurchase(ctx *gin.Context) {
	id, ok := itemID(ctx)
	if !ok {
		return
	}

	viewer, err := utils.GetActiveViewer(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	redirect := n.nftService.CompletePurchase(ctx, viewer.UserID, id)
	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Purchase Completed Successfully", models.ToPurchaseCompleteResponse(redirect)))
}
