package api

import (
	"errors"
	"net/http"

	"github.com/MintVerse/MintVerse-Gateway/api/apistrings"
	models "github.com/MintVerse/MintVerse-Gateway/api/models"
	basemodels "github.com/MintVerse/MintVerse-Gateway/models"
	"github.com/MintVerse/MintVerse-Gateway/services/profile"
	"github.com/MintVerse/MintVerse-Gateway/utils"
	"github.com/gin-gonic/gin"
)

type Profile struct {
	server         *Server
	profileService *profile.ProfileService
}

func (p Profile) router(server *Server) {
	p.server = server
	p.profileService = profile.NewProfileService(
		p.server.store,
		p.server.auth,
		p.server.cache,
		p.server.logger,
	)

	serverGroupV1 := server.router.Group("/api/v1/profile")
	serverGroupV1.GET("", AuthenticatedMiddleware(), p.getProfile)
	serverGroupV1.PUT("nickname", AuthenticatedMiddleware(), p.updateNickname)
	serverGroupV1.POST("wallet-address", AuthenticatedMiddleware(), p.saveWalletAddress)
	serverGroupV1.PUT("password", AuthenticatedMiddleware(), p.updatePassword)
	serverGroupV1.POST("logout", AuthenticatedMiddleware(), p.logout)
}

func (p *Profile) getProfile(ctx *gin.Context) {
	// Fetch viewer details
	viewer, err := utils.GetActiveViewer(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	token, err := utils.GetAccessToken(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	userProfile, err := p.profileService.GetProfile(ctx, viewer, token)
	if errors.Is(err, profile.ErrProfileNotFound) {
		ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.ProfileNotFound))
		return
	} else if err != nil {
		p.server.logger.Error("Store Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("User Profile Fetched Successfully", models.ToProfileResponse(userProfile)))
}

func (p *Profile) updateNickname(ctx *gin.Context) {
	request := struct {
		Hidden *bool `json:"hidden" binding:"required"`
	}{}

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidNicknameInput))
		return
	}

	viewer, err := utils.GetActiveViewer(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	if err := p.profileService.SetNicknameHidden(ctx, viewer.UserID, *request.Hidden); err != nil {
		p.server.logger.Error("Store Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Nickname Visibility Updated Successfully", gin.H{"hidden": *request.Hidden}))
}

func (p *Profile) saveWalletAddress(ctx *gin.Context) {
	request := struct {
		Address string `json:"address"`
	}{}

	// Body is optional; an empty address means "generate one for me"
	_ = ctx.ShouldBindJSON(&request)

	viewer, err := utils.GetActiveViewer(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	address := request.Address
	if address == "" {
		address, err = profile.GenerateWalletAddress()
		if err != nil {
			p.server.logger.Error("Address Generation Error", err)
			ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
			return
		}
	}

	err = p.profileService.SaveWalletAddress(ctx, viewer.UserID, address)
	if errors.Is(err, profile.ErrInvalidWalletAddress) {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidWalletAddress))
		return
	} else if err != nil {
		p.server.logger.Error("Store Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Wallet Address Saved Successfully", models.WalletAddressResponse{
		WalletAddress: address,
		TokenStandard: "ERC-20",
	}))
}

func (p *Profile) updatePassword(ctx *gin.Context) {
	request := struct {
		NewPassword     string `json:"new_password" binding:"required"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
	}{}

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidPasswordInput))
		return
	}

	token, err := utils.GetAccessToken(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	err = p.profileService.ChangePassword(ctx, token, request.NewPassword, request.ConfirmPassword)
	if errors.Is(err, profile.ErrPasswordMismatch) {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.PasswordMismatch))
		return
	} else if err != nil {
		p.server.logger.Error("Auth Provider Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.PasswordUpdateFailed))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Password Has Been Updated", nil))
}

func (p *Profile) logout(ctx *gin.Context) {
	token, err := utils.GetAccessToken(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	if err := p.profileService.SignOut(ctx, token); err != nil {
		p.server.logger.Error("Auth Provider Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.LogoutFailed))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Logged Out Successfully", nil))
}
