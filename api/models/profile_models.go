package models

import (
	"github.com/MintVerse/MintVerse-Gateway/services/profile"
)

type ProfileResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Login         string `json:"login"`
	Country       string `json:"country"`
	Balance       string `json:"balance"`
	WalletAddress string `json:"wallet_address,omitempty"`
	TokenStandard string `json:"token_standard,omitempty"`
	HideNickname  bool   `json:"hide_nickname"`
}

func ToProfileResponse(p *profile.UserProfile) *ProfileResponse {
	resp := &ProfileResponse{
		ID:            p.ID.String(),
		Email:         p.Email,
		Login:         p.Login,
		Country:       p.Country,
		Balance:       p.Balance,
		WalletAddress: p.WalletAddress,
		HideNickname:  p.HideNickname,
	}
	// The label only applies once an address exists.
	if p.WalletAddress != "" {
		resp.TokenStandard = "ERC-20"
	}
	return resp
}

type WalletAddressResponse struct {
	WalletAddress string `json:"wallet_address"`
	TokenStandard string `json:"token_standard"`
}
