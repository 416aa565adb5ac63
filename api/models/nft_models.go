package models

import (
	"encoding/json"

	"github.com/MintVerse/MintVerse-Gateway/services/nft"
)

type NFTResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Creator       string          `json:"creator"`
	Image         string          `json:"image"`
	Price         string          `json:"price"`
	Description   string          `json:"description,omitempty"`
	TokenStandard string          `json:"token_standard"`
	Properties    json.RawMessage `json:"properties,omitempty"`
	OwnerID       *string         `json:"owner_id"`
}

type NFTCollectionResponse []NFTResponse

// NFTDetailResponse is the detail view: the item plus the viewer-dependent
// purchase affordance. ViewerBalance is present only for authenticated
// viewers.
type NFTDetailResponse struct {
	NFTResponse
	Purchasability string `json:"purchasability"`
	ViewerBalance  string `json:"viewer_balance,omitempty"`
}

type PurchaseCompleteResponse struct {
	Redirect string `json:"redirect"`
	DelayMS  int64  `json:"delay_ms"`
}

func ToNFTResponse(item *nft.NFT) *NFTResponse {
	var owner *string
	if item.OwnerID != nil {
		s := item.OwnerID.String()
		owner = &s
	}
	return &NFTResponse{
		ID:            item.ID.String(),
		Name:          item.Name,
		Creator:       item.Creator,
		Image:         item.Image,
		Price:         item.Price,
		Description:   item.Description,
		TokenStandard: item.TokenStandard,
		Properties:    item.Properties,
		OwnerID:       owner,
	}
}

func ToNFTCollectionResponse(items []nft.NFT) NFTCollectionResponse {
	collection := make(NFTCollectionResponse, 0, len(items))
	for i := range items {
		collection = append(collection, *ToNFTResponse(&items[i]))
	}
	return collection
}

func ToNFTDetailResponse(item *nft.NFT, purchasability nft.Purchasability, viewerBalance string) *NFTDetailResponse {
	return &NFTDetailResponse{
		NFTResponse:    *ToNFTResponse(item),
		Purchasability: string(purchasability),
		ViewerBalance:  viewerBalance,
	}
}

func ToPurchaseCompleteResponse(redirect *nft.PurchaseRedirect) *PurchaseCompleteResponse {
	return &PurchaseCompleteResponse{
		Redirect: redirect.Location,
		DelayMS:  redirect.Delay.Milliseconds(),
	}
}
