package nft

import (
	"encoding/json"
	"time"

	"github.com/MintVerse/MintVerse-Gateway/providers/datastore"
	"github.com/google/uuid"
)

// NFT is a marketplace listing. Ownership is a single nullable reference:
// unowned, owned by the viewer, or owned by someone else.
type NFT struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Creator       string          `json:"creator"`
	Image         string          `json:"image"`
	Price         string          `json:"price"`
	Description   string          `json:"description,omitempty"`
	TokenStandard string          `json:"token_standard"`
	Properties    json.RawMessage `json:"properties,omitempty"`
	OwnerID       *uuid.UUID      `json:"owner_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Purchasability classifies whether the viewer may purchase an item. The
// three states are mutually exclusive and drive the purchase affordance.
type Purchasability string

const (
	Available    Purchasability = "available"
	Owned        Purchasability = "owned"
	TakenByOther Purchasability = "taken_by_other"
)

// PurchasabilityOf derives the state from the owner reference alone. Owned
// wins when the owner is the viewer; any other non-null owner means taken.
func PurchasabilityOf(item *NFT, viewerID uuid.UUID) Purchasability {
	if item.OwnerID == nil {
		return Available
	}
	if viewerID != uuid.Nil && *item.OwnerID == viewerID {
		return Owned
	}
	return TakenByOther
}

// PurchaseRedirect tells the client where to send the viewer once a purchase
// completes. The delay is cosmetic, leaving time for a success notification.
type PurchaseRedirect struct {
	Location string        `json:"location"`
	Delay    time.Duration `json:"-"`
}

func ToNFT(row *datastore.NFTRow) *NFT {
	return &NFT{
		ID:            row.ID,
		Name:          row.Name,
		Creator:       row.Creator,
		Image:         row.Image,
		Price:         row.Price,
		Description:   row.Description,
		TokenStandard: row.TokenStandard,
		Properties:    row.Properties,
		OwnerID:       row.OwnerID,
		CreatedAt:     row.CreatedAt,
	}
}

func ToNFTCollection(rows []datastore.NFTRow) []NFT {
	collection := make([]NFT, 0, len(rows))
	for i := range rows {
		collection = append(collection, *ToNFT(&rows[i]))
	}
	return collection
}
