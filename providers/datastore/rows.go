package datastore

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Collections exposed by the remote row store.
const (
	CollectionProfiles     = "profiles"
	CollectionTransactions = "transactions"
	CollectionNFTs         = "nfts"
)

type ProfileRow struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Login         string    `json:"login"`
	Country       string    `json:"country"`
	Balance       string    `json:"balance"`
	WalletAddress string    `json:"wallet_address"`
	HideNickname  bool      `json:"hide_nickname"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type TransactionRow struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Type      string    `json:"type"`
	Amount    string    `json:"amount"`
	Status    string    `json:"status"`
	Item      *string   `json:"item,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTransactionRow is the insert shape; id and created_at are store-issued.
type NewTransactionRow struct {
	UserID uuid.UUID `json:"user_id"`
	Type   string    `json:"type"`
	Amount string    `json:"amount"`
	Status string    `json:"status"`
	Item   *string   `json:"item,omitempty"`
}

type NFTRow struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Creator       string          `json:"creator"`
	Image         string          `json:"image"`
	Price         string          `json:"price"`
	Description   string          `json:"description"`
	TokenStandard string          `json:"token_standard"`
	Properties    json.RawMessage `json:"properties"`
	OwnerID       *uuid.UUID      `json:"owner_id"`
	CreatedAt     time.Time       `json:"created_at"`
}
