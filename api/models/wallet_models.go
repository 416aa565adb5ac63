package models

import (
	"github.com/MintVerse/MintVerse-Gateway/services/wallet"
)

// NotifyDelayMS is how long the client should wait before surfacing the
// outcome notification for a wallet action.
const NotifyDelayMS = 1000

type TransactionResponse struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"`
	Amount string  `json:"amount"`
	Date   string  `json:"date"`
	Status string  `json:"status"`
	Item   *string `json:"item,omitempty"`
}

type TransactionCollectionResponse []TransactionResponse

type DepositIntentResponse struct {
	Amount        string `json:"amount"`
	WalletAddress string `json:"wallet_address"`
}

type DepositOutcomeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	DelayMS int64  `json:"delay_ms"`
}

func ToTransactionResponse(tx *wallet.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:     tx.ID.String(),
		Type:   string(tx.Type),
		Amount: tx.Amount,
		Date:   tx.CreatedAt.UTC().Format("2006-01-02"),
		Status: string(tx.Status),
		Item:   tx.Item,
	}
}

func ToTransactionCollectionResponse(txs []wallet.Transaction) TransactionCollectionResponse {
	collection := make(TransactionCollectionResponse, 0, len(txs))
	for i := range txs {
		collection = append(collection, *ToTransactionResponse(&txs[i]))
	}
	return collection
}

func ToDepositIntentResponse(intent *wallet.DepositIntent) *DepositIntentResponse {
	return &DepositIntentResponse{
		Amount:        intent.Amount,
		WalletAddress: intent.WalletAddress,
	}
}

func ToDepositOutcomeResponse(outcome *wallet.DepositOutcome) *DepositOutcomeResponse {
	return &DepositOutcomeResponse{
		Status:  outcome.Status,
		Message: outcome.Message,
		DelayMS: NotifyDelayMS,
	}
}
