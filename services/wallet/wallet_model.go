package wallet

import (
	"time"

	"github.com/MintVerse/MintVerse-Gateway/providers/datastore"
	"github.com/google/uuid"
)

type TransactionType string

const (
	TypeDeposit  TransactionType = "deposit"
	TypeWithdraw TransactionType = "withdraw"
	TypePurchase TransactionType = "purchase"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction is a requested balance-affecting action. Rows are only ever
// created pending here; status transitions happen in the remote store.
type Transaction struct {
	ID        uuid.UUID         `json:"id"`
	Type      TransactionType   `json:"type"`
	Amount    string            `json:"amount"`
	Status    TransactionStatus `json:"status"`
	Item      *string           `json:"item,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// DepositIntent is the confirmation step opened by a deposit request.
type DepositIntent struct {
	Amount        string `json:"amount"`
	WalletAddress string `json:"wallet_address"`
}

const DepositRejected = "rejected"

// DepositOutcome is the terminal result of a confirmed deposit.
type DepositOutcome struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func ToTransaction(row *datastore.TransactionRow) *Transaction {
	return &Transaction{
		ID:        row.ID,
		Type:      TransactionType(row.Type),
		Amount:    row.Amount,
		Status:    TransactionStatus(row.Status),
		Item:      row.Item,
		CreatedAt: row.CreatedAt,
	}
}

func ToTransactionCollection(rows []datastore.TransactionRow) []Transaction {
	collection := make([]Transaction, 0, len(rows))
	for i := range rows {
		collection = append(collection, *ToTransaction(&rows[i]))
	}
	return collection
}
