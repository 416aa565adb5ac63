package wallet

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MintVerse/MintVerse-Gateway/providers/datastore"
	"github.com/MintVerse/MintVerse-Gateway/services/cache"
	"github.com/MintVerse/MintVerse-Gateway/services/monitoring/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionHistoryLimit bounds the profile view's history.
const TransactionHistoryLimit = 10

// Store is the slice of the remote row store the wallet flow needs.
type Store interface {
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*datastore.ProfileRow, error)
	ListTransactionsByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]datastore.TransactionRow, error)
	InsertTransaction(ctx context.Context, row datastore.NewTransactionRow) (*datastore.TransactionRow, error)
}

type WalletService struct {
	store          Store
	cache          *cache.Cache
	logger         *logging.Logger
	supportContact string
}

func NewWalletService(store Store, cache *cache.Cache, logger *logging.Logger, supportContact string) *WalletService {
	return &WalletService{
		store:          store,
		cache:          cache,
		logger:         logger,
		supportContact: supportContact,
	}
}

func profileKey(userID uuid.UUID) string {
	return cache.Key(datastore.CollectionProfiles, "user_id=eq."+userID.String())
}

func transactionsKey(userID uuid.UUID) string {
	return cache.Key(datastore.CollectionTransactions, "user_id=eq."+userID.String())
}

// displayedProfile is the profile as the viewer currently sees it: the cached
// read when present, a fresh fetch otherwise. Withdrawal checks run against
// this, not a transactional read; the store re-enforces them on settlement.
func (s *WalletService) displayedProfile(ctx context.Context, viewer uuid.UUID) (*datastore.ProfileRow, error) {
	key := profileKey(viewer)
	if val, err := s.cache.Get(key); err == nil {
		if row, ok := val.(*datastore.ProfileRow); ok {
			return row, nil
		}
	}

	row, err := s.store.GetProfileByUserID(ctx, viewer)
	if errors.Is(err, datastore.ErrNoRows) {
		return nil, ErrProfileNotFound
	} else if err != nil {
		return nil, err
	}

	s.cache.Insert(key, row)
	return row, nil
}

func parseAmount(amount string) (decimal.Decimal, error) {
	amt, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if amt.Sign() <= 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	return amt, nil
}

// RequestWithdraw validates the amount against the displayed balance and, on
// success, records exactly one pending withdraw transaction. The displayed
// balance is never decremented here; it only changes on the next full reload.
func (s *WalletService) RequestWithdraw(ctx context.Context, viewer uuid.UUID, amount string) (*Transaction, error) {
	amt, err := parseAmount(amount)
	if err != nil {
		return nil, err
	}

	profile, err := s.displayedProfile(ctx, viewer)
	if err != nil {
		return nil, err
	}

	balance, err := decimal.NewFromString(profile.Balance)
	if err != nil {
		balance = decimal.Zero
	}

	if amt.GreaterThan(balance) {
		return nil, ErrInsufficientFunds
	}

	row, err := s.store.InsertTransaction(ctx, datastore.NewTransactionRow{
		UserID: viewer,
		Type:   string(TypeWithdraw),
		Amount: amt.String(),
		Status: string(StatusPending),
	})
	if err != nil {
		return nil, err
	}

	// The history view must re-fetch on its next read.
	s.cache.Invalidate(transactionsKey(viewer))

	s.logger.Info(fmt.Sprintf("withdrawal requested -> %v ETH for %v", amt, viewer))
	return ToTransaction(row), nil
}

// RequestDeposit opens the confirmation step. A generated wallet address is a
// prerequisite; no transaction row is recorded at any point of the deposit
// flow.
func (s *WalletService) RequestDeposit(ctx context.Context, viewer uuid.UUID, amount string) (*DepositIntent, error) {
	amt, err := parseAmount(amount)
	if err != nil {
		return nil, err
	}

	profile, err := s.displayedProfile(ctx, viewer)
	if err != nil {
		return nil, err
	}

	if profile.WalletAddress == "" {
		return nil, ErrMissingWalletAddress
	}

	return &DepositIntent{
		Amount:        amt.String(),
		WalletAddress: profile.WalletAddress,
	}, nil
}

// ConfirmDeposit terminates the confirmation step. There is no automatic
// settlement path; every confirmed deposit ends rejected with a manual
// verification instruction.
func (s *WalletService) ConfirmDeposit(ctx context.Context, viewer uuid.UUID, amount string) *DepositOutcome {
	s.logger.Info(fmt.Sprintf("deposit of %v rejected for %v, directing to manual verification", amount, viewer))

	return &DepositOutcome{
		Status:  DepositRejected,
		Message: fmt.Sprintf("Deposit of %v ETH rejected. Please contact our support team on %v for transaction verification", amount, s.supportContact),
	}
}

// ListTransactions returns the viewer's 10 most recent transactions, newest
// first. No transactions is a valid empty result, not an error.
func (s *WalletService) ListTransactions(ctx context.Context, viewer uuid.UUID) ([]Transaction, error) {
	key := transactionsKey(viewer)
	if val, err := s.cache.Get(key); err == nil {
		if txs, ok := val.([]Transaction); ok {
			return txs, nil
		}
	}

	rows, err := s.store.ListTransactionsByUserID(ctx, viewer, TransactionHistoryLimit)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	if len(rows) > TransactionHistoryLimit {
		rows = rows[:TransactionHistoryLimit]
	}

	txs := ToTransactionCollection(rows)
	s.cache.Insert(key, txs)
	return txs, nil
}
