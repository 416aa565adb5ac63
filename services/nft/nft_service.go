package nft

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MintVerse/MintVerse-Gateway/providers/datastore"
	"github.com/MintVerse/MintVerse-Gateway/services/cache"
	"github.com/MintVerse/MintVerse-Gateway/services/monitoring/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RedirectDelay is how long the client should keep the success notification
// on screen before navigating to the profile. Cosmetic only.
const RedirectDelay = 2 * time.Second

const profileLocation = "/profile"

// Store is the slice of the remote row store the item flow needs.
type Store interface {
	GetNFTByID(ctx context.Context, id uuid.UUID) (*datastore.NFTRow, error)
	ListNFTs(ctx context.Context) ([]datastore.NFTRow, error)
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*datastore.ProfileRow, error)
}

type NFTService struct {
	store  Store
	cache  *cache.Cache
	logger *logging.Logger
}

func NewNFTService(store Store, cache *cache.Cache, logger *logging.Logger) *NFTService {
	return &NFTService{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

func itemKey(id uuid.UUID) string {
	return cache.Key(datastore.CollectionNFTs, "id=eq."+id.String())
}

func listingKey() string {
	return cache.Key(datastore.CollectionNFTs)
}

func balanceKey(userID uuid.UUID) string {
	return cache.Key(datastore.CollectionProfiles, "user_id=eq."+userID.String())
}

// GetItem fetches one listing by identifier. Absence is a terminal state the
// caller renders neutrally, not a store failure.
func (s *NFTService) GetItem(ctx context.Context, id uuid.UUID) (*NFT, error) {
	key := itemKey(id)
	if val, err := s.cache.Get(key); err == nil {
		if item, ok := val.(*NFT); ok {
			return item, nil
		}
	}

	row, err := s.store.GetNFTByID(ctx, id)
	if errors.Is(err, datastore.ErrNoRows) {
		return nil, ErrItemNotFound
	} else if err != nil {
		return nil, err
	}

	item := ToNFT(row)
	s.cache.Insert(key, item)
	return item, nil
}

// ListItems returns the marketplace listing.
func (s *NFTService) ListItems(ctx context.Context) ([]NFT, error) {
	key := listingKey()
	if val, err := s.cache.Get(key); err == nil {
		if items, ok := val.([]NFT); ok {
			return items, nil
		}
	}

	rows, err := s.store.ListNFTs(ctx)
	if err != nil {
		return nil, err
	}

	items := ToNFTCollection(rows)
	s.cache.Insert(key, items)
	return items, nil
}

// ViewerBalance reads the viewer's balance. Callers skip this entirely when
// no user is authenticated.
func (s *NFTService) ViewerBalance(ctx context.Context, viewer uuid.UUID) (string, error) {
	key := balanceKey(viewer)
	if val, err := s.cache.Get(key); err == nil {
		if row, ok := val.(*datastore.ProfileRow); ok {
			return row.Balance, nil
		}
	}

	row, err := s.store.GetProfileByUserID(ctx, viewer)
	if errors.Is(err, datastore.ErrNoRows) {
		return "", ErrProfileNotFound
	} else if err != nil {
		return "", err
	}

	s.cache.Insert(key, row)
	return row.Balance, nil
}

// InitiatePurchase runs the advisory pre-checks for a purchase: the item must
// be available and the viewer's balance must cover the price. Settlement
// itself happens in the remote store.
func (s *NFTService) InitiatePurchase(ctx context.Context, viewer uuid.UUID, id uuid.UUID) (*NFT, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if PurchasabilityOf(item, viewer) != Available {
		return nil, ErrItemNotAvailable
	}

	balanceStr, err := s.ViewerBalance(ctx, viewer)
	if err != nil {
		return nil, err
	}

	balance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		balance = decimal.Zero
	}
	price, err := decimal.NewFromString(item.Price)
	if err != nil {
		price = decimal.Zero
	}

	if balance.LessThan(price) {
		return nil, ErrInsufficientFunds
	}

	s.logger.Info(fmt.Sprintf("purchase initiated -> item %v by %v", id, viewer))
	return item, nil
}

// CompletePurchase invalidates every cached read the purchase affects, so the
// item, the viewer's balance and the listing re-fetch on next access, then
// points the viewer at their profile.
func (s *NFTService) CompletePurchase(ctx context.Context, viewer uuid.UUID, id uuid.UUID) *PurchaseRedirect {
	s.cache.Invalidate(itemKey(id))
	s.cache.Invalidate(balanceKey(viewer))
	s.cache.Invalidate(listingKey())

	s.logger.Info(fmt.Sprintf("purchase complete -> item %v by %v", id, viewer))

	return &PurchaseRedirect{
		Location: profileLocation,
		Delay:    RedirectDelay,
	}
}
