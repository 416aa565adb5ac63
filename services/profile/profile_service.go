package profile

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/MintVerse/MintVerse-Gateway/providers/authapi"
	"github.com/MintVerse/MintVerse-Gateway/providers/datastore"
	"github.com/MintVerse/MintVerse-Gateway/services/cache"
	"github.com/MintVerse/MintVerse-Gateway/services/monitoring/logging"
	"github.com/MintVerse/MintVerse-Gateway/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store is the slice of the remote row store the profile area needs.
type Store interface {
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*datastore.ProfileRow, error)
	UpdateProfileByUserID(ctx context.Context, userID uuid.UUID, patch map[string]interface{}) error
}

// AuthProvider is the opaque auth capability consumed by the profile area.
type AuthProvider interface {
	GetCurrentUser(ctx context.Context, accessToken string) (*authapi.User, error)
	SignOut(ctx context.Context, accessToken string) error
	UpdatePassword(ctx context.Context, accessToken string, newPassword string) error
}

// UserProfile is the composed profile view: auth-provider identity plus the
// stored profile row.
type UserProfile struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Login         string    `json:"login"`
	Country       string    `json:"country"`
	Balance       string    `json:"balance"`
	WalletAddress string    `json:"wallet_address,omitempty"`
	HideNickname  bool      `json:"hide_nickname"`
}

type ProfileService struct {
	store  Store
	auth   AuthProvider
	cache  *cache.Cache
	logger *logging.Logger
}

func NewProfileService(store Store, auth AuthProvider, cache *cache.Cache, logger *logging.Logger) *ProfileService {
	return &ProfileService{
		store:  store,
		auth:   auth,
		cache:  cache,
		logger: logger,
	}
}

func profileKey(userID uuid.UUID) string {
	return cache.Key(datastore.CollectionProfiles, "user_id=eq."+userID.String())
}

// GetProfile composes the viewer's stored attributes with their auth
// identity. Login and country fall back to the token metadata when the row
// leaves them empty; the balance renders to one decimal place. Tokens minted
// without embedded identity resolve it through the auth provider instead.
func (s *ProfileService) GetProfile(ctx context.Context, viewer utils.Viewer, accessToken string) (*UserProfile, error) {
	if viewer.Email == "" {
		user, err := s.auth.GetCurrentUser(ctx, accessToken)
		if err != nil {
			s.logger.Error("Auth Provider Error", err)
		} else {
			viewer.Email = user.Email
			if viewer.Metadata == nil {
				viewer.Metadata = user.Metadata
			}
		}
	}

	key := profileKey(viewer.UserID)

	var row *datastore.ProfileRow
	if val, err := s.cache.Get(key); err == nil {
		row, _ = val.(*datastore.ProfileRow)
	}

	if row == nil {
		fetched, err := s.store.GetProfileByUserID(ctx, viewer.UserID)
		if errors.Is(err, datastore.ErrNoRows) {
			return nil, ErrProfileNotFound
		} else if err != nil {
			return nil, err
		}
		s.cache.Insert(key, fetched)
		row = fetched
	}

	login := row.Login
	if login == "" {
		login = viewer.MetadataString("login")
	}
	country := row.Country
	if country == "" {
		country = viewer.MetadataString("country")
	}

	balance, err := decimal.NewFromString(row.Balance)
	if err != nil {
		balance = decimal.Zero
	}

	return &UserProfile{
		ID:            viewer.UserID,
		Email:         viewer.Email,
		Login:         login,
		Country:       country,
		Balance:       balance.StringFixed(1),
		WalletAddress: row.WalletAddress,
		HideNickname:  row.HideNickname,
	}, nil
}

// SetNicknameHidden flips the nickname-visibility flag.
func (s *ProfileService) SetNicknameHidden(ctx context.Context, viewer uuid.UUID, hidden bool) error {
	err := s.store.UpdateProfileByUserID(ctx, viewer, map[string]interface{}{
		"hide_nickname": hidden,
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(profileKey(viewer))
	s.logger.Info(fmt.Sprintf("nickname visibility updated -> hidden=%v for %v", hidden, viewer))
	return nil
}

// GenerateWalletAddress mints an ERC-20-shaped address: 0x plus 40 hex chars.
func GenerateWalletAddress() (string, error) {
	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(raw), nil
}

func isValidWalletAddress(address string) bool {
	if len(address) != 42 || !strings.HasPrefix(address, "0x") {
		return false
	}
	_, err := hex.DecodeString(address[2:])
	return err == nil
}

// SaveWalletAddress stores a generated deposit address on the profile.
func (s *ProfileService) SaveWalletAddress(ctx context.Context, viewer uuid.UUID, address string) error {
	if !isValidWalletAddress(address) {
		return ErrInvalidWalletAddress
	}

	err := s.store.UpdateProfileByUserID(ctx, viewer, map[string]interface{}{
		"wallet_address": address,
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(profileKey(viewer))
	s.logger.Info(fmt.Sprintf("wallet address saved for %v", viewer))
	return nil
}

// ChangePassword checks the confirmation locally, then forwards to the auth
// provider. Passwords never touch the row store.
func (s *ProfileService) ChangePassword(ctx context.Context, accessToken string, newPassword string, confirmPassword string) error {
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}

	return s.auth.UpdatePassword(ctx, accessToken, newPassword)
}

// SignOut revokes the viewer's session with the auth provider.
func (s *ProfileService) SignOut(ctx context.Context, accessToken string) error {
	return s.auth.SignOut(ctx, accessToken)
}
