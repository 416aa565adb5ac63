package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MintVerse/MintVerse-Gateway/api/apistrings"
	"github.com/MintVerse/MintVerse-Gateway/providers"
	"github.com/MintVerse/MintVerse-Gateway/providers/datastore"
	"github.com/MintVerse/MintVerse-Gateway/services/cache"
	"github.com/MintVerse/MintVerse-Gateway/services/monitoring/logging"
	"github.com/MintVerse/MintVerse-Gateway/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSigningKey = "test-signing-key"

// rowStoreBackend fakes the remote row store for handler tests: one profile
// row plus an append-only transaction log.
type rowStoreBackend struct {
	profile      datastore.ProfileRow
	transactions []datastore.TransactionRow
}

func (b *rowStoreBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/rest/v1/profiles":
		json.NewEncoder(w).Encode([]datastore.ProfileRow{b.profile})
	case r.Method == http.MethodGet && r.URL.Path == "/rest/v1/transactions":
		json.NewEncoder(w).Encode(b.transactions)
	case r.Method == http.MethodPost && r.URL.Path == "/rest/v1/transactions":
		var rows []datastore.NewTransactionRow
		if err := json.NewDecoder(r.Body).Decode(&rows); err != nil || len(rows) != 1 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		stored := datastore.TransactionRow{
			ID:        uuid.New(),
			UserID:    rows[0].UserID,
			Type:      rows[0].Type,
			Amount:    rows[0].Amount,
			Status:    rows[0].Status,
			Item:      rows[0].Item,
			CreatedAt: time.Now(),
		}
		b.transactions = append(b.transactions, stored)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode([]datastore.TransactionRow{stored})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestServer(t *testing.T, backend *rowStoreBackend) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	config := &utils.Config{
		SigningKey:     testSigningKey,
		SupportContact: "Telegram @mintverse_support",
	}
	TokenController = utils.NewTokenVerifier(config)

	store := &datastore.Client{
		BaseProvider: providers.BaseProvider{
			Name:    providers.DataStore,
			BaseURL: srv.URL + "/",
			APIKey:  "test-key",
			Client:  srv.Client(),
		},
	}

	server := &Server{
		router: gin.New(),
		store:  store,
		config: config,
		logger: logging.NewTestLogger(),
		cache:  cache.NewCache(),
	}
	Wallet{}.router(server)
	return server
}

func accessToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID.String(),
		"email": "collector@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSigningKey))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, server *Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, req)
	return recorder
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope
}

func TestWalletRoutesRequireAuth(t *testing.T) {
	server := newTestServer(t, &rowStoreBackend{})

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/wallet/transactions"},
		{http.MethodPost, "/api/v1/wallet/withdraw"},
		{http.MethodPost, "/api/v1/wallet/deposit"},
		{http.MethodPost, "/api/v1/wallet/deposit/confirm"},
	} {
		recorder := doJSON(t, server, route.method, route.path, "", gin.H{"amount": "1"})
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, "%s %s", route.method, route.path)
	}
}

func TestWithdrawCreatesPendingTransaction(t *testing.T) {
	userID := uuid.New()
	backend := &rowStoreBackend{profile: datastore.ProfileRow{UserID: userID, Balance: "2.0"}}
	server := newTestServer(t, backend)

	recorder := doJSON(t, server, http.MethodPost, "/api/v1/wallet/withdraw", accessToken(t, userID), gin.H{"amount": "1.5"})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	envelope := decodeEnvelope(t, recorder)
	assert.Equal(t, "successful", envelope["status"])

	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "withdraw", data["type"])
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, "1.5", data["amount"])

	require.Len(t, backend.transactions, 1)
	assert.Equal(t, "2.0", backend.profile.Balance, "withdrawal must not touch the stored balance")
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	userID := uuid.New()
	backend := &rowStoreBackend{profile: datastore.ProfileRow{UserID: userID, Balance: "2.0"}}
	server := newTestServer(t, backend)

	recorder := doJSON(t, server, http.MethodPost, "/api/v1/wallet/withdraw", accessToken(t, userID), gin.H{"amount": "3"})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	assert.Equal(t, "failed", envelope["status"])
	assert.Equal(t, apistrings.InsufficientFunds, envelope["message"])
	assert.Empty(t, backend.transactions)
}

func TestWithdrawRejectsMalformedBody(t *testing.T) {
	userID := uuid.New()
	backend := &rowStoreBackend{profile: datastore.ProfileRow{UserID: userID, Balance: "2.0"}}
	server := newTestServer(t, backend)

	recorder := doJSON(t, server, http.MethodPost, "/api/v1/wallet/withdraw", accessToken(t, userID), gin.H{})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	assert.Equal(t, apistrings.InvalidAmountInput, envelope["message"])
}

func TestDepositWithoutWalletAddress(t *testing.T) {
	userID := uuid.New()
	backend := &rowStoreBackend{profile: datastore.ProfileRow{UserID: userID, Balance: "2.0"}}
	server := newTestServer(t, backend)

	recorder := doJSON(t, server, http.MethodPost, "/api/v1/wallet/deposit", accessToken(t, userID), gin.H{"amount": "1"})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	assert.Equal(t, apistrings.MissingWalletAddress, envelope["message"])
}

func TestDepositOpensConfirmation(t *testing.T) {
	userID := uuid.New()
	backend := &rowStoreBackend{profile: datastore.ProfileRow{
		UserID:        userID,
		Balance:       "2.0",
		WalletAddress: "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef",
	}}
	server := newTestServer(t, backend)

	recorder := doJSON(t, server, http.MethodPost, "/api/v1/wallet/deposit", accessToken(t, userID), gin.H{"amount": "1.25"})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	envelope := decodeEnvelope(t, recorder)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "1.25", data["amount"])
	assert.Equal(t, "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef", data["wallet_address"])
	assert.Empty(t, backend.transactions, "deposits never write transaction rows")
}

func TestConfirmDepositAlwaysRejected(t *testing.T) {
	userID := uuid.New()
	backend := &rowStoreBackend{profile: datastore.ProfileRow{
		UserID:        userID,
		Balance:       "2.0",
		WalletAddress: "0xdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef",
	}}
	server := newTestServer(t, backend)

	recorder := doJSON(t, server, http.MethodPost, "/api/v1/wallet/deposit/confirm", accessToken(t, userID), gin.H{"amount": "1.25"})
	require.Equal(t, http.StatusOK, recorder.Code)

	envelope := decodeEnvelope(t, recorder)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "rejected", data["status"])
	assert.Contains(t, data["message"], "Telegram @mintverse_support")
	assert.Equal(t, float64(1000), data["delay_ms"])
	assert.Empty(t, backend.transactions)
}

func TestGetTransactions(t *testing.T) {
	userID := uuid.New()
	backend := &rowStoreBackend{
		profile: datastore.ProfileRow{UserID: userID, Balance: "2.0"},
		transactions: []datastore.TransactionRow{
			{ID: uuid.New(), UserID: userID, Type: "withdraw", Amount: "1.5", Status: "pending", CreatedAt: time.Now()},
		},
	}
	server := newTestServer(t, backend)

	recorder := doJSON(t, server, http.MethodGet, "/api/v1/wallet/transactions", accessToken(t, userID), nil)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	envelope := decodeEnvelope(t, recorder)
	data := envelope["data"].([]interface{})
	require.Len(t, data, 1)
	tx := data[0].(map[string]interface{})
	assert.Equal(t, "withdraw", tx["type"])
	assert.Equal(t, "pending", tx["status"])
}
