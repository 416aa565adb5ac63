package datastore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MintVerse/MintVerse-Gateway/providers"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server) *Client {
	return &Client{
		BaseProvider: providers.BaseProvider{
			Name:    providers.DataStore,
			BaseURL: srv.URL + "/",
			APIKey:  "test-key",
			Client:  srv.Client(),
		},
	}
}

func TestGetProfileByUserIDBuildsQuery(t *testing.T) {
	userID := uuid.New()
	var gotPath, gotQuery string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]ProfileRow{{UserID: userID, Balance: "2.0"}})
	}))
	defer srv.Close()

	client := newTestClient(srv)
	row, err := client.GetProfileByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "2.0", row.Balance)
	assert.Equal(t, "/rest/v1/profiles", gotPath)
	assert.Contains(t, gotQuery, "user_id=eq."+userID.String())
	assert.Contains(t, gotQuery, "limit=1")
}

func TestGetProfileByUserIDNoRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]ProfileRow{})
	}))
	defer srv.Close()

	client := newTestClient(srv)
	_, err := client.GetProfileByUserID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestListTransactionsByUserIDOrderAndLimit(t *testing.T) {
	userID := uuid.New()
	var gotQuery string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]TransactionRow{
			{ID: uuid.New(), UserID: userID, Type: "withdraw", Amount: "1.5", Status: "pending", CreatedAt: time.Now()},
		})
	}))
	defer srv.Close()

	client := newTestClient(srv)
	rows, err := client.ListTransactionsByUserID(context.Background(), userID, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Contains(t, gotQuery, "order=created_at.desc")
	assert.Contains(t, gotQuery, "limit=10")
}

func TestInsertTransactionReturnsRepresentation(t *testing.T) {
	userID := uuid.New()
	storedID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/transactions", r.URL.Path)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

		var body []NewTransactionRow
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body, 1)
		assert.Equal(t, "withdraw", body[0].Type)
		assert.Equal(t, "1.5", body[0].Amount)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode([]TransactionRow{{
			ID:        storedID,
			UserID:    body[0].UserID,
			Type:      body[0].Type,
			Amount:    body[0].Amount,
			Status:    body[0].Status,
			CreatedAt: time.Now(),
		}})
	}))
	defer srv.Close()

	client := newTestClient(srv)
	row, err := client.InsertTransaction(context.Background(), NewTransactionRow{
		UserID: userID,
		Type:   "withdraw",
		Amount: "1.5",
		Status: "pending",
	})
	require.NoError(t, err)
	assert.Equal(t, storedID, row.ID)
}

func TestUpdateProfileByUserIDPatches(t *testing.T) {
	userID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/rest/v1/profiles", r.URL.Path)
		assert.Contains(t, r.URL.RawQuery, "user_id=eq."+userID.String())

		var patch map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		assert.Equal(t, true, patch["hide_nickname"])

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := newTestClient(srv)
	err := client.UpdateProfileByUserID(context.Background(), userID, map[string]interface{}{"hide_nickname": true})
	require.NoError(t, err)
}

func TestSelectSurfacesUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := newTestClient(srv)
	_, err := client.GetNFTByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoRows, "permission failures are store errors, not absence")
}
