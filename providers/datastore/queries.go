package datastore

import (
	"context"

	"github.com/google/uuid"
)

// Typed reads and writes over the three collections. Each screen composes a
// handful of these; none of them spans more than one collection.

func (c *Client) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*ProfileRow, error) {
	var rows []ProfileRow
	q := Query{
		Filters: []Eq{{Column: "user_id", Value: userID.String()}},
		Limit:   1,
	}
	if err := c.Select(ctx, CollectionProfiles, q, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return &rows[0], nil
}

func (c *Client) UpdateProfileByUserID(ctx context.Context, userID uuid.UUID, patch map[string]interface{}) error {
	return c.Update(ctx, CollectionProfiles, patch, Eq{Column: "user_id", Value: userID.String()})
}

func (c *Client) ListTransactionsByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]TransactionRow, error) {
	var rows []TransactionRow
	q := Query{
		Filters:   []Eq{{Column: "user_id", Value: userID.String()}},
		OrderDesc: "created_at",
		Limit:     limit,
	}
	if err := c.Select(ctx, CollectionTransactions, q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) InsertTransaction(ctx context.Context, row NewTransactionRow) (*TransactionRow, error) {
	var stored []TransactionRow
	if err := c.Insert(ctx, CollectionTransactions, []NewTransactionRow{row}, &stored); err != nil {
		return nil, err
	}
	if len(stored) == 0 {
		return nil, ErrNoRows
	}
	return &stored[0], nil
}

func (c *Client) GetNFTByID(ctx context.Context, id uuid.UUID) (*NFTRow, error) {
	var rows []NFTRow
	q := Query{
		Filters: []Eq{{Column: "id", Value: id.String()}},
		Limit:   1,
	}
	if err := c.Select(ctx, CollectionNFTs, q, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return &rows[0], nil
}

func (c *Client) ListNFTs(ctx context.Context) ([]NFTRow, error) {
	var rows []NFTRow
	q := Query{OrderDesc: "created_at"}
	if err := c.Select(ctx, CollectionNFTs, q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
