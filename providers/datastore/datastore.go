package datastore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/MintVerse/MintVerse-Gateway/providers"
	"github.com/MintVerse/MintVerse-Gateway/utils"
)

// ErrNoRows is returned when a single-row read matches nothing. Absence is a
// state callers are expected to handle, not a transport failure.
var ErrNoRows = errors.New("datastore: no rows in result set")

type DataStoreConfig struct {
	DataStoreName    string `mapstructure:"DATASTORE_PROVIDER_NAME"`
	DataStoreKey     string `mapstructure:"DATASTORE_KEY"`
	DataStoreBaseUrl string `mapstructure:"DATASTORE_BASE_URL"`
}

// Client talks to the remote row store: select / insert / update over the
// profiles, transactions and nfts collections, filtered by equality
// predicates. One attempt per call, no retries.
type Client struct {
	providers.BaseProvider
	config *DataStoreConfig
}

func NewDataStoreClient() *Client {

	var c DataStoreConfig

	err := utils.LoadCustomConfig(utils.EnvPath, &c)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	return &Client{
		BaseProvider: providers.BaseProvider{
			Name:    providers.DataStore,
			BaseURL: c.DataStoreBaseUrl,
			APIKey:  c.DataStoreKey,
			Client: &http.Client{
				Timeout: time.Second * 30,
			},
		},
		config: &c,
	}
}

// Eq is an equality predicate on a collection column.
type Eq struct {
	Column string
	Value  string
}

// Query carries the filter, ordering and bound of a select.
type Query struct {
	Filters   []Eq
	OrderDesc string
	Limit     int
}

func (c *Client) buildURL(collection string, q Query) (string, error) {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %v", err.Error())
	}

	base.Path += "rest/v1/" + collection

	params := url.Values{}
	params.Add("select", "*")
	for _, f := range q.Filters {
		params.Add(f.Column, "eq."+f.Value)
	}
	if q.OrderDesc != "" {
		params.Add("order", q.OrderDesc+".desc")
	}
	if q.Limit > 0 {
		params.Add("limit", strconv.Itoa(q.Limit))
	}
	base.RawQuery = params.Encode()

	return base.String(), nil
}

// Select fetches all rows matching the query into out (a pointer to a slice).
func (c *Client) Select(ctx context.Context, collection string, q Query, out interface{}) error {
	target, err := c.buildURL(collection, q)
	if err != nil {
		return err
	}

	resp, err := c.MakeRequestWithContext(ctx, "GET", target, nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d \nURL: %s", resp.StatusCode, resp.Request.URL)
	}

	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("error decoding response body: %w", err)
	}

	return nil
}

// Insert writes one row and decodes the stored representation into out when
// out is non-nil.
func (c *Client) Insert(ctx context.Context, collection string, row interface{}, out interface{}) error {
	target, err := c.buildURL(collection, Query{})
	if err != nil {
		return err
	}

	headers := map[string]string{"Prefer": "return=representation"}
	resp, err := c.MakeRequestWithContext(ctx, "POST", target, row, headers)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d \nURL: %s", resp.StatusCode, resp.Request.URL)
	}

	if out == nil {
		return nil
	}

	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("error decoding response body: %w", err)
	}

	return nil
}

// Update patches rows matching the filters.
func (c *Client) Update(ctx context.Context, collection string, patch interface{}, filters ...Eq) error {
	target, err := c.buildURL(collection, Query{Filters: filters})
	if err != nil {
		return err
	}

	resp, err := c.MakeRequestWithContext(ctx, "PATCH", target, patch, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status code: %d \nURL: %s", resp.StatusCode, resp.Request.URL)
	}

	return nil
}
