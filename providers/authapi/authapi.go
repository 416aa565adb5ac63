package authapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/MintVerse/MintVerse-Gateway/providers"
	"github.com/MintVerse/MintVerse-Gateway/utils"
)

type AuthConfig struct {
	AuthProviderName string `mapstructure:"AUTH_PROVIDER_NAME"`
	AuthKey          string `mapstructure:"AUTH_KEY"`
	AuthBaseUrl      string `mapstructure:"AUTH_BASE_URL"`
}

// User is the auth provider's view of the current account.
type User struct {
	ID       string                 `json:"id"`
	Email    string                 `json:"email"`
	Metadata map[string]interface{} `json:"user_metadata"`
}

// Client is the opaque auth capability: current user, sign-out, password
// update. Session issuance itself happens elsewhere; this layer only consumes
// tokens.
type Client struct {
	providers.BaseProvider
	config *AuthConfig
}

func NewAuthClient() *Client {

	var c AuthConfig

	err := utils.LoadCustomConfig(utils.EnvPath, &c)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	return &Client{
		BaseProvider: providers.BaseProvider{
			Name:    providers.AuthAPI,
			BaseURL: c.AuthBaseUrl,
			APIKey:  c.AuthKey,
			Client: &http.Client{
				Timeout: time.Second * 30,
			},
		},
		config: &c,
	}
}

func (c *Client) userURL(path string) (string, error) {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %v", err.Error())
	}
	base.Path += path
	return base.String(), nil
}

// GetCurrentUser resolves the account behind an access token.
func (c *Client) GetCurrentUser(ctx context.Context, accessToken string) (*User, error) {
	target, err := c.userURL("auth/v1/user")
	if err != nil {
		return nil, err
	}

	headers := map[string]string{"Authorization": "Bearer " + accessToken}
	resp, err := c.MakeRequestWithContext(ctx, "GET", target, nil, headers)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d \nURL: %s", resp.StatusCode, resp.Request.URL)
	}

	var user User
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(&user); err != nil {
		return nil, fmt.Errorf("error decoding response body: %w", err)
	}

	return &user, nil
}

// SignOut revokes the session behind an access token.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	target, err := c.userURL("auth/v1/logout")
	if err != nil {
		return err
	}

	headers := map[string]string{"Authorization": "Bearer " + accessToken}
	resp, err := c.MakeRequestWithContext(ctx, "POST", target, nil, headers)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status code: %d \nURL: %s", resp.StatusCode, resp.Request.URL)
	}

	return nil
}

// UpdatePassword sets a new password on the account behind an access token.
func (c *Client) UpdatePassword(ctx context.Context, accessToken string, newPassword string) error {
	target, err := c.userURL("auth/v1/user")
	if err != nil {
		return err
	}

	request := struct {
		Password string `json:"password"`
	}{Password: newPassword}

	headers := map[string]string{"Authorization": "Bearer " + accessToken}
	resp, err := c.MakeRequestWithContext(ctx, "PUT", target, request, headers)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d \nURL: %s", resp.StatusCode, resp.Request.URL)
	}

	return nil
}
