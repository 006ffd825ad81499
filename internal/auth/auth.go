package auth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// TokenPath is the backend's OAuth token endpoint, relative to the API base URL
const TokenPath = "/auth/token"

// Config holds the OAuth client settings for the MentalPitch backend
type Config struct {
	BaseURL  string
	ClientID string
}

// NewOAuthConfig creates an oauth2.Config for the backend
func NewOAuthConfig(cfg Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID: cfg.ClientID,
		Endpoint: oauth2.Endpoint{
			TokenURL:  cfg.BaseURL + TokenPath,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// Result contains the token and user info from a successful sign-in
type Result struct {
	Token  *oauth2.Token
	UserID string
}

// SignIn exchanges email/password credentials for tokens
func SignIn(ctx context.Context, cfg *oauth2.Config, email, password string) (*Result, error) {
	token, err := cfg.PasswordCredentialsToken(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("exchanging credentials: %w", err)
	}

	userID := ExtractUserID(token)
	if userID == "" {
		return nil, fmt.Errorf("token response missing user id")
	}

	return &Result{Token: token, UserID: userID}, nil
}

// ExtractUserID extracts the user ID from the token extras.
// The backend includes the user object in the token response.
func ExtractUserID(token *oauth2.Token) string {
	if user, ok := token.Extra("user").(map[string]interface{}); ok {
		if id, ok := user["id"].(string); ok {
			return id
		}
	}
	return ""
}
