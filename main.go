package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/term"

	tea "github.com/charmbracelet/bubbletea"

	"mentalpitch/internal/api"
	"mentalpitch/internal/auth"
	"mentalpitch/internal/config"
	"mentalpitch/internal/service"
	"mentalpitch/internal/store"
	"mentalpitch/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating example config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("\nPlease edit the config file at:\n  %s/config.json\n\n", configDir)
		fmt.Println("You need to add your MentalPitch client ID.")
		fmt.Println("Find it in your account settings at https://mentalpitch.app")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// Open database
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	oauthCfg := auth.NewOAuthConfig(auth.Config{
		BaseURL:  cfg.API.BaseURL,
		ClientID: cfg.API.ClientID,
	})

	// Check for existing auth
	storedAuth, err := db.GetAuth()
	if errors.Is(err, store.ErrNoAuth) {
		fmt.Println("No sign-in found. Please sign in to MentalPitch.")
		if err := signIn(ctx, db, oauthCfg); err != nil {
			return fmt.Errorf("sign-in: %w", err)
		}
		storedAuth, err = db.GetAuth()
		if err != nil {
			return fmt.Errorf("fetching auth after sign-in: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("checking auth: %w", err)
	}

	// Create token source for API calls (with auto-refresh)
	persistTokens := func(newToken *oauth2.Token) error {
		return db.UpdateTokens(newToken.AccessToken, newToken.RefreshToken, newToken.Expiry)
	}
	tokenSource := auth.NewStoredTokenSource(oauthCfg, storedAuth, persistTokens)

	// Test token is valid by getting a fresh one
	if _, err := tokenSource.Token(); err != nil {
		fmt.Println("Stored session is invalid or expired. Please sign in again.")
		if err := signIn(ctx, db, oauthCfg); err != nil {
			return fmt.Errorf("re-authentication: %w", err)
		}
		storedAuth, err = db.GetAuth()
		if err != nil {
			return fmt.Errorf("fetching auth after sign-in: %w", err)
		}
		tokenSource = auth.NewStoredTokenSource(oauthCfg, storedAuth, persistTokens)
	}

	// Create services
	client := api.NewClient(cfg.API.BaseURL, tokenSource)
	syncSvc := service.NewSyncService(client, db)
	querySvc := service.NewQueryService(db)

	// Launch TUI
	app := tui.NewApp(db, syncSvc, querySvc, cfg.Display)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

func signIn(ctx context.Context, db *store.DB, oauthCfg *oauth2.Config) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading email: %w", err)
	}
	email = strings.TrimSpace(email)

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}

	result, err := auth.SignIn(ctx, oauthCfg, email, string(password))
	if err != nil {
		return err
	}

	// Store the tokens
	storedAuth := &store.Auth{
		UserID:       result.UserID,
		Email:        email,
		AccessToken:  result.Token.AccessToken,
		RefreshToken: result.Token.RefreshToken,
		ExpiresAt:    result.Token.Expiry,
	}

	if err := db.SaveAuth(storedAuth); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}

	fmt.Println()
	fmt.Printf("Signed in as %s\n", email)
	return nil
}
