package cli

import (
	"context"
	"fmt"

	"github.com/ivmolchanov/goshop/internal/client/storage"
	"github.com/ivmolchanov/goshop/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	fmt.Println("=== Login ===")
	fmt.Println()

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Println()
	fmt.Println("Authenticating...")

	result, err := c.apiClient.Login(ctx, api.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	user := result.User
	if err := c.session.Set(ctx, storage.Identity{User: &user, Token: result.Token}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Login successful!")
	fmt.Printf("Name: %s\n", result.User.Name)
	fmt.Printf("Role: %s\n", result.User.Role)
	fmt.Printf("Access token expires in: %d seconds\n", result.ExpiresIn)

	return nil
}
