package cli

import (
	"context"
	"fmt"

	"github.com/ivmolchanov/goshop/internal/client/storage"
	"github.com/ivmolchanov/goshop/internal/validation"
	"github.com/ivmolchanov/goshop/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	fmt.Println("=== Register ===")
	fmt.Println()

	name, err := readInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if err := validation.ValidateName(name); err != nil {
		return err
	}

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	fmt.Println()
	fmt.Println("Registering...")

	result, err := c.apiClient.Register(ctx, api.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	// Регистрация сразу дает сессию: токен и пользователя сохраняем локально
	user := result.User
	if err := c.session.Set(ctx, storage.Identity{User: &user, Token: result.Token}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Registration successful!")
	fmt.Printf("Email: %s\n", result.User.Email)
	fmt.Printf("Role: %s\n", result.User.Role)

	return nil
}
