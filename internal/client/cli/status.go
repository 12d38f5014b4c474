package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/ivmolchanov/goshop/internal/client/api"
)

func (c *Cli) runStatus(ctx context.Context) error {
	fmt.Println("=== Authentication Status ===")
	fmt.Println()

	identity := c.session.Identity()
	if identity.IsZero() {
		fmt.Println("Status: Not authenticated")
		fmt.Println()
		fmt.Println("Run 'goshop login' to authenticate.")
		return nil
	}

	fmt.Println("Status: Authenticated (local session)")
	fmt.Printf("Name:  %s\n", identity.User.Name)
	fmt.Printf("Email: %s\n", identity.User.Email)
	fmt.Printf("Role:  %s\n", identity.User.Role)
	fmt.Println()

	// Локальная сессия может быть просрочена: спрашиваем сервер
	resp, err := c.apiClient.Verify(ctx)
	switch {
	case err == nil:
		fmt.Println("✓ Token verified by server")
		if resp.User.Role != identity.User.Role {
			fmt.Printf("Note: server reports role %q\n", resp.User.Role)
		}
	case errors.Is(err, api.ErrUnauthenticated):
		// Мертвый токен сразу вычищаем
		if clearErr := c.session.Clear(ctx); clearErr != nil {
			return fmt.Errorf("failed to clear stale session: %w", clearErr)
		}
		fmt.Println("⚠️  Token has expired or been rejected. Please login again.")
	default:
		fmt.Printf("Warning: could not verify token with server: %v\n", err)
	}

	return nil
}
