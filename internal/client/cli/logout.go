package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	fmt.Println("=== Logout ===")

	// Выход — чисто клиентская операция: сервер токены не отзывает,
	// мы просто забываем свой
	if err := c.session.Clear(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	fmt.Println("✓ Logout successful!")
	fmt.Println("Your local session has been deleted.")

	return nil
}
