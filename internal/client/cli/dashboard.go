package cli

import (
	"context"
	"fmt"
)

// runDashboard открывает личный кабинет. Переход идет через навигатор:
// до подтверждения доступа никакой контент кабинета не печатается.
func (c *Cli) runDashboard(ctx context.Context) error {
	res := c.navigator.Resolve(ctx, "/dashboard")
	if res.Path != "/dashboard" {
		fmt.Println("Access denied.")
		fmt.Printf("Redirecting to: %s\n", res.Path)
		fmt.Println()
		fmt.Println("Run 'goshop login' to authenticate.")
		return nil
	}

	identity := c.session.Identity()

	fmt.Println("=== Dashboard ===")
	fmt.Println()
	fmt.Printf("Welcome back, %s!\n", identity.User.Name)
	fmt.Printf("Email: %s\n", identity.User.Email)
	fmt.Printf("Role:  %s\n", identity.User.Role)

	items, err := c.cart.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to read cart: %w", err)
	}
	fmt.Println()
	fmt.Printf("Cart: %d item(s)\n", len(items))

	return nil
}
