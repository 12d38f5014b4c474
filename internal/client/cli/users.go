package cli

import (
	"context"
	"fmt"
)

// runAdminUsers печатает список пользователей магазина. Маршрут
// админский: сначала навигатор подтверждает роль через verify-admin,
// и только потом запрашиваются данные.
func (c *Cli) runAdminUsers(ctx context.Context) error {
	res := c.navigator.Resolve(ctx, "/dashboard/admin/users")
	if res.Path != "/dashboard/admin/users" {
		fmt.Println("Access denied.")
		fmt.Printf("Redirecting to: %s\n", res.Path)
		fmt.Println()
		fmt.Println("This command requires an administrator account.")
		return nil
	}

	resp, err := c.apiClient.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	fmt.Println("=== Registered Users ===")
	fmt.Println()

	if len(resp.Users) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	fmt.Printf("Found %d user(s):\n", len(resp.Users))
	fmt.Println()

	for i, u := range resp.Users {
		fmt.Printf("%d. %s <%s>\n", i+1, u.Name, u.Email)
		fmt.Printf("   ID:   %s\n", u.ID)
		fmt.Printf("   Role: %s\n", u.Role)
		fmt.Println()
	}

	return nil
}
