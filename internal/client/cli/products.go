package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ivmolchanov/goshop/internal/client/storage"
)

func (c *Cli) runProducts(ctx context.Context) error {
	fmt.Println("=== Catalog ===")
	fmt.Println()

	resp, err := c.apiClient.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	if len(resp.Products) == 0 {
		fmt.Println("The catalog is empty.")
		return nil
	}

	fmt.Printf("Found %d product(s):\n", len(resp.Products))
	fmt.Println()

	for i, p := range resp.Products {
		fmt.Printf("%d. %s — %s\n", i+1, p.Title, formatPrice(p.PriceCents))
		fmt.Printf("   ID:    %s\n", p.ID)
		fmt.Printf("   Stock: %d\n", p.Stock)
		fmt.Println()
	}

	fmt.Println("Use 'goshop product <id>' to view full details.")

	return nil
}

func (c *Cli) runProduct(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing product id. Usage: goshop product <id>")
	}

	p, err := c.apiClient.GetProduct(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}

	fmt.Printf("=== %s ===\n", p.Title)
	fmt.Println()
	fmt.Printf("ID:    %s\n", p.ID)
	fmt.Printf("Price: %s\n", formatPrice(p.PriceCents))
	fmt.Printf("Stock: %d\n", p.Stock)
	if p.Description != "" {
		fmt.Println()
		fmt.Println(p.Description)
	}

	return nil
}

func (c *Cli) runCart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing cart subcommand. Usage: goshop cart <add|show|clear>")
	}

	switch args[0] {
	case "add":
		return c.runCartAdd(ctx, args[1:])
	case "show":
		return c.runCartShow(ctx)
	case "clear":
		return c.runCartClear(ctx)
	default:
		return fmt.Errorf("unknown cart subcommand: %s. Use: add, show, or clear", args[0])
	}
}

func (c *Cli) runCartAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing product id. Usage: goshop cart add <id> [quantity]")
	}

	quantity := int64(1)
	if len(args) > 1 {
		q, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil || q <= 0 {
			return fmt.Errorf("invalid quantity: %s", args[1])
		}
		quantity = q
	}

	// Цену и название фиксируем на момент добавления
	p, err := c.apiClient.GetProduct(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}

	item := storage.CartItem{
		ProductID:  p.ID,
		Title:      p.Title,
		PriceCents: p.PriceCents,
		Quantity:   quantity,
	}
	if err := c.cart.AddItem(ctx, item); err != nil {
		return fmt.Errorf("failed to add to cart: %w", err)
	}

	fmt.Printf("✓ Added %d x %s to cart\n", quantity, p.Title)

	return nil
}

func (c *Cli) runCartShow(ctx context.Context) error {
	fmt.Println("=== Cart ===")
	fmt.Println()

	items, err := c.cart.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to read cart: %w", err)
	}

	if len(items) == 0 {
		fmt.Println("Your cart is empty.")
		fmt.Println()
		fmt.Println("Use 'goshop cart add <id>' to add products.")
		return nil
	}

	var total int64
	for i, item := range items {
		lineTotal := item.PriceCents * item.Quantity
		total += lineTotal
		fmt.Printf("%d. %s\n", i+1, item.Title)
		fmt.Printf("   %d x %s = %s\n", item.Quantity, formatPrice(item.PriceCents), formatPrice(lineTotal))
		fmt.Println()
	}

	fmt.Printf("Total: %s\n", formatPrice(total))

	return nil
}

func (c *Cli) runCartClear(ctx context.Context) error {
	if err := c.cart.ClearCart(ctx); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	fmt.Println("✓ Cart cleared")
	return nil
}

// formatPrice печатает цену в центах как доллары
func formatPrice(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
