// Package cli реализует интерактивные команды консольного клиента магазина.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/ivmolchanov/goshop/internal/client/api"
	"github.com/ivmolchanov/goshop/internal/client/guard"
	"github.com/ivmolchanov/goshop/internal/client/session"
	"github.com/ivmolchanov/goshop/internal/client/storage"
)

type Cli struct {
	apiClient *api.Client
	session   *session.Session
	cart      storage.CartStore
	navigator *guard.Navigator
}

func New(apiClient *api.Client, sess *session.Session, cart storage.CartStore, navigator *guard.Navigator) *Cli {
	return &Cli{
		apiClient: apiClient,
		session:   sess,
		cart:      cart,
		navigator: navigator,
	}
}

func PrintUsage() {
	fmt.Println("GoShop Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  goshop [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version          Show version information")
	fmt.Println("  --server URL       Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH          Path to local database (default: ~/.goshop/goshop-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                Register new account")
	fmt.Println("  login                   Login to server")
	fmt.Println("  logout                  Logout and clear local session")
	fmt.Println("  status                  Show authentication status")
	fmt.Println("  products                List catalog products")
	fmt.Println("  product <id>            Show product details")
	fmt.Println("  cart add <id> [qty]     Add product to local cart")
	fmt.Println("  cart show               Show local cart")
	fmt.Println("  cart clear              Empty local cart")
	fmt.Println("  dashboard               Open account dashboard (requires login)")
	fmt.Println("  admin-users             List registered users (admin only)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  goshop register")
	fmt.Println("  goshop login")
	fmt.Println("  goshop products")
	fmt.Println("  goshop cart add b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 2")
	fmt.Println("  goshop --server https://shop.example.com admin-users")
}

// readInput читает строку из stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword читает пароль без отображения на экране
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // Переход на новую строку после ввода пароля
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}
