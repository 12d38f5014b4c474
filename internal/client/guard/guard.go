// Package guard реализует клиентскую защиту маршрутов: решает, можно ли
// показывать пользователю защищенный экран, и куда его отправить, если
// нельзя.
//
// Guard — это UX, а не безопасность: сервер независимо перепроверяет токен
// и роль на каждом защищенном запросе. Guard лишь избавляет пользователя
// от экранов, которые сервер все равно не отдаст.
package guard

import (
	"context"
	"errors"
	"sync"

	"github.com/ivmolchanov/goshop/internal/client/api"
	"github.com/ivmolchanov/goshop/internal/models"
	pkgapi "github.com/ivmolchanov/goshop/pkg/api"
)

// State состояние guard'а
type State int

const (
	// StateChecking — проверка идет, показывать можно только заглушку
	StateChecking State = iota
	// StateAuthorized — доступ разрешен, можно рендерить защищенный контент
	StateAuthorized
	// StateUnauthorized — доступ запрещен, редирект на логин
	StateUnauthorized
)

// String возвращает читаемое имя состояния
func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthorized:
		return "authorized"
	case StateUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Verifier выполняет серверную проверку токена
type Verifier interface {
	Verify(ctx context.Context) (*pkgapi.VerifyResponse, error)
	VerifyAdmin(ctx context.Context) (*pkgapi.VerifyResponse, error)
}

// AuthState — срез Session, нужный guard'у: прочитать токен
// и сбросить identity при force logout
type AuthState interface {
	Token() string
	Clear(ctx context.Context) error
}

// Guard защищает группу маршрутов с одним требованием к роли.
// Каждый guard владеет собственным состоянием; между guard'ами ничего
// не разделяется, кроме read-only снапшота Session.
type Guard struct {
	mu       sync.Mutex
	session  AuthState
	verifier Verifier
	required models.Role
	state    State
	lastErr  error
	gen      uint64
}

// New создает guard в состоянии checking
func New(session AuthState, verifier Verifier, required models.Role) *Guard {
	return &Guard{
		session:  session,
		verifier: verifier,
		required: required,
		state:    StateChecking,
	}
}

// State возвращает текущее состояние guard'а
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// LastErr возвращает ошибку последней проверки (для диагностики).
// Сетевая ошибка и явный отказ сервера дают одинаковый unauthorized,
// но различимы здесь.
func (g *Guard) LastErr() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastErr
}

// Check выполняет полную проверку: токен в Session → серверный round-trip →
// предикат роли. Запускается на каждом входе в защищенный маршрут, потому
// что identity могла быть сброшена с момента прошлой проверки.
//
// Повторный Check перезапускает проверку: результат предыдущей, если она
// еще в полете, будет отброшен (поколение не совпадет). Отмена контекста
// тоже отбрасывает результат, не трогая состояние guard'а.
func (g *Guard) Check(ctx context.Context) State {
	g.mu.Lock()
	g.gen++
	gen := g.gen
	g.state = StateChecking
	g.lastErr = nil
	g.mu.Unlock()

	// Без токена нет смысла ходить на сервер
	token := g.session.Token()
	if token == "" {
		return g.apply(ctx, gen, StateUnauthorized, nil, false)
	}

	resp, err := g.roundTrip(ctx)

	switch {
	case err == nil:
		// Сервер подтвердил аутентификацию; роль проверяем тем же
		// предикатом, что и серверный middleware
		if !models.Role(resp.User.Role).Satisfies(g.required) {
			return g.apply(ctx, gen, StateUnauthorized, nil, false)
		}
		return g.apply(ctx, gen, StateAuthorized, nil, false)

	case errors.Is(err, api.ErrUnauthenticated):
		// Токен мертв: сбрасываем identity, дальше как с чистого листа
		return g.apply(ctx, gen, StateUnauthorized, err, true)

	case errors.Is(err, api.ErrPermissionDenied):
		// Аутентификация в порядке, не хватает роли.
		// Identity НЕ сбрасывается.
		return g.apply(ctx, gen, StateUnauthorized, err, false)

	default:
		// Сетевая ошибка: fail closed
		return g.apply(ctx, gen, StateUnauthorized, err, false)
	}
}

// roundTrip выбирает verify-эндпоинт по требуемой роли
func (g *Guard) roundTrip(ctx context.Context) (*pkgapi.VerifyResponse, error) {
	if g.required == models.RoleAdmin {
		return g.verifier.VerifyAdmin(ctx)
	}
	return g.verifier.Verify(ctx)
}

// apply записывает результат проверки, если он еще актуален.
// Устаревшее поколение или отмененный контекст оставляют состояние
// нетронутым: поздний результат не должен перетирать свежий.
func (g *Guard) apply(ctx context.Context, gen uint64, state State, err error, clearIdentity bool) State {
	if ctx.Err() != nil {
		g.mu.Lock()
		defer g.mu.Unlock()
		return g.state
	}

	g.mu.Lock()
	if g.gen != gen {
		current := g.state
		g.mu.Unlock()
		return current
	}
	g.state = state
	g.lastErr = err
	g.mu.Unlock()

	if clearIdentity {
		_ = g.session.Clear(ctx)
	}

	return state
}
