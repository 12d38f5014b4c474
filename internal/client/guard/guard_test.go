package guard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivmolchanov/goshop/internal/client/api"
	"github.com/ivmolchanov/goshop/internal/models"
	pkgapi "github.com/ivmolchanov/goshop/pkg/api"
)

type mockSession struct {
	mu      sync.Mutex
	token   string
	cleared bool
}

func (m *mockSession) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *mockSession) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.cleared = true
	return nil
}

func (m *mockSession) wasCleared() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cleared
}

type mockVerifier struct {
	mu   sync.Mutex
	resp *pkgapi.VerifyResponse
	err  error

	// block, если не nil, задерживает ответ до закрытия канала
	block chan struct{}

	verifyCalls int
	adminCalls  int
}

// set атомарно меняет сценарий ответа; уже начатые вызовы
// сохраняют значения, захваченные на входе
func (m *mockVerifier) set(resp *pkgapi.VerifyResponse, err error, block chan struct{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resp = resp
	m.err = err
	m.block = block
}

func (m *mockVerifier) Verify(ctx context.Context) (*pkgapi.VerifyResponse, error) {
	m.mu.Lock()
	m.verifyCalls++
	m.mu.Unlock()
	return m.respond(ctx)
}

func (m *mockVerifier) VerifyAdmin(ctx context.Context) (*pkgapi.VerifyResponse, error) {
	m.mu.Lock()
	m.adminCalls++
	m.mu.Unlock()
	return m.respond(ctx)
}

func (m *mockVerifier) respond(ctx context.Context) (*pkgapi.VerifyResponse, error) {
	m.mu.Lock()
	resp, err, block := m.resp, m.err, m.block
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (m *mockVerifier) calls() (verify, admin int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.verifyCalls, m.adminCalls
}

func userResponse(role string) *pkgapi.VerifyResponse {
	return &pkgapi.VerifyResponse{
		User: pkgapi.UserPayload{
			ID:    "u1",
			Name:  "Test User",
			Email: "user@example.com",
			Role:  role,
		},
	}
}

func TestGuard_InitialStateChecking(t *testing.T) {
	g := New(&mockSession{}, &mockVerifier{}, models.RoleUser)
	assert.Equal(t, StateChecking, g.State())
}

func TestGuard_NoToken(t *testing.T) {
	session := &mockSession{}
	verifier := &mockVerifier{}
	g := New(session, verifier, models.RoleUser)

	state := g.Check(context.Background())

	assert.Equal(t, StateUnauthorized, state)
	assert.Equal(t, StateUnauthorized, g.State())

	// Без токена на сервер не ходим
	verify, admin := verifier.calls()
	assert.Zero(t, verify)
	assert.Zero(t, admin)
}

func TestGuard_ValidToken(t *testing.T) {
	session := &mockSession{token: "good-token"}
	verifier := &mockVerifier{resp: userResponse("user")}
	g := New(session, verifier, models.RoleUser)

	state := g.Check(context.Background())

	assert.Equal(t, StateAuthorized, state)
	assert.NoError(t, g.LastErr())
	assert.False(t, session.wasCleared())
}

func TestGuard_AdminRouteUsesAdminEndpoint(t *testing.T) {
	session := &mockSession{token: "admin-token"}
	verifier := &mockVerifier{resp: userResponse("admin")}
	g := New(session, verifier, models.RoleAdmin)

	state := g.Check(context.Background())

	require.Equal(t, StateAuthorized, state)
	verify, admin := verifier.calls()
	assert.Zero(t, verify)
	assert.Equal(t, 1, admin)
}

func TestGuard_UnauthenticatedClearsSession(t *testing.T) {
	session := &mockSession{token: "expired-token"}
	verifier := &mockVerifier{err: api.ErrUnauthenticated}
	g := New(session, verifier, models.RoleUser)

	state := g.Check(context.Background())

	assert.Equal(t, StateUnauthorized, state)
	assert.ErrorIs(t, g.LastErr(), api.ErrUnauthenticated)
	// Мертвый токен вычищается: дальше поведение как у чистой сессии
	assert.True(t, session.wasCleared())
}

func TestGuard_PermissionDeniedKeepsSession(t *testing.T) {
	session := &mockSession{token: "user-token"}
	verifier := &mockVerifier{err: api.ErrPermissionDenied}
	g := New(session, verifier, models.RoleAdmin)

	state := g.Check(context.Background())

	assert.Equal(t, StateUnauthorized, state)
	assert.ErrorIs(t, g.LastErr(), api.ErrPermissionDenied)
	// Аутентификация валидна, identity остается
	assert.False(t, session.wasCleared())
	assert.Equal(t, "user-token", session.Token())
}

func TestGuard_NetworkErrorFailsClosed(t *testing.T) {
	session := &mockSession{token: "token"}
	netErr := errors.New("dial tcp: connection refused")
	verifier := &mockVerifier{err: netErr}
	g := New(session, verifier, models.RoleUser)

	state := g.Check(context.Background())

	assert.Equal(t, StateUnauthorized, state)
	assert.ErrorIs(t, g.LastErr(), netErr)
	assert.False(t, session.wasCleared())
}

func TestGuard_RoleCheckedLocally(t *testing.T) {
	// Сервер ответил успехом, но роль в ответе не дотягивает до
	// требуемой — guard применяет тот же предикат сам
	session := &mockSession{token: "token"}
	verifier := &mockVerifier{resp: userResponse("user")}
	g := New(session, verifier, models.RoleAdmin)

	state := g.Check(context.Background())

	assert.Equal(t, StateUnauthorized, state)
	assert.False(t, session.wasCleared())
}

func TestGuard_CanceledContextDiscardsResult(t *testing.T) {
	session := &mockSession{token: "token"}
	verifier := &mockVerifier{block: make(chan struct{})}
	g := New(session, verifier, models.RoleUser)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan State, 1)
	go func() {
		done <- g.Check(ctx)
	}()

	// Проверка висит на сервере; отменяем — размонтирование маршрута
	cancel()

	select {
	case st := <-done:
		assert.Equal(t, StateChecking, st)
	case <-time.After(time.Second):
		t.Fatal("Check did not return after cancel")
	}

	// Результат отброшен, состояние не изменилось
	assert.Equal(t, StateChecking, g.State())

	// Свежая проверка работает как обычно
	verifier.set(userResponse("user"), nil, nil)
	assert.Equal(t, StateAuthorized, g.Check(context.Background()))
}

func TestGuard_RestartSupersedesInflightCheck(t *testing.T) {
	session := &mockSession{token: "token"}

	release := make(chan struct{})
	slow := &mockVerifier{block: release, err: api.ErrUnauthenticated}
	g := New(session, slow, models.RoleUser)

	first := make(chan State, 1)
	go func() {
		first <- g.Check(context.Background())
	}()

	// Даем первой проверке дойти до round-trip
	require.Eventually(t, func() bool {
		v, _ := slow.calls()
		return v == 1
	}, time.Second, 5*time.Millisecond)

	// Повторный вход в маршрут перезапускает проверку; вторая
	// завершается успехом раньше первой
	slow.set(userResponse("user"), nil, nil)
	assert.Equal(t, StateAuthorized, g.Check(context.Background()))

	// Первая проверка доезжает с отказом, но ее поколение устарело
	close(release)
	select {
	case st := <-first:
		assert.Equal(t, StateAuthorized, st)
	case <-time.After(time.Second):
		t.Fatal("first Check did not return")
	}

	assert.Equal(t, StateAuthorized, g.State())
	assert.False(t, session.wasCleared())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "checking", StateChecking.String())
	assert.Equal(t, "authorized", StateAuthorized.String())
	assert.Equal(t, "unauthorized", StateUnauthorized.String())
	assert.Equal(t, "unknown", State(42).String())
}
