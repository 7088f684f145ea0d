//go:build pact
// +build pact

package provider_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	pacttest "github.com/mohamedsham20017/ecommerce-website/test/pact"

	catalogmemory "github.com/mohamedsham20017/ecommerce-website/internal/domains/catalog/adapters/memory"
	catalogapp "github.com/mohamedsham20017/ecommerce-website/internal/domains/catalog/application"
	ordersmemory "github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/adapters/memory"
	ordersapp "github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/application"
	ordersdomain "github.com/mohamedsham20017/ecommerce-website/internal/domains/orders/domain"
	usersmemory "github.com/mohamedsham20017/ecommerce-website/internal/domains/users/adapters/memory"
	usersapp "github.com/mohamedsham20017/ecommerce-website/internal/domains/users/application"
	"github.com/mohamedsham20017/ecommerce-website/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestStorefrontProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	verifier := pactprovider.NewVerifier()
	stateHandlers := models.StateHandlers{
		pacttest.StateSessionActive: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.seedSession(t)
			}
			return nil, nil
		},
		pacttest.StateOrderExists: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			if setup {
				app.seedSession(t)
				app.seedOrder(t)
			}
			return nil, nil
		},
		pacttest.StateAnonymous: func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
			app.reset(t)
			return nil, nil
		},
	}

	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers:   stateHandlers,
	})
	require.NoError(t, err)
}

type contractProviderApp struct {
	orders   *ordersmemory.Repository
	sessions *usersmemory.SessionStore
	users    *usersapp.Service
	server   *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	ordersRepo := ordersmemory.NewRepository()
	sessions := usersmemory.NewSessionStore(time.Hour)
	usersSvc := usersapp.NewService(usersmemory.NewRepository(), sessions)

	router, err := web.NewRouter(web.RouterConfig{
		Users:       usersSvc,
		Catalog:     catalogapp.NewService(catalogmemory.NewRepository()),
		Orders:      ordersapp.NewService(ordersRepo),
		Idempotency: ordersmemory.NewIdempotencyStore(),
		SessionTTL:  time.Hour,
	})
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{
		orders:   ordersRepo,
		sessions: sessions,
		users:    usersSvc,
		server:   server,
	}
}

func (a *contractProviderApp) reset(t testing.TB) {
	t.Helper()
	ctx := context.Background()
	_, err := a.orders.DeleteOlderThan(ctx, time.Now().Add(24*time.Hour))
	require.NoError(t, err)
	require.NoError(t, a.sessions.Delete(ctx, pacttest.SessionToken))
}

func (a *contractProviderApp) seedSession(t testing.TB) {
	t.Helper()
	ctx := context.Background()
	if _, err := a.users.Register(ctx, pacttest.OwnerUsername, "Pact User", pacttest.OwnerEmail, "pact-pass"); err != nil {
		// The user survives reset; only duplicate registration is expected here.
		require.ErrorContains(t, err, "already registered")
	}
	require.NoError(t, a.sessions.Save(ctx, pacttest.SessionToken, pacttest.OwnerUsername))
}

func (a *contractProviderApp) seedOrder(t testing.TB) {
	t.Helper()
	date, err := time.Parse(ordersapp.DateLayout, pacttest.OrderDate)
	require.NoError(t, err)
	order, err := ordersdomain.NewOrder(
		pacttest.OwnerUsername,
		pacttest.OwnerEmail,
		date,
		ordersdomain.Slot10AM,
		ordersdomain.LocationColombo,
		ordersdomain.ProductPhone,
		2,
		"leave at the gate",
		time.Now(),
	)
	require.NoError(t, err)
	_, err = a.orders.Save(context.Background(), order)
	require.NoError(t, err)
}
