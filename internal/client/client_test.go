package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	apihttp "github.com/spec-kit/lead-dashboard/internal/api/http"
	"github.com/spec-kit/lead-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/lead-dashboard/internal/auth"
	"github.com/spec-kit/lead-dashboard/internal/config"
	"github.com/spec-kit/lead-dashboard/internal/countries"
	"github.com/spec-kit/lead-dashboard/internal/domain"
	"github.com/spec-kit/lead-dashboard/internal/grid"
	"github.com/spec-kit/lead-dashboard/internal/repository"
	"github.com/spec-kit/lead-dashboard/internal/service"
)

func startServer(t *testing.T, requireLogin bool) string {
	t.Helper()
	logger := zap.NewNop()
	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:             "client-secret",
		AccessTokenTTLMinutes: 5,
		BcryptCost:            bcrypt.MinCost,
		AdminEmail:            "admin@example.com",
		AdminPassword:         "correct-horse",
	}}
	authService, err := service.NewAuthService(cfg, nil)
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}
	leadRepo := repository.NewMemoryLeadRepository(repository.SeedLeads(), repository.MemoryLeadOptions{})
	leadService := service.NewLeadService(service.LeadDependencies{LeadRepo: leadRepo})
	directory := countries.NewDirectory(countries.DirectoryOptions{})
	assessmentService := service.NewAssessmentService(service.AssessmentDependencies{
		AssessmentRepo: repository.NewMemoryAssessmentRepository(),
		Directory:      directory,
	})

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	apihttp.RegisterMiddlewares(app, logger, nil, 0)
	apihttp.RegisterRoutes(app, apihttp.RouteConfig{
		Health:         handlers.NewHealthHandler("test", "dev", nil),
		Auth:           handlers.NewAuthHandler(authService),
		Leads:          handlers.NewLeadsHandler(leadService),
		Assessments:    handlers.NewAssessmentsHandler(assessmentService),
		Countries:      handlers.NewCountriesHandler(directory),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), nil),
		RequireLogin:   requireLogin,
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return "http://" + ln.Addr().String()
}

func newClient(baseURL string) *Client {
	return New(config.ClientConfig{APIURL: baseURL + "/", TimeoutSeconds: 5}, nil)
}

func TestListAndUpdateOverHTTP(t *testing.T) {
	c := newClient(startServer(t, false))
	ctx := context.Background()

	leads, err := c.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(leads) != 8 {
		t.Fatalf("expected 8 leads, got %d", len(leads))
	}

	status := domain.LeadStatusReachedOut
	updated, err := c.Update(ctx, "002", domain.LeadPatch{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Bahar Zamir" || updated.Status != domain.LeadStatusReachedOut {
		t.Fatalf("unexpected record %+v", updated)
	}
	if updated.Submitted == leads[1].Submitted {
		t.Fatalf("submitted not refreshed")
	}
}

func TestUpdateUnknownReturnsAPIError(t *testing.T) {
	c := newClient(startServer(t, false))
	name := "Ghost"
	_, err := c.Update(context.Background(), "404", domain.LeadPatch{Name: &name})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != fiber.StatusNotFound || apiErr.Code != "NOT_FOUND" {
		t.Fatalf("unexpected api error %+v", apiErr)
	}
}

func TestLoginRequiredFlow(t *testing.T) {
	c := newClient(startServer(t, true))
	ctx := context.Background()

	_, err := c.List(ctx)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 before login, got %v", err)
	}

	if err := c.Login(ctx, "admin@example.com", "wrong-horse"); err == nil {
		t.Fatalf("expected login failure")
	}
	if err := c.Login(ctx, "admin@example.com", "correct-horse"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := c.List(ctx); err != nil {
		t.Fatalf("list after login: %v", err)
	}
	if err := c.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := c.Logout(ctx); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestCountries(t *testing.T) {
	c := newClient(startServer(t, false))
	opts, err := c.Countries(context.Background())
	if err != nil {
		t.Fatalf("countries: %v", err)
	}
	if len(opts) == 0 || opts[0].Label != opts[0].Value {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestCancelledContextSkipsRequest(t *testing.T) {
	c := New(config.ClientConfig{APIURL: "http://127.0.0.1:1"}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.List(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGridCommitsThroughClient(t *testing.T) {
	c := newClient(startServer(t, false))
	g := grid.New(c, grid.DefaultColumns(countries.NewDirectory(countries.DirectoryOptions{})))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := g.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := g.BeginEdit(0); err != nil {
		t.Fatalf("begin edit: %v", err)
	}
	if err := g.Select(0, grid.ColumnCountry, "Canada"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := g.Done(ctx, 0); err != nil {
		t.Fatalf("done: %v", err)
	}

	row, err := g.Row(0)
	if err != nil {
		t.Fatalf("row: %v", err)
	}
	if row.Country != "Canada" || row.Name != "Jorge Ruiz" {
		t.Fatalf("unexpected row %+v", row)
	}
	if state, _ := g.State(0); state != domain.RowViewing {
		t.Fatalf("expected viewing after commit, got %v", state)
	}

	remote, err := c.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if remote[0] != row {
		t.Fatalf("grid %+v and server %+v diverged", row, remote[0])
	}
}
