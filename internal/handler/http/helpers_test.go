package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/talentgrid/talentgrid-server/internal/config"
	"github.com/talentgrid/talentgrid-server/internal/logger"
	"github.com/talentgrid/talentgrid-server/internal/schema"
	"github.com/talentgrid/talentgrid-server/internal/service"
	"github.com/talentgrid/talentgrid-server/internal/store"
	"github.com/talentgrid/talentgrid-server/models"
)

// Function-field mocks: each test overrides only the calls it expects, any
// unexpected call panics on the nil function field and fails the test loudly.

type mockAuthService struct {
	registerUser func(ctx context.Context, user models.User) (models.User, error)
	login        func(ctx context.Context, user models.User) (models.User, error)
	createToken  func(ctx context.Context, user models.User) (models.Token, error)
	parseToken   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUser(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.login(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createToken(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseToken(ctx, tokenString)
}

type mockHealthService struct {
	checkDatabase func(ctx context.Context) (time.Time, error)
}

func (m *mockHealthService) CheckDatabase(ctx context.Context) (time.Time, error) {
	return m.checkDatabase(ctx)
}

type mockUserRepository struct {
	createUser      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmail func(ctx context.Context, email string) (models.User, error)
	findUserByID    func(ctx context.Context, id int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUser(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmail(ctx, email)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return m.findUserByID(ctx, id)
}

type mockResourceRepository struct {
	list   func(ctx context.Context, res models.Resource, orgID int64) ([]map[string]any, error)
	get    func(ctx context.Context, res models.Resource, id int64, orgID int64) (map[string]any, error)
	create func(ctx context.Context, res models.Resource, fields map[string]any, orgID int64) (map[string]any, error)
	update func(ctx context.Context, res models.Resource, id int64, fields map[string]any, orgID int64) (map[string]any, error)
	delete func(ctx context.Context, res models.Resource, id int64, orgID int64) error
}

func (m *mockResourceRepository) List(ctx context.Context, res models.Resource, orgID int64) ([]map[string]any, error) {
	return m.list(ctx, res, orgID)
}

func (m *mockResourceRepository) Get(ctx context.Context, res models.Resource, id int64, orgID int64) (map[string]any, error) {
	return m.get(ctx, res, id, orgID)
}

func (m *mockResourceRepository) Create(ctx context.Context, res models.Resource, fields map[string]any, orgID int64) (map[string]any, error) {
	return m.create(ctx, res, fields, orgID)
}

func (m *mockResourceRepository) Update(ctx context.Context, res models.Resource, id int64, fields map[string]any, orgID int64) (map[string]any, error) {
	return m.update(ctx, res, id, fields, orgID)
}

func (m *mockResourceRepository) Delete(ctx context.Context, res models.Resource, id int64, orgID int64) error {
	return m.delete(ctx, res, id, orgID)
}

// testDeps bundles the mocks wired into a handler under test.
type testDeps struct {
	auth      *mockAuthService
	health    *mockHealthService
	users     *mockUserRepository
	resources *mockResourceRepository
	cfg       *config.StructuredConfig
}

func defaultTestConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "talentgrid",
			TokenDuration: time.Hour,
			Environment:   config.EnvDevelopment,
		},
		Server: config.Server{
			HTTPAddress:  ":8000",
			MaxBodyBytes: 1 << 20,
		},
	}
}

// newTestHandler builds a Handler wired to fresh mocks. The schema registry
// is backed by a provider with no DSN under the continue policy, so schema
// initialization degrades silently, mirroring a cold start with an
// unreachable database.
func newTestHandler(t *testing.T, deps *testDeps) *Handler {
	t.Helper()

	if deps.cfg == nil {
		deps.cfg = defaultTestConfig()
	}

	provider := store.NewProvider(config.DB{}, logger.Nop())
	registry := schema.NewRegistry(provider, false, logger.Nop())

	services := &service.Services{
		AuthService:   deps.auth,
		HealthService: deps.health,
	}
	storages := store.Storages{
		UserRepository:     deps.users,
		ResourceRepository: deps.resources,
	}

	return NewHandler(services, storages, registry, deps.cfg, logger.Nop())
}

// authorizeAs configures the mocks so a request carrying
// "Authorization: Bearer valid" authenticates as the given user.
func authorizeAs(deps *testDeps, user models.User) {
	deps.auth.parseToken = func(ctx context.Context, tokenString string) (models.Token, error) {
		if tokenString != "valid" {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		return models.Token{UserID: user.UserID, Role: string(user.Role), OrgID: user.OrgID}, nil
	}
	deps.users.findUserByID = func(ctx context.Context, id int64) (models.User, error) {
		if id != user.UserID {
			return models.User{}, store.ErrNoUserWasFound
		}
		return user, nil
	}
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
