package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentgrid/talentgrid-server/internal/service"
	"github.com/talentgrid/talentgrid-server/internal/store"
	"github.com/talentgrid/talentgrid-server/models"
)

func TestRegister_Success(t *testing.T) {
	deps := &testDeps{
		auth: &mockAuthService{
			registerUser: func(ctx context.Context, user models.User) (models.User, error) {
				user.UserID = 1
				user.Role = models.RoleJobSeeker
				return user, nil
			},
			createToken: func(ctx context.Context, user models.User) (models.Token, error) {
				return models.Token{SignedString: "signed-jwt", UserID: user.UserID}, nil
			},
		},
		health:    &mockHealthService{},
		users:     &mockUserRepository{},
		resources: &mockResourceRepository{},
	}
	router := newTestHandler(t, deps).Init()

	body := strings.NewReader(`{"email":" ada@example.com ","name":"<b>Ada</b>","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-jwt", rec.Header().Get("Authorization"))

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "signed-jwt", data["token"])
}

func TestRegister_SanitizesInput(t *testing.T) {
	var received models.User
	deps := &testDeps{
		auth: &mockAuthService{
			registerUser: func(ctx context.Context, user models.User) (models.User, error) {
				received = user
				return user, nil
			},
			createToken: func(ctx context.Context, user models.User) (models.Token, error) {
				return models.Token{SignedString: "signed-jwt"}, nil
			},
		},
		health:    &mockHealthService{},
		users:     &mockUserRepository{},
		resources: &mockResourceRepository{},
	}
	router := newTestHandler(t, deps).Init()

	body := strings.NewReader(`{"email":"  ada@example.com ","name":"<script>x</script>Ada","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ada@example.com", received.Email)
	assert.Equal(t, "Ada", received.Name)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	deps := &testDeps{
		auth: &mockAuthService{
			registerUser: func(ctx context.Context, user models.User) (models.User, error) {
				return models.User{}, store.ErrEmailAlreadyExists
			},
		},
		health:    &mockHealthService{},
		users:     &mockUserRepository{},
		resources: &mockResourceRepository{},
	}
	router := newTestHandler(t, deps).Init()

	body := strings.NewReader(`{"email":"dup@example.com","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, store.ErrEmailAlreadyExists.Error(), resp.Error)
}

func TestRegister_InvalidJSON(t *testing.T) {
	deps := &testDeps{auth: &mockAuthService{}, health: &mockHealthService{},
		users: &mockUserRepository{}, resources: &mockResourceRepository{}}
	router := newTestHandler(t, deps).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, errInvalidJSONBody.Error(), resp.Error)
}

func TestLogin_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "unknown email", err: store.ErrNoUserWasFound},
		{name: "wrong password", err: service.ErrWrongPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := &testDeps{
				auth: &mockAuthService{
					login: func(ctx context.Context, user models.User) (models.User, error) {
						return models.User{}, tt.err
					},
				},
				health:    &mockHealthService{},
				users:     &mockUserRepository{},
				resources: &mockResourceRepository{},
			}
			router := newTestHandler(t, deps).Init()

			body := strings.NewReader(`{"email":"ada@example.com","password":"nope"}`)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			resp := decodeResponse(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, "invalid email/password", resp.Error)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	deps := &testDeps{
		auth: &mockAuthService{
			login: func(ctx context.Context, user models.User) (models.User, error) {
				return models.User{UserID: 42, Email: user.Email, Role: models.RoleHiringManager, OrgID: 7}, nil
			},
			createToken: func(ctx context.Context, user models.User) (models.Token, error) {
				return models.Token{SignedString: "signed-jwt", UserID: user.UserID}, nil
			},
		},
		health:    &mockHealthService{},
		users:     &mockUserRepository{},
		resources: &mockResourceRepository{},
	}
	router := newTestHandler(t, deps).Init()

	body := strings.NewReader(`{"email":"ada@example.com","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-jwt", rec.Header().Get("Authorization"))
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}
