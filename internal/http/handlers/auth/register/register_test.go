package register_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/goal-tracker/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/goal-tracker/internal/services/auth"
)

// Мок для сервиса регистрации
type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Register(ctx context.Context, email, password, name string) (*auth.Result, error) {
	args := m.Called(ctx, email, password, name)
	if res, ok := args.Get(0).(*auth.Result); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *AuthServiceMock)
		wantStatusCode int
		wantContains   string
	}{
		{
			name: "success",
			body: `{"email":"alice@example.com","password":"secret","name":"Alice"}`,
			mockSetup: func(m *AuthServiceMock) {
				m.On("Register", mock.Anything, "alice@example.com", "secret", "Alice").
					Return(&auth.Result{
						UID:   "uid-1",
						Name:  "Alice",
						Email: "alice@example.com",
						Token: "jwt-token",
					}, nil).Once()
			},
			wantStatusCode: http.StatusCreated,
			wantContains:   "User registered successfully",
		},
		{
			name:           "invalid json body",
			body:           `{"email":`,
			mockSetup:      func(m *AuthServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantContains:   "invalid request body",
		},
		{
			name:           "missing required fields",
			body:           `{"email":"alice@example.com"}`,
			mockSetup:      func(m *AuthServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantContains:   "required",
		},
		{
			name:           "invalid email format",
			body:           `{"email":"not-an-email","password":"secret","name":"Alice"}`,
			mockSetup:      func(m *AuthServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantContains:   "email",
		},
		{
			name: "email already taken",
			body: `{"email":"alice@example.com","password":"secret","name":"Alice"}`,
			mockSetup: func(m *AuthServiceMock) {
				m.On("Register", mock.Anything, "alice@example.com", "secret", "Alice").
					Return(nil, auth.ErrEmailTaken).Once()
			},
			wantStatusCode: http.StatusBadRequest,
			wantContains:   "Email already registered",
		},
		{
			name: "service failure",
			body: `{"email":"alice@example.com","password":"secret","name":"Alice"}`,
			mockSetup: func(m *AuthServiceMock) {
				m.On("Register", mock.Anything, "alice@example.com", "secret", "Alice").
					Return(nil, errors.New("db is down")).Once()
			},
			wantStatusCode: http.StatusInternalServerError,
			wantContains:   "Registration failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(AuthServiceMock)
			tt.mockSetup(serviceMock)

			handler := register.New(newNoopLogger(), serviceMock)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantContains)
			serviceMock.AssertExpectations(t)
		})
	}
}

func TestRegisterHandler_ResponseShape(t *testing.T) {
	serviceMock := new(AuthServiceMock)
	serviceMock.On("Register", mock.Anything, "bob@example.com", "pw", "Bob").
		Return(&auth.Result{
			UID:   "uid-42",
			Name:  "Bob",
			Email: "bob@example.com",
			Token: "signed-token",
		}, nil).Once()

	handler := register.New(newNoopLogger(), serviceMock)

	body := `{"email":"bob@example.com","password":"pw","name":"Bob"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp register.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "uid-42", resp.User.ID)
	assert.Equal(t, "Bob", resp.User.Name)
	assert.Equal(t, "bob@example.com", resp.User.Email)
	assert.Equal(t, "signed-token", resp.Token)
	serviceMock.AssertExpectations(t)
}

func TestRegisterHandler_TrimsInput(t *testing.T) {
	serviceMock := new(AuthServiceMock)
	serviceMock.On("Register", mock.Anything, "carol@example.com", "pw", "Carol").
		Return(&auth.Result{UID: "uid-3", Name: "Carol", Email: "carol@example.com", Token: "t"}, nil).Once()

	handler := register.New(newNoopLogger(), serviceMock)

	body := `{"email":"  carol@example.com  ","password":" pw ","name":" Carol "}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	serviceMock.AssertExpectations(t)
}
