package list_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/goal-tracker/internal/http/handlers/goal/list"
	"github.com/magabrotheeeer/goal-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/goal-tracker/internal/models"
)

// Мок для сервиса целей
type GoalServiceMock struct {
	mock.Mock
}

func (m *GoalServiceMock) List(ctx context.Context, userUID string, limit, offset int) ([]*models.Goal, error) {
	args := m.Called(ctx, userUID, limit, offset)
	if res, ok := args.Get(0).([]*models.Goal); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestListHandler(t *testing.T) {
	goals := []*models.Goal{
		{
			ID:          1,
			Name:        "Read 12 books",
			Description: "One per month",
			TargetDate:  time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
			TargetValue: 12,
		},
		{
			ID:        2,
			Name:      "Run a marathon",
			Completed: true,
		},
	}

	tests := []struct {
		name           string
		url            string
		userUID        string
		mockSetup      func(m *GoalServiceMock)
		wantStatusCode int
		wantContains   string
	}{
		{
			name:    "success with default pagination",
			url:     "/goals",
			userUID: "uid-1",
			mockSetup: func(m *GoalServiceMock) {
				m.On("List", mock.Anything, "uid-1", 10, 0).
					Return(goals, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantContains:   "User goals fetched successfully",
		},
		{
			name:    "explicit limit and offset",
			url:     "/goals?limit=5&offset=20",
			userUID: "uid-1",
			mockSetup: func(m *GoalServiceMock) {
				m.On("List", mock.Anything, "uid-1", 5, 20).
					Return([]*models.Goal{}, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantContains:   `"count":0`,
		},
		{
			name:    "invalid pagination falls back to defaults",
			url:     "/goals?limit=abc&offset=-4",
			userUID: "uid-1",
			mockSetup: func(m *GoalServiceMock) {
				m.On("List", mock.Anything, "uid-1", 10, 0).
					Return(goals, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantContains:   `"count":2`,
		},
		{
			name:           "no user in context",
			url:            "/goals",
			userUID:        "",
			mockSetup:      func(m *GoalServiceMock) {},
			wantStatusCode: http.StatusUnauthorized,
			wantContains:   "Unauthorized",
		},
		{
			name:    "service failure",
			url:     "/goals",
			userUID: "uid-1",
			mockSetup: func(m *GoalServiceMock) {
				m.On("List", mock.Anything, "uid-1", 10, 0).
					Return(nil, errors.New("db is down")).Once()
			},
			wantStatusCode: http.StatusInternalServerError,
			wantContains:   "Fetching user goals failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(GoalServiceMock)
			tt.mockSetup(serviceMock)

			handler := list.New(newNoopLogger(), serviceMock)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.userUID != "" {
				ctx := context.WithValue(req.Context(), middlewarectx.UserUID, tt.userUID)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantContains)
			serviceMock.AssertExpectations(t)
		})
	}
}
