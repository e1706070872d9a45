package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antojoseph2806/PThrive/domain"
	"github.com/antojoseph2806/PThrive/internal/mocks"
)

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func recoveryRouter(svc *mocks.MockRecoveryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRecoveryHandlers(svc)
	router := gin.New()
	router.POST("/auth/recovery/request", h.RequestReset)
	router.POST("/auth/recovery/confirm", h.ConfirmReset)
	return router
}

func TestRecoveryHandlers_RequestReset(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockRecoveryService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "successful request returns masked destination",
			body: RecoveryRequestRequest{Identifier: "user@example.com"},
			setupMock: func(svc *mocks.MockRecoveryService) {
				svc.RequestFunc = func(ctx context.Context, identifier string) (*domain.RecoveryTicket, error) {
					return &domain.RecoveryTicket{SubjectID: 7, MaskedPhone: "98****3210", ExpiresIn: 300}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing identifier rejected",
			body:           gin.H{},
			setupMock:      func(svc *mocks.MockRecoveryService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unparseable identifier",
			body: RecoveryRequestRequest{Identifier: "%%%"},
			setupMock: func(svc *mocks.MockRecoveryService) {
				svc.RequestFunc = func(ctx context.Context, identifier string) (*domain.RecoveryTicket, error) {
					return nil, domain.ErrInvalidIdentifier
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Identifier must be an email address or phone number",
		},
		{
			name: "unknown account",
			body: RecoveryRequestRequest{Identifier: "nobody@example.com"},
			setupMock: func(svc *mocks.MockRecoveryService) {
				svc.RequestFunc = func(ctx context.Context, identifier string) (*domain.RecoveryTicket, error) {
					return nil, domain.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "No account matches that identifier",
		},
		{
			name: "account without phone",
			body: RecoveryRequestRequest{Identifier: "nophone@example.com"},
			setupMock: func(svc *mocks.MockRecoveryService) {
				svc.RequestFunc = func(ctx context.Context, identifier string) (*domain.RecoveryTicket, error) {
					return nil, domain.ErrNoContactMethod
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Account has no phone number on file",
		},
		{
			name: "rate limited carries retry hint",
			body: RecoveryRequestRequest{Identifier: "user@example.com"},
			setupMock: func(svc *mocks.MockRecoveryService) {
				svc.RequestFunc = func(ctx context.Context, identifier string) (*domain.RecoveryTicket, error) {
					return nil, &domain.RateLimitedError{RetryAfter: 42 * time.Minute}
				}
			},
			expectedStatus: http.StatusTooManyRequests,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockRecoveryService()
			tt.setupMock(svc)
			router := recoveryRouter(svc)

			w := performJSON(t, router, http.MethodPost, "/auth/recovery/request", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				var resp map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp["error"])
			}
		})
	}
}

func TestRecoveryHandlers_RequestReset_SuccessBody(t *testing.T) {
	svc := mocks.NewMockRecoveryService()
	svc.RequestFunc = func(ctx context.Context, identifier string) (*domain.RecoveryTicket, error) {
		return &domain.RecoveryTicket{SubjectID: 7, MaskedPhone: "98****3210", ExpiresIn: 300}, nil
	}
	router := recoveryRouter(svc)

	w := performJSON(t, router, http.MethodPost, "/auth/recovery/request",
		RecoveryRequestRequest{Identifier: "user@example.com"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"]
	assert.Equal(t, float64(7), data["user_id"])
	assert.Equal(t, float64(300), data["expires_in"])
	assert.Contains(t, data["message"], "98****3210")
}

func TestRecoveryHandlers_RequestReset_RateLimitRetryAfter(t *testing.T) {
	svc := mocks.NewMockRecoveryService()
	svc.RequestFunc = func(ctx context.Context, identifier string) (*domain.RecoveryTicket, error) {
		return nil, &domain.RateLimitedError{RetryAfter: 30*time.Minute + 10*time.Second}
	}
	router := recoveryRouter(svc)

	w := performJSON(t, router, http.MethodPost, "/auth/recovery/request",
		RecoveryRequestRequest{Identifier: "user@example.com"})

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// Rounded up to the next full minute
	assert.Equal(t, float64(31), resp["retry_after_minutes"])
}

func TestRecoveryHandlers_ConfirmReset(t *testing.T) {
	validBody := RecoveryConfirmRequest{
		Identifier:  "user@example.com",
		Code:        "123456",
		NewPassword: "newsecret",
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*mocks.MockRecoveryService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "successful confirm",
			body: validBody,
			setupMock: func(svc *mocks.MockRecoveryService) {
				svc.ConfirmFunc = func(ctx context.Context, identifier, code, newPassword string) error {
					return nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "short password rejected by binding",
			body:           RecoveryConfirmRequest{Identifier: "user@example.com", Code: "123456", NewPassword: "abc"},
			setupMock:      func(svc *mocks.MockRecoveryService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown or consumed code",
			body: validBody,
			setupMock: func(svc *mocks.MockRecoveryService) {
				svc.ConfirmFunc = func(ctx context.Context, identifier, code, newPassword string) error {
					return domain.ErrCodeNotFound
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Recovery code is invalid or has expired",
		},
		{
			name: "expired code",
			body: validBody,
			setupMock: func(svc *mocks.MockRecoveryService) {
				svc.ConfirmFunc = func(ctx context.Context, identifier, code, newPassword string) error {
					return domain.ErrCodeExpired
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Recovery code has expired. Request a new one",
		},
		{
			name: "attempts exhausted",
			body: validBody,
			setupMock: func(svc *mocks.MockRecoveryService) {
				svc.ConfirmFunc = func(ctx context.Context, identifier, code, newPassword string) error {
					return domain.ErrTooManyAttempts
				}
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Too many failed attempts. Request a new code",
		},
		{
			name: "persistence failure",
			body: validBody,
			setupMock: func(svc *mocks.MockRecoveryService) {
				svc.ConfirmFunc = func(ctx context.Context, identifier, code, newPassword string) error {
					return domain.ErrUpdateFailed
				}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to update password. Try again",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockRecoveryService()
			tt.setupMock(svc)
			router := recoveryRouter(svc)

			w := performJSON(t, router, http.MethodPost, "/auth/recovery/confirm", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				var resp map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp["error"])
			}
		})
	}
}

func TestRecoveryHandlers_ConfirmReset_MismatchReportsRemaining(t *testing.T) {
	svc := mocks.NewMockRecoveryService()
	svc.ConfirmFunc = func(ctx context.Context, identifier, code, newPassword string) error {
		return &domain.MismatchError{AttemptsRemaining: 2}
	}
	router := recoveryRouter(svc)

	w := performJSON(t, router, http.MethodPost, "/auth/recovery/confirm", RecoveryConfirmRequest{
		Identifier:  "user@example.com",
		Code:        "000000",
		NewPassword: "newsecret",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Incorrect recovery code", resp["error"])
	assert.Equal(t, float64(2), resp["attempts_remaining"])
}
