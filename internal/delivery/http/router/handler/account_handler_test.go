package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"museum/internal/delivery/http/middleware"
	"museum/internal/delivery/http/validator"
	"museum/internal/domain/entity"
	domainerrors "museum/internal/domain/errors"
	"museum/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubAccountUsecase lets each test script the usecase outcome.
type stubAccountUsecase struct {
	registerFn func(ctx context.Context, input *usecase.RegisterInput) (*usecase.AccountOutput, error)
	loginFn    func(ctx context.Context, input *usecase.LoginInput) (*usecase.AccountOutput, error)
	listFn     func(ctx context.Context) ([]*entity.Profile, error)
	updateFn   func(ctx context.Context, input *usecase.UpdateAccountInput) (*usecase.AccountOutput, error)
	deleteFn   func(ctx context.Context, username string) error
}

func (s *stubAccountUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AccountOutput, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AccountOutput, error) {
	return s.loginFn(ctx, input)
}

func (s *stubAccountUsecase) ListProfiles(ctx context.Context) ([]*entity.Profile, error) {
	return s.listFn(ctx)
}

func (s *stubAccountUsecase) Update(ctx context.Context, input *usecase.UpdateAccountInput) (*usecase.AccountOutput, error) {
	return s.updateFn(ctx, input)
}

func (s *stubAccountUsecase) Delete(ctx context.Context, username string) error {
	return s.deleteFn(ctx, username)
}

// newAccountTestServer builds an Echo instance with the same validator and
// error handling the real server uses.
func newAccountTestServer(uc usecase.AccountUsecase) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	logger := newDiscardLogger()
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAccountHandler(uc, logger)
	e.POST("/accounts", h.Register)
	e.POST("/accounts/login", h.Login)
	e.GET("/accounts", h.List)
	e.PUT("/accounts/:username", h.Update)
	e.DELETE("/accounts/:username", h.Delete)

	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func sampleOutput(username string) *usecase.AccountOutput {
	return &usecase.AccountOutput{
		Account: usecase.NewAccountView(&entity.Account{
			Username:     username,
			FirstName:    "Ada",
			PasswordHash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		}),
		Profile: &entity.Profile{Username: username},
	}
}

func TestAccountHandler_Register_Success(t *testing.T) {
	uc := &stubAccountUsecase{
		registerFn: func(_ context.Context, input *usecase.RegisterInput) (*usecase.AccountOutput, error) {
			return sampleOutput(input.Username), nil
		},
	}
	e := newAccountTestServer(uc)

	rec := doJSON(e, http.MethodPost, "/accounts", `{"username":"curator","password":"pw","firstName":"Ada"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Account map[string]any  `json:"account"`
			Profile *entity.Profile `json:"profile"`
		} `json:"data"`
		Meta struct {
			RequestID string `json:"request_id"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "curator", envelope.Data.Account["username"])
	assert.Equal(t, "curator", envelope.Data.Profile.Username)
	assert.NotEmpty(t, envelope.Meta.RequestID)

	// The hash must never appear anywhere in the payload.
	assert.NotContains(t, rec.Body.String(), "argon2id")
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestAccountHandler_Register_MissingFields(t *testing.T) {
	e := newAccountTestServer(&stubAccountUsecase{})

	rec := doJSON(e, http.MethodPost, "/accounts", `{"username":"curator"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAccountHandler_Register_UsernameTaken(t *testing.T) {
	uc := &stubAccountUsecase{
		registerFn: func(_ context.Context, _ *usecase.RegisterInput) (*usecase.AccountOutput, error) {
			return nil, domainerrors.ErrUsernameTaken.WrapMessage("registration rejected")
		},
	}
	e := newAccountTestServer(uc)

	rec := doJSON(e, http.MethodPost, "/accounts", `{"username":"curator","password":"pw"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "USERNAME_TAKEN")
	assert.Contains(t, rec.Body.String(), "username already exists")
}

func TestAccountHandler_Login_UniformError(t *testing.T) {
	uc := &stubAccountUsecase{
		loginFn: func(_ context.Context, _ *usecase.LoginInput) (*usecase.AccountOutput, error) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		},
	}
	e := newAccountTestServer(uc)

	rec := doJSON(e, http.MethodPost, "/accounts/login", `{"username":"ghost","password":"pw"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "username or password is wrong")
}

func TestAccountHandler_List(t *testing.T) {
	uc := &stubAccountUsecase{
		listFn: func(_ context.Context) ([]*entity.Profile, error) {
			return []*entity.Profile{{Username: "alpha"}, {Username: "beta"}}, nil
		},
	}
	e := newAccountTestServer(uc)

	rec := doJSON(e, http.MethodGet, "/accounts", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alpha")
	assert.Contains(t, rec.Body.String(), "beta")
}

func TestAccountHandler_Update_NotFound(t *testing.T) {
	uc := &stubAccountUsecase{
		updateFn: func(_ context.Context, _ *usecase.UpdateAccountInput) (*usecase.AccountOutput, error) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account update rejected")
		},
	}
	e := newAccountTestServer(uc)

	rec := doJSON(e, http.MethodPut, "/accounts/ghost", `{"password":"new"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ACCOUNT_NOT_FOUND")
}

func TestAccountHandler_Update_PassesPathUsername(t *testing.T) {
	var got *usecase.UpdateAccountInput
	uc := &stubAccountUsecase{
		updateFn: func(_ context.Context, input *usecase.UpdateAccountInput) (*usecase.AccountOutput, error) {
			got = input

			return sampleOutput("director"), nil
		},
	}
	e := newAccountTestServer(uc)

	rec := doJSON(e, http.MethodPut, "/accounts/curator", `{"username":"director"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "curator", got.Username)
	require.NotNil(t, got.NewUsername)
	assert.Equal(t, "director", *got.NewUsername)
	assert.Nil(t, got.NewPassword)
}

func TestAccountHandler_Delete(t *testing.T) {
	var deleted string
	uc := &stubAccountUsecase{
		deleteFn: func(_ context.Context, username string) error {
			deleted = username

			return nil
		},
	}
	e := newAccountTestServer(uc)

	rec := doJSON(e, http.MethodDelete, "/accounts/curator", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "curator", deleted)
}
