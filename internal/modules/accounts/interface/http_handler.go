package transport

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"sduiGateway/internal/modules/accounts/application/port"
	"sduiGateway/internal/modules/accounts/application/usecase"
	"sduiGateway/internal/shared/auth"
)

type authorizeRequest struct {
	IdentityToken string `json:"identityToken"`
}

type authorizePayload struct {
	Success bool `json:"success"`
	// SessionToken must be sent with every request that requires auth.
	// Null when the authorization was not successful.
	SessionToken *string `json:"sessionToken"`
}

type deauthorizeRequest struct {
	SessionToken string `json:"sessionToken"`
}

type deauthorizePayload struct {
	Success bool `json:"success"`
}

type whoamiPayload struct {
	ID *string `json:"id"`
	// HumanReadableType should be used only for testing purposes. The format
	// is not guaranteed and can change in the future completely.
	HumanReadableType string `json:"humanReadableType"`
}

// NewAuthorizeHandler exposes POST /mobile/authorize. A rejected identity
// token yields success=false rather than a transport error, matching what the
// mobile clients already handle.
func NewAuthorizeHandler(authorizeUC *usecase.AuthorizeUseCase) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req authorizeRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}

		session, err := authorizeUC.Execute(c.Request().Context(), req.IdentityToken)
		switch {
		case errors.Is(err, port.ErrInvalidIdentityToken):
			return c.JSON(http.StatusOK, authorizePayload{Success: false})
		case err != nil:
			slog.Error("authorize failed", slog.Any("error", err))
			return echo.NewHTTPError(http.StatusServiceUnavailable, "unable to authorize")
		}

		token := session.Token
		return c.JSON(http.StatusOK, authorizePayload{Success: true, SessionToken: &token})
	}
}

// NewDeauthorizeHandler exposes POST /mobile/deauthorize.
func NewDeauthorizeHandler(deauthorizeUC *usecase.DeauthorizeUseCase) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req deauthorizeRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		token := req.SessionToken
		if token == "" {
			token = auth.ExtractBearerToken(c.Request())
		}
		err := deauthorizeUC.Execute(c.Request().Context(), token)
		return c.JSON(http.StatusOK, deauthorizePayload{Success: err == nil})
	}
}

// NewWhoamiHandler exposes GET /mobile/whoami: information about the current
// user, which can be authorized, anonymous, or unauthorized-but-identified.
func NewWhoamiHandler(whoamiUC *usecase.WhoamiUseCase) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := whoamiUC.Execute(c.Request().Context(), auth.ExtractBearerToken(c.Request()))
		if err != nil {
			slog.Error("whoami failed", slog.Any("error", err))
			return echo.NewHTTPError(http.StatusServiceUnavailable, "session storage unavailable")
		}

		payload := whoamiPayload{HumanReadableType: identity.HumanReadableType()}
		if id := identity.ID(); id != "" {
			payload.ID = &id
		}
		return c.JSON(http.StatusOK, payload)
	}
}
