package transport

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	accountsusecase "sduiGateway/internal/modules/accounts/application/usecase"
	"sduiGateway/internal/modules/sdui/application/port"
	"sduiGateway/internal/modules/sdui/application/usecase"
	"sduiGateway/internal/modules/sdui/domain"
	"sduiGateway/internal/shared/auth"
	"sduiGateway/internal/shared/httputil"
)

type sectionsResponse struct {
	Sections []domain.Section `json:"sections"`
}

// NewEntrypointSectionsHandler exposes GET /mobile/entrypoint/:key/sections.
// The requesting identity is derived from the optional bearer session token;
// resolution errors map to transport errors here, never inside the core.
func NewEntrypointSectionsHandler(resolveUC *usecase.ResolveEntrypointUseCase, whoamiUC *accountsusecase.WhoamiUseCase) echo.HandlerFunc {
	mapper := httputil.NewErrorMapper().
		WithMapping(domain.ErrInvalidEntrypointKey, http.StatusBadRequest, "invalid entrypoint key").
		WithMapping(port.ErrStorageUnavailable, http.StatusServiceUnavailable, "content storage unavailable").
		WithDefault(http.StatusInternalServerError, "unable to resolve entrypoint sections")

	return func(c echo.Context) error {
		key := c.Param("key")
		token := auth.ExtractToken(c.Request(), "token")

		identity, err := whoamiUC.Execute(c.Request().Context(), token)
		if err != nil {
			slog.Error("sections identity lookup failed", slog.String("key", key), slog.Any("error", err))
			return echo.NewHTTPError(http.StatusServiceUnavailable, "session storage unavailable")
		}

		sections, err := resolveUC.Execute(c.Request().Context(), identity, key)
		if err != nil {
			info := mapper.Map(err)
			if info.Status >= http.StatusInternalServerError {
				slog.Error("sections resolution failed", slog.String("key", key), slog.Any("error", err))
			}
			return echo.NewHTTPError(info.Status, info.Message)
		}

		if sections == nil {
			sections = []domain.Section{}
		}
		return c.JSON(http.StatusOK, sectionsResponse{Sections: sections})
	}
}

// NewComponentSchemaHandler exposes GET /sdui/schema: the component union as a
// sum of named object shapes for client-side codegen.
func NewComponentSchemaHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, domain.DescribeSchema())
	}
}
