package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	accountsusecase "sduiGateway/internal/modules/accounts/application/usecase"
	accountsdomain "sduiGateway/internal/modules/accounts/domain"
	accountsinfra "sduiGateway/internal/modules/accounts/infrastructure"
	"sduiGateway/internal/modules/sdui/application/port"
	"sduiGateway/internal/modules/sdui/application/usecase"
	sduidomain "sduiGateway/internal/modules/sdui/domain"
)

type stubFetcher struct {
	records []sduidomain.RawRecord
	err     error
}

func (s *stubFetcher) FetchSectionRecords(context.Context, accountsdomain.Identity, string) ([]sduidomain.RawRecord, error) {
	return s.records, s.err
}

func requestSections(t *testing.T, handler echo.HandlerFunc, key, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/mobile/entrypoint/key/sections", nil)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/mobile/entrypoint/:key/sections")
	c.SetParamNames("key")
	c.SetParamValues(key)
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestEntrypointSectionsHandlerFiltersByIdentity(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{records: []sduidomain.RawRecord{
		{ID: "a", Tag: "SDUIDescriptionComponent", Content: json.RawMessage(`{"text":"members only"}`), Visibility: sduidomain.VisibilityAuthorizedOnly},
		{ID: "b", Tag: "SDUIDescriptionComponent", Content: json.RawMessage(`{"text":"hello"}`), Visibility: sduidomain.VisibilityPublic},
	}}
	sessions := accountsinfra.NewSessionMemoryStore()
	session := accountsdomain.Session{ID: "s1", UserID: "user-1", Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}
	if err := sessions.Create(context.Background(), session); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	handler := NewEntrypointSectionsHandler(
		usecase.NewResolveEntrypointUseCase(fetcher, nil),
		accountsusecase.NewWhoamiUseCase(sessions),
	)

	rec := requestSections(t, handler, "home", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("anonymous status = %d, body %s", rec.Code, rec.Body)
	}
	var resp struct {
		Sections []json.RawMessage `json:"sections"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Sections) != 1 {
		t.Fatalf("anonymous should see 1 section, got %d", len(resp.Sections))
	}

	rec = requestSections(t, handler, "home", "tok")
	if rec.Code != http.StatusOK {
		t.Fatalf("authorized status = %d, body %s", rec.Code, rec.Body)
	}
	resp.Sections = nil
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Sections) != 2 {
		t.Fatalf("authorized should see 2 sections, got %d", len(resp.Sections))
	}
}

func TestEntrypointSectionsHandlerEmptyEntrypoint(t *testing.T) {
	t.Parallel()

	handler := NewEntrypointSectionsHandler(
		usecase.NewResolveEntrypointUseCase(&stubFetcher{}, nil),
		accountsusecase.NewWhoamiUseCase(accountsinfra.NewSessionMemoryStore()),
	)

	rec := requestSections(t, handler, "missing", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	// A missing entrypoint is an empty array in the payload, never null.
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(resp["sections"]) != "[]" {
		t.Fatalf("sections = %s, want []", resp["sections"])
	}
}

func TestEntrypointSectionsHandlerErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		fetcher *stubFetcher
		key     string
		status  int
	}{
		{"blank key", &stubFetcher{}, "   ", http.StatusBadRequest},
		{"storage down", &stubFetcher{err: fmt.Errorf("%w: dial", port.ErrStorageUnavailable)}, "home", http.StatusServiceUnavailable},
		{
			"decode failure",
			&stubFetcher{records: []sduidomain.RawRecord{{ID: "a", Tag: "SDUIUnknown", Content: json.RawMessage(`{}`)}}},
			"home",
			http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			handler := NewEntrypointSectionsHandler(
				usecase.NewResolveEntrypointUseCase(tc.fetcher, nil),
				accountsusecase.NewWhoamiUseCase(accountsinfra.NewSessionMemoryStore()),
			)
			rec := requestSections(t, handler, tc.key, "")
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.status, rec.Body)
			}
		})
	}
}

func TestComponentSchemaHandler(t *testing.T) {
	t.Parallel()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/sdui/schema", nil)
	rec := httptest.NewRecorder()
	if err := NewComponentSchemaHandler()(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var schema struct {
		Name     string `json:"name"`
		Variants []struct {
			Name string `json:"name"`
		} `json:"variants"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &schema); err != nil {
		t.Fatalf("decode schema: %v", err)
	}
	if schema.Name != "SDUIComponent" {
		t.Fatalf("schema name = %q", schema.Name)
	}
	if len(schema.Variants) != len(sduidomain.ComponentTags()) {
		t.Fatalf("schema lists %d variants, registry has %d", len(schema.Variants), len(sduidomain.ComponentTags()))
	}
}
