package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	accounts "sduiGateway/internal/modules/accounts/domain"
	"sduiGateway/internal/modules/sdui/application/port"
	"sduiGateway/internal/modules/sdui/domain"
	"sduiGateway/internal/shared/normalization"
)

// SectionRecordHTTPClient fetches section records from the content service's
// REST API. The response is treated as loose JSON and coerced field by field,
// since the content service evolves independently of this gateway.
type SectionRecordHTTPClient struct {
	rest         *RESTClient
	serviceToken string
	timeout      time.Duration
}

func NewSectionRecordHTTPClient(baseURL, serviceToken string, timeout time.Duration, client *http.Client) *SectionRecordHTTPClient {
	return &SectionRecordHTTPClient{
		rest:         NewRESTClient(baseURL, timeout, client),
		serviceToken: strings.TrimSpace(serviceToken),
		timeout:      timeoutOrDefault(timeout),
	}
}

func (c *SectionRecordHTTPClient) FetchSectionRecords(ctx context.Context, _ accounts.Identity, entrypointKey string) ([]domain.RawRecord, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := "/api/v1/entrypoints/" + url.PathEscape(entrypointKey) + "/sections"
	req, err := c.rest.NewRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", port.ErrStorageUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.serviceToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.serviceToken)
	}

	res, err := c.rest.Do(req)
	if err != nil {
		slog.Error("section records request error", slog.String("key", entrypointKey), slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", port.ErrStorageUnavailable, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		// An entrypoint with no content is valid, not an error.
		return nil, nil
	case res.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		slog.Error("section records unexpected status", slog.Int("status", res.StatusCode), slog.String("key", entrypointKey), slog.String("body", strings.TrimSpace(string(body))))
		return nil, fmt.Errorf("%w: unexpected status %d", port.ErrStorageUnavailable, res.StatusCode)
	}

	return decodeSectionRecords(res.Body)
}

func decodeSectionRecords(body io.Reader) ([]domain.RawRecord, error) {
	var payload any
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", port.ErrStorageUnavailable, err)
	}

	items := normalization.AsInterfaceSlice(payload)
	if items == nil {
		if container := normalization.MapFromPayload(payload); container != nil {
			items = normalization.AsInterfaceSlice(container["items"])
		}
	}

	records := make([]domain.RawRecord, 0, len(items))
	for _, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			continue
		}
		record := domain.RawRecord{
			ID:         normalization.AsString(raw["id"]),
			Tag:        normalization.AsString(raw["componentTag"]),
			Visibility: normalization.AsString(raw["visibilityRule"]),
		}
		if content, ok := raw["componentContent"]; ok && content != nil {
			encoded, err := json.Marshal(content)
			if err != nil {
				return nil, fmt.Errorf("%w: re-encode content for record %q: %v", port.ErrStorageUnavailable, record.ID, err)
			}
			record.Content = encoded
		}
		records = append(records, record)
	}
	return records, nil
}

var _ port.SectionRecordFetcher = (*SectionRecordHTTPClient)(nil)
