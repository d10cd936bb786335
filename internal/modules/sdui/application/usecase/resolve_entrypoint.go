package usecase

import (
	"context"
	"log/slog"
	"strings"

	accounts "sduiGateway/internal/modules/accounts/domain"
	"sduiGateway/internal/modules/sdui/application/port"
	"sduiGateway/internal/modules/sdui/domain"
)

// ResolveEntrypointUseCase assembles the ordered section sequence for one
// entrypoint key. Each execution is an independent unit of work: the storage
// handle is borrowed for the duration of the fetch only, nothing is cached and
// nothing is retried here.
type ResolveEntrypointUseCase struct {
	Fetcher port.SectionRecordFetcher
	Policy  domain.VisibilityPolicy
}

func NewResolveEntrypointUseCase(fetcher port.SectionRecordFetcher, policy domain.VisibilityPolicy) *ResolveEntrypointUseCase {
	if policy == nil {
		policy = domain.DefaultVisibilityPolicy
	}
	return &ResolveEntrypointUseCase{Fetcher: fetcher, Policy: policy}
}

// Execute resolves the entrypoint into its visible, decoded sections in
// persisted order. An entrypoint with no content yields an empty sequence; a
// single malformed record fails the whole resolution with no partial output.
func (uc *ResolveEntrypointUseCase) Execute(ctx context.Context, identity accounts.Identity, entrypointKey string) ([]domain.Section, error) {
	key := strings.TrimSpace(entrypointKey)
	if key == "" {
		return nil, &domain.ResolutionError{Kind: domain.ResolutionInvalidKey, Key: entrypointKey, Err: domain.ErrInvalidEntrypointKey}
	}

	records, err := uc.Fetcher.FetchSectionRecords(ctx, identity, key)
	if err != nil {
		slog.Warn("entrypoint fetch failed", slog.String("key", key), slog.Any("error", err))
		return nil, &domain.ResolutionError{Kind: domain.ResolutionStorage, Key: key, Err: err}
	}

	sections := make([]domain.Section, 0, len(records))
	for _, record := range records {
		if !uc.Policy(identity, record.Visibility) {
			continue
		}
		section, err := domain.BuildSection(record)
		if err != nil {
			slog.Warn("entrypoint section decode failed", slog.String("key", key), slog.String("sectionId", record.ID), slog.String("tag", record.Tag), slog.Any("error", err))
			return nil, &domain.ResolutionError{Kind: domain.ResolutionDecode, Key: key, Err: err}
		}
		sections = append(sections, section)
	}

	slog.Debug("entrypoint resolved", slog.String("key", key), slog.String("identity", string(identity.Kind())), slog.Int("sections", len(sections)))
	return sections, nil
}
