package port

import (
	"context"
	"errors"

	accounts "sduiGateway/internal/modules/accounts/domain"
	"sduiGateway/internal/modules/sdui/domain"
)

// ErrStorageUnavailable marks a storage collaborator I/O failure. Callers may
// retry; the resolution core never does.
var ErrStorageUnavailable = errors.New("section storage unavailable")

// SectionRecordFetcher loads the persisted section records for one entrypoint
// key, in persisted order. The identity is forwarded so storage backends that
// apply row-level rules can do so; the core still filters on its own.
type SectionRecordFetcher interface {
	FetchSectionRecords(ctx context.Context, identity accounts.Identity, entrypointKey string) ([]domain.RawRecord, error)
}
