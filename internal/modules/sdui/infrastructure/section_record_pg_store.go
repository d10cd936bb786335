package infrastructure

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	accounts "sduiGateway/internal/modules/accounts/domain"
	"sduiGateway/internal/modules/sdui/application/port"
	"sduiGateway/internal/modules/sdui/domain"
)

const sectionRecordsQuery = `
SELECT id, component_tag, component_content, COALESCE(visibility_rule, '')
FROM entrypoint_sections
WHERE entrypoint_key = $1
ORDER BY position ASC`

// SectionRecordPgStore reads persisted section records from Postgres. The pool
// is a borrowed, shared handle: each fetch acquires and releases a connection
// within the call, nothing is held across requests.
type SectionRecordPgStore struct {
	pool *pgxpool.Pool
}

func NewSectionRecordPgStore(pool *pgxpool.Pool) *SectionRecordPgStore {
	return &SectionRecordPgStore{pool: pool}
}

func (s *SectionRecordPgStore) FetchSectionRecords(ctx context.Context, _ accounts.Identity, entrypointKey string) ([]domain.RawRecord, error) {
	rows, err := s.pool.Query(ctx, sectionRecordsQuery, entrypointKey)
	if err != nil {
		return nil, fmt.Errorf("%w: query entrypoint %q: %v", port.ErrStorageUnavailable, entrypointKey, err)
	}
	defer rows.Close()

	var records []domain.RawRecord
	for rows.Next() {
		var record domain.RawRecord
		if err := rows.Scan(&record.ID, &record.Tag, &record.Content, &record.Visibility); err != nil {
			return nil, fmt.Errorf("%w: scan entrypoint %q: %v", port.ErrStorageUnavailable, entrypointKey, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read entrypoint %q: %v", port.ErrStorageUnavailable, entrypointKey, err)
	}
	return records, nil
}

var _ port.SectionRecordFetcher = (*SectionRecordPgStore)(nil)
