package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/ports"
)

const insertActivityQuery = `
INSERT INTO activity_logs
  (user_id, action_type, entity_type, entity_id, entity_title, metadata, occurred_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

type ActivityRepository struct {
	db *sqlx.DB
}

var _ ports.ActivityRepository = (*ActivityRepository)(nil)

func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, log domain.ActivityLog) error {
	metadata := log.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("encode activity metadata: %w", err)
	}

	occurredAt := log.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	_, err = r.db.ExecContext(ctx, r.db.Rebind(insertActivityQuery),
		log.UserID,
		log.ActionType,
		log.EntityType,
		log.EntityID,
		nullableString(log.EntityTitle),
		string(raw),
		occurredAt.Truncate(time.Second),
	)
	return err
}
