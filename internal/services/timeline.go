package services

import (
	"context"
	"time"

	"portfolio-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

const timelineColumns = "id, type, title, institution, start_date, end_date, description, sort_order, is_active, created_at, updated_at"

// TimelineTypeFilter returns the entry type to filter by, or "" when the raw value is
// not a known type and the filter must not be applied.
func TimelineTypeFilter(raw string) string {
	switch raw {
	case models.TimelineEducation, models.TimelineExperience:
		return raw
	}
	return ""
}

func ListTimeline(ctx context.Context, db *sqlx.DB, scope Scope, entryType string) ([]models.TimelineEntry, error) {
	q := newSelect(timelineColumns, "timeline_entries", orderTimeline).Visible(scope, activePredicate)
	if t := TimelineTypeFilter(entryType); t != "" {
		q.Where("type = ?", t)
	}
	return selectAll[models.TimelineEntry](ctx, db, q)
}

func GetTimelineEntry(ctx context.Context, db *sqlx.DB, scope Scope, id int64) (models.TimelineEntry, error) {
	q := newSelect(timelineColumns, "timeline_entries", "").Where("id = ?", id).Visible(scope, activePredicate)
	return getOne[models.TimelineEntry](ctx, db, q, "Timeline entry not found")
}

// clearEmptyEndDate treats a zero end date as absent so the entry stays current.
func clearEmptyEndDate(item *models.TimelineEntry) {
	if item.EndDate != nil && item.EndDate.IsZero() {
		item.EndDate = nil
	}
}

func CreateTimelineEntry(ctx context.Context, db *sqlx.DB, item *models.TimelineEntry) error {
	clearEmptyEndDate(item)
	if err := ValidateRecord(item); err != nil {
		return err
	}
	now := time.Now().UTC()
	item.CreatedAt, item.UpdatedAt = now, now
	id, err := insertReturningID(ctx, db, `
INSERT INTO timeline_entries (type, title, institution, start_date, end_date, description, sort_order, is_active, created_at, updated_at)
VALUES (:type, :title, :institution, :start_date, :end_date, :description, :sort_order, :is_active, :created_at, :updated_at)
RETURNING id`, item)
	if err != nil {
		return WrapError(err, "insert timeline entry")
	}
	item.ID = id
	return nil
}

func UpdateTimelineEntry(ctx context.Context, db *sqlx.DB, item *models.TimelineEntry) error {
	clearEmptyEndDate(item)
	if err := ValidateRecord(item); err != nil {
		return err
	}
	current, err := GetTimelineEntry(ctx, db, Admin, item.ID)
	if err != nil {
		return err
	}
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	_, err = execNamed(ctx, db, `
UPDATE timeline_entries
SET type = :type, title = :title, institution = :institution, start_date = :start_date,
    end_date = :end_date, description = :description, sort_order = :sort_order,
    is_active = :is_active, updated_at = :updated_at
WHERE id = :id`, item)
	return WrapError(err, "update timeline entry")
}

func DeleteTimelineEntry(ctx context.Context, db *sqlx.DB, id int64) error {
	return deleteByID(ctx, db, "timeline_entries", id, "Timeline entry not found")
}
