package services

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Scope selects which rows a read accessor may return. Public reads only ever see
// active or published rows; Admin reads see everything.
type Scope int

const (
	Public Scope = iota
	Admin
)

// Visibility predicates shared by every accessor.
const (
	activePredicate    = "is_active = TRUE"
	publishedPredicate = "is_published = TRUE"
)

// Default orderings. id is the final tie-breaker so equal keys list stably.
const (
	orderServices     = "sort_order ASC, name ASC, id ASC"
	orderSkills       = "sort_order ASC, name ASC, id ASC"
	orderClients      = "sort_order ASC, name ASC, id ASC"
	orderTimeline     = "start_date DESC, sort_order ASC, id ASC"
	orderTestimonials = "sort_order ASC, date DESC, id ASC"
	orderCategories   = "c.name ASC, c.id ASC"
	orderProjects     = "p.featured DESC, p.sort_order ASC, p.created_date DESC, p.id ASC"
	orderBlog         = "published_date DESC, id DESC"
	orderMessages     = "submitted_date DESC, id DESC"
)

// selectQuery assembles a SELECT with `?` placeholders; build rebinds them for the driver.
type selectQuery struct {
	from    string
	columns string
	where   []string
	args    []interface{}
	order   string
	limit   int
	offset  int
}

func newSelect(columns, from, order string) *selectQuery {
	return &selectQuery{columns: columns, from: from, order: order}
}

func (q *selectQuery) Where(cond string, args ...interface{}) *selectQuery {
	q.where = append(q.where, cond)
	q.args = append(q.args, args...)
	return q
}

// Visible applies the visibility predicate when the scope is public.
func (q *selectQuery) Visible(scope Scope, predicate string) *selectQuery {
	if scope == Public {
		q.where = append(q.where, predicate)
	}
	return q
}

func (q *selectQuery) Page(limit, offset int) *selectQuery {
	q.limit = limit
	q.offset = offset
	return q
}

func (q *selectQuery) whereClause() string {
	if len(q.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.where, " AND ")
}

func (q *selectQuery) build(db *sqlx.DB) (string, []interface{}) {
	query := "SELECT " + q.columns + " FROM " + q.from + q.whereClause()
	if q.order != "" {
		query += " ORDER BY " + q.order
	}
	args := append([]interface{}{}, q.args...)
	if q.limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, q.limit, q.offset)
	}
	return db.Rebind(query), args
}

func (q *selectQuery) buildCount(db *sqlx.DB) (string, []interface{}) {
	return db.Rebind("SELECT count(*) FROM " + q.from + q.whereClause()), q.args
}

func selectAll[T any](ctx context.Context, db *sqlx.DB, q *selectQuery) ([]T, error) {
	query, args := q.build(db)
	items := []T{}
	if err := db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func getOne[T any](ctx context.Context, db *sqlx.DB, q *selectQuery, notFound string) (T, error) {
	query, args := q.build(db)
	var item T
	if err := db.GetContext(ctx, &item, query, args...); err != nil {
		return item, notFoundOr(err, notFound)
	}
	return item, nil
}

func countRows(ctx context.Context, db *sqlx.DB, q *selectQuery) (int, error) {
	query, args := q.buildCount(db)
	var total int
	err := db.GetContext(ctx, &total, query, args...)
	return total, err
}

// insertReturningID runs a named INSERT ... RETURNING id.
func insertReturningID(ctx context.Context, db *sqlx.DB, query string, arg interface{}) (int64, error) {
	bound, args, err := sqlx.Named(query, arg)
	if err != nil {
		return 0, err
	}
	var id int64
	if err := db.QueryRowxContext(ctx, db.Rebind(bound), args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// execNamed runs a named statement and returns the number of affected rows.
func execNamed(ctx context.Context, db *sqlx.DB, query string, arg interface{}) (int64, error) {
	bound, args, err := sqlx.Named(query, arg)
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx, db.Rebind(bound), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func deleteByID(ctx context.Context, db *sqlx.DB, table string, id int64, notFound string) error {
	res, err := db.ExecContext(ctx, db.Rebind("DELETE FROM "+table+" WHERE id = ?"), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound(notFound)
	}
	return nil
}

// escapeLike escapes LIKE wildcards so user input matches literally (ESCAPE '\').
func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}
