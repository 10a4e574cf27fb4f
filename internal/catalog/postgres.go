package catalog

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Schema creates the dataset tables if they do not exist.
//
//go:embed schema.sql
var Schema string

// Querier is the subset of *pgxpool.Pool the Postgres source uses.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Dataset queries. Text columns are coalesced so nullable columns scan into
// plain strings; featured and count columns stay nullable.
const (
	categoriesQuery = `SELECT id, label, slug, featured,
	COALESCE(image_url, '') AS image_url, COALESCE(image_alt, '') AS image_alt,
	subcategory_count, skill_count
FROM categories ORDER BY id`

	subcategoriesQuery = `SELECT id, label, slug, COALESCE(category_id, '') AS category_id,
	featured, skill_count
FROM subcategories ORDER BY id`

	tagsQuery = `SELECT id, label, slug, COALESCE(type, '') AS type, usage_count
FROM tags ORDER BY id`

	skillsQuery = `SELECT id, label, slug, COALESCE(category_id, '') AS category_id,
	COALESCE(level, '') AS level, featured, pro_count
FROM skills ORDER BY id`

	taxonomyQuery = `SELECT id, label, slug, COALESCE(type, '') AS type,
	COALESCE(parent_id, '') AS parent_id, child_count
FROM pro_taxonomy ORDER BY id`

	chatsQuery = `SELECT id, label, slug, COALESCE(type, '') AS type,
	COALESCE(user_id, '') AS user_id, message_count
FROM chats ORDER BY id`

	usersQuery = `SELECT id, label, slug, COALESCE(role, '') AS role,
	COALESCE(image_url, '') AS image_url, COALESCE(image_alt, '') AS image_alt, chat_count
FROM users ORDER BY id`
)

// PostgresSource loads every dataset from its own table.
type PostgresSource struct {
	db Querier
}

// NewPostgresSource wraps a connection pool.
func NewPostgresSource(db Querier) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Name() string { return "postgres" }

// EnsureSchema creates missing dataset tables.
func (s *PostgresSource) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply dataset schema: %w", err)
	}
	return nil
}

func (s *PostgresSource) Load(ctx context.Context) (Datasets, error) {
	var (
		d   Datasets
		err error
	)
	if d.Categories, err = collect[Category](ctx, s.db, DatasetCategories, categoriesQuery); err != nil {
		return Datasets{}, err
	}
	if d.Subcategories, err = collect[Subcategory](ctx, s.db, DatasetSubcategories, subcategoriesQuery); err != nil {
		return Datasets{}, err
	}
	if d.Tags, err = collect[Tag](ctx, s.db, DatasetTags, tagsQuery); err != nil {
		return Datasets{}, err
	}
	if d.Skills, err = collect[Skill](ctx, s.db, DatasetSkills, skillsQuery); err != nil {
		return Datasets{}, err
	}
	if d.Taxonomy, err = collect[TaxonomyEntry](ctx, s.db, DatasetTaxonomy, taxonomyQuery); err != nil {
		return Datasets{}, err
	}
	if d.Chats, err = collect[Chat](ctx, s.db, DatasetChats, chatsQuery); err != nil {
		return Datasets{}, err
	}
	if d.Users, err = collect[User](ctx, s.db, DatasetUsers, usersQuery); err != nil {
		return Datasets{}, err
	}
	return d, nil
}

func collect[T any](ctx context.Context, db Querier, dataset, query string) ([]T, error) {
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", dataset, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dataset, err)
	}
	return items, nil
}
