package repository

import (
	"context"
	"fmt"
	"sort"

	"islet-durians/internal/catalog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const schema = `
	CREATE TABLE IF NOT EXISTS catalog_products (
		catalog TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (catalog, name)
	);
	CREATE TABLE IF NOT EXISTS catalog_sizes (
		catalog TEXT NOT NULL,
		product TEXT NOT NULL,
		size TEXT NOT NULL,
		price TEXT,
		payment_url TEXT,
		PRIMARY KEY (catalog, product, size),
		FOREIGN KEY (catalog, product) REFERENCES catalog_products (catalog, name) ON DELETE CASCADE
	);
	CREATE TABLE IF NOT EXISTS catalog_aliases (
		catalog TEXT NOT NULL,
		alias TEXT NOT NULL,
		canonical TEXT NOT NULL,
		PRIMARY KEY (catalog, alias)
	);
`

// catalogRepository implements CatalogRepository using PostgreSQL.
type catalogRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCatalogRepository creates a new PostgreSQL-backed catalogue repository.
func NewCatalogRepository(pool *pgxpool.Pool, logger zerolog.Logger) CatalogRepository {
	return &catalogRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "catalog").Logger(),
	}
}

// EnsureSchema creates the catalogue tables when they do not exist.
func (r *catalogRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		r.logger.Error().Err(err).Msg("failed to create catalogue schema")
		return fmt.Errorf("failed to create catalogue schema: %w", err)
	}
	return nil
}

// Load reads the catalogue stored under name. Prices and payment links come
// back as the two separate tables they were seeded from.
func (r *catalogRepository) Load(ctx context.Context, name string) (*catalog.Source, error) {
	src := &catalog.Source{
		PaymentLinks: make(map[string]map[string]string),
		Prices:       make(map[string]map[string]string),
	}

	rows, err := r.pool.Query(ctx, `
		SELECT p.name, s.size, s.price, s.payment_url
		FROM catalog_products p
		LEFT JOIN catalog_sizes s ON s.catalog = p.catalog AND s.product = p.name
		WHERE p.catalog = $1
		ORDER BY p.name, s.size
	`, name)
	if err != nil {
		r.logger.Error().Err(err).Str("catalog", name).Msg("failed to query catalogue")
		return nil, fmt.Errorf("failed to query catalogue %s: %w", name, err)
	}
	defer rows.Close()

	found := false
	for rows.Next() {
		var (
			product    string
			size       *string
			price, url *string
		)
		if err := rows.Scan(&product, &size, &price, &url); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan catalogue row")
			return nil, fmt.Errorf("failed to scan catalogue row: %w", err)
		}
		found = true

		if size == nil {
			continue
		}
		if url != nil {
			put(src.PaymentLinks, product, *size, *url)
		}
		if price != nil {
			put(src.Prices, product, *size, *price)
		}
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating catalogue rows")
		return nil, fmt.Errorf("error iterating catalogue rows: %w", err)
	}

	if !found {
		r.logger.Debug().Str("catalog", name).Msg("catalogue not found")
		return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, name)
	}

	aliases, err := r.aliases(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(aliases) > 0 {
		src.Aliases = aliases
	}

	r.logger.Info().
		Str("catalog", name).
		Int("products", len(src.PaymentLinks)).
		Msg("catalogue loaded from database")

	return src, nil
}

func (r *catalogRepository) aliases(ctx context.Context, name string) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT alias, canonical
		FROM catalog_aliases
		WHERE catalog = $1
	`, name)
	if err != nil {
		r.logger.Error().Err(err).Str("catalog", name).Msg("failed to query catalogue aliases")
		return nil, fmt.Errorf("failed to query catalogue aliases: %w", err)
	}
	defer rows.Close()

	aliases := make(map[string]string)
	for rows.Next() {
		var alias, canonical string
		if err := rows.Scan(&alias, &canonical); err != nil {
			return nil, fmt.Errorf("failed to scan catalogue alias: %w", err)
		}
		aliases[alias] = canonical
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalogue aliases: %w", err)
	}

	return aliases, nil
}

// Seed replaces the catalogue stored under name with src.
func (r *catalogRepository) Seed(ctx context.Context, name string, src *catalog.Source) error {
	if src == nil {
		return fmt.Errorf("failed to seed catalogue %s: %w", name, catalog.ErrEmptyCatalog)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, table := range []string{"catalog_aliases", "catalog_products"} {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table+" WHERE catalog = $1", name); err != nil {
			r.logger.Error().Err(err).Str("catalog", name).Msg("failed to clear catalogue")
			return fmt.Errorf("failed to clear catalogue %s: %w", name, err)
		}
	}

	batch := &pgx.Batch{}
	products := productNames(src)
	for _, product := range products {
		batch.Queue(`INSERT INTO catalog_products (catalog, name) VALUES ($1, $2)`, name, product)
	}

	sizes := 0
	for _, product := range products {
		for _, size := range sizeLabels(src, product) {
			batch.Queue(`
				INSERT INTO catalog_sizes (catalog, product, size, price, payment_url)
				VALUES ($1, $2, $3, $4, $5)
			`, name, product, size, lookup(src.Prices, product, size), lookup(src.PaymentLinks, product, size))
			sizes++
		}
	}

	for alias, canonical := range src.Aliases {
		batch.Queue(`INSERT INTO catalog_aliases (catalog, alias, canonical) VALUES ($1, $2, $3)`, name, alias, canonical)
	}

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			results.Close()
			r.logger.Error().Err(err).Str("catalog", name).Msg("failed to seed catalogue")
			return fmt.Errorf("failed to seed catalogue %s: %w", name, err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to seed catalogue %s: %w", name, err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Info().
		Str("catalog", name).
		Int("products", len(products)).
		Int("sizes", sizes).
		Int("aliases", len(src.Aliases)).
		Msg("catalogue seeded successfully")

	return nil
}

// Names lists the stored catalogue names.
func (r *catalogRepository) Names(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT catalog FROM catalog_products ORDER BY catalog`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query catalogue names")
		return nil, fmt.Errorf("failed to query catalogue names: %w", err)
	}
	defer rows.Close()

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to collect catalogue names: %w", err)
	}
	return names, nil
}

func put(table map[string]map[string]string, product, size, value string) {
	if table[product] == nil {
		table[product] = make(map[string]string)
	}
	table[product][size] = value
}

// lookup returns nil when the cell is absent so it is stored as NULL.
func lookup(table map[string]map[string]string, product, size string) *string {
	v, ok := table[product][size]
	if !ok {
		return nil
	}
	return &v
}

func productNames(src *catalog.Source) []string {
	seen := make(map[string]bool)
	for name := range src.PaymentLinks {
		seen[name] = true
	}
	for name := range src.Prices {
		seen[name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sizeLabels(src *catalog.Source, product string) []string {
	seen := make(map[string]bool)
	for size := range src.PaymentLinks[product] {
		seen[size] = true
	}
	for size := range src.Prices[product] {
		seen[size] = true
	}
	sizes := make([]string, 0, len(seen))
	for size := range seen {
		sizes = append(sizes, size)
	}
	sort.Strings(sizes)
	return sizes
}
