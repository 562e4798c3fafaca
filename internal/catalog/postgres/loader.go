// Package postgres loads the catalog tables from PostgreSQL once at start-up.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/fitassess/internal/catalog"
)

// Loader reads the catalog tables.
type Loader struct {
	pool *pgxpool.Pool
}

// NewLoader constructs a Loader.
func NewLoader(pool *pgxpool.Pool) *Loader {
	return &Loader{pool: pool}
}

// Load reads both tables inside one read-only transaction and returns an
// immutable catalog. Rows are ordered by their declared position.
func (l *Loader) Load(ctx context.Context) (*catalog.Catalog, error) {
	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	exercises, err := loadExercises(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("load exercises: %w", err)
	}
	products, err := loadProducts(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return catalog.New(exercises, products)
}

func loadExercises(ctx context.Context, tx pgx.Tx) ([]catalog.Exercise, error) {
	const query = `SELECT exercise_id, name, description, difficulty, target_zones, safety_tips, do_list, dont_list,
        duration, reps, contraindications, related_product_ids, image_url
        FROM catalog_exercises ORDER BY position ASC`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.Exercise
	for rows.Next() {
		var ex catalog.Exercise
		if err := rows.Scan(&ex.ID, &ex.Name, &ex.Description, &ex.Difficulty, &ex.TargetZones, &ex.SafetyTips,
			&ex.DoList, &ex.DontList, &ex.Duration, &ex.Reps, &ex.Contraindications, &ex.RelatedProductIDs, &ex.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, ex)
	}
	return out, rows.Err()
}

func loadProducts(ctx context.Context, tx pgx.Tx) ([]catalog.Product, error) {
	const query = `SELECT product_id, name, description, price, shop_url, image_url, tags
        FROM catalog_products ORDER BY position ASC`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ShopURL, &p.ImageURL, &p.Tags); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Seed writes the given catalog into empty tables, preserving declaration order.
func Seed(ctx context.Context, pool *pgxpool.Pool, c *catalog.Catalog) error {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for i, ex := range c.Exercises() {
		batch.Queue(`INSERT INTO catalog_exercises (exercise_id, position, name, description, difficulty, target_zones,
            safety_tips, do_list, dont_list, duration, reps, contraindications, related_product_ids, image_url)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
			ex.ID, i, ex.Name, ex.Description, string(ex.Difficulty), ex.TargetZones, ex.SafetyTips, ex.DoList,
			ex.DontList, ex.Duration, ex.Reps, ex.Contraindications, ex.RelatedProductIDs, ex.ImageURL)
	}
	for i, p := range c.Products() {
		batch.Queue(`INSERT INTO catalog_products (product_id, position, name, description, price, shop_url, image_url, tags)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			p.ID, i, p.Name, p.Description, p.Price, p.ShopURL, p.ImageURL, p.Tags)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
