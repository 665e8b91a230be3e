package tenancy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/dentalcloud/console/pkg/logging"
)

// directoryDB defines the database interface needed by Directory
type directoryDB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Directory resolves tenants by slug, fronted by a redis read-through
// cache. Cache entries expire after the configured TTL so renames and plan
// changes converge without an invalidation protocol.
type Directory struct {
	db          directoryDB
	cache       *redis.Client
	ttl         time.Duration
	defaultRate float64
	logger      *logging.Logger
}

// DirectoryConfig holds construction options for Directory.
type DirectoryConfig struct {
	Cache               *redis.Client // optional; nil disables caching
	CacheTTL            time.Duration
	CoverageRateDefault float64
	Logger              *logging.Logger
}

// NewDirectory creates a directory backed by a pgx pool.
func NewDirectory(pool *pgxpool.Pool, cfg DirectoryConfig) *Directory {
	if pool == nil {
		panic("tenancy: pgx pool required for directory")
	}
	return newDirectory(pool, cfg)
}

// NewDirectoryWithDB allows injecting a mock database for testing.
func NewDirectoryWithDB(db directoryDB, cfg DirectoryConfig) *Directory {
	return newDirectory(db, cfg)
}

func newDirectory(db directoryDB, cfg DirectoryConfig) *Directory {
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.CoverageRateDefault <= 0 {
		cfg.CoverageRateDefault = 0.60
	}
	return &Directory{
		db:          db,
		cache:       cfg.Cache,
		ttl:         cfg.CacheTTL,
		defaultRate: cfg.CoverageRateDefault,
		logger:      cfg.Logger,
	}
}

func cacheKey(slug string) string {
	return "tenant:slug:" + slug
}

// BySlug resolves a tenant by its URL slug. Returns ErrTenantNotFound when
// the slug is unknown; callers redirect to tenant selection.
func (d *Directory) BySlug(ctx context.Context, slug string) (*Tenant, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, ErrTenantNotFound
	}

	if d.cache != nil {
		if raw, err := d.cache.Get(ctx, cacheKey(slug)).Result(); err == nil {
			var t Tenant
			if err := json.Unmarshal([]byte(raw), &t); err == nil {
				return &t, nil
			}
			// Corrupt entry; fall through to the database.
			d.logger.Warn("tenant cache entry unreadable", "slug", slug)
		}
	}

	const q = `SELECT id, name, slug, country, plan, COALESCE(coverage_rate, $2)
		FROM tenants WHERE slug = $1`

	var t Tenant
	err := d.db.QueryRow(ctx, q, slug, d.defaultRate).
		Scan(&t.ID, &t.Name, &t.Slug, &t.Country, &t.Plan, &t.CoverageRate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("tenancy: lookup slug %q: %w", slug, err)
	}

	if d.cache != nil {
		if raw, err := json.Marshal(&t); err == nil {
			if err := d.cache.Set(ctx, cacheKey(slug), raw, d.ttl).Err(); err != nil {
				d.logger.Warn("tenant cache write failed", "slug", slug, "error", err)
			}
		}
	}
	return &t, nil
}

// List returns all tenants ordered by name, for the tenant switcher.
func (d *Directory) List(ctx context.Context) ([]Tenant, error) {
	const q = `SELECT id, name, slug, country, plan, COALESCE(coverage_rate, $1)
		FROM tenants ORDER BY name`

	rows, err := d.db.Query(ctx, q, d.defaultRate)
	if err != nil {
		return nil, fmt.Errorf("tenancy: list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []Tenant
	for rows.Next() {
		var t Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Country, &t.Plan, &t.CoverageRate); err != nil {
			return nil, fmt.Errorf("tenancy: scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tenancy: iterate tenants: %w", err)
	}
	return tenants, nil
}
