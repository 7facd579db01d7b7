package database

import (
	"context"
	"fmt"
	"time"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PlatformDB handles connections to the platform routing database
type PlatformDB struct {
	pool *pgxpool.Pool
}

// NewPlatformDB creates a new platform database connection
func NewPlatformDB(ctx context.Context, connString string) (*PlatformDB, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse platform DB config: %w", err)
	}

	// Connection pool settings
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create platform DB pool: %w", err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping platform DB: %w", err)
	}

	return &PlatformDB{pool: pool}, nil
}

// GetOrgBySlug retrieves organization information by slug
func (db *PlatformDB) GetOrgBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	query := `
		SELECT id, slug, name, db_host, db_port, db_name, db_user, db_password_encrypted,
		       plan, status, created_at, updated_at
		FROM organizations
		WHERE slug = $1 AND deleted_at IS NULL AND status = 'active'
	`

	var org models.Organization
	var dbUser, dbPassword *string

	err := db.pool.QueryRow(ctx, query, slug).Scan(
		&org.ID,
		&org.Slug,
		&org.Name,
		&org.DBHost,
		&org.DBPort,
		&org.DBName,
		&dbUser,
		&dbPassword,
		&org.Plan,
		&org.Status,
		&org.CreatedAt,
		&org.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to get organization by slug %s: %w", slug, err)
	}

	// Handle nullable fields
	if dbUser != nil {
		org.DBUser = *dbUser
	}
	if dbPassword != nil {
		org.DBPasswordEncrypted = *dbPassword
	}

	return &org, nil
}

// UpdateOrgLastActivity updates the last_activity_at timestamp
func (db *PlatformDB) UpdateOrgLastActivity(ctx context.Context, orgID string) error {
	query := `UPDATE organizations SET last_activity_at = NOW() WHERE id = $1`
	_, err := db.pool.Exec(ctx, query, orgID)
	return err
}

// Close closes the platform database connection pool
func (db *PlatformDB) Close() {
	db.pool.Close()
}

// Health checks if the platform database is healthy
func (db *PlatformDB) Health(ctx context.Context) error {
	return db.pool.Ping(ctx)
}
