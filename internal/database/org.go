package database

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrgDBManager manages connections to organization-specific databases
type OrgDBManager struct {
	platformDB *PlatformDB
	pools      sync.Map // map[orgID]string -> *pgxpool.Pool
	mu         sync.RWMutex
}

// NewOrgDBManager creates a new organization database manager
func NewOrgDBManager(platformDB *PlatformDB) *OrgDBManager {
	return &OrgDBManager{
		platformDB: platformDB,
	}
}

// GetOrgDB retrieves or creates a connection pool for an organization database
func (m *OrgDBManager) GetOrgDB(ctx context.Context, org *models.Organization) (*pgxpool.Pool, error) {
	// Check if pool already exists
	if pool, ok := m.pools.Load(org.ID.String()); ok {
		return pool.(*pgxpool.Pool), nil
	}

	// Create new connection pool
	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring lock
	if pool, ok := m.pools.Load(org.ID.String()); ok {
		return pool.(*pgxpool.Pool), nil
	}

	// Build connection string for the organization database. Tenant DBs
	// share the platform credentials; db_password_encrypted is reserved
	// for per-org credentials once key management lands.
	connString := fmt.Sprintf(
		"postgres://postgres:%s@%s:%d/%s?sslmode=disable",
		os.Getenv("TENANT_DB_PASSWORD"),
		org.DBHost,
		org.DBPort,
		org.DBName,
	)

	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse org DB config for %s: %w", org.Slug, err)
	}

	// Connection pool settings for organization databases
	config.MaxConns = 25
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create org DB pool for %s: %w", org.Slug, err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping org DB for %s: %w", org.Slug, err)
	}

	// Store in cache
	m.pools.Store(org.ID.String(), pool)

	return pool, nil
}

// GetOrgDBBySlug is a convenience method that looks up the org and gets its DB
func (m *OrgDBManager) GetOrgDBBySlug(ctx context.Context, slug string) (*pgxpool.Pool, *models.Organization, error) {
	// Look up organization from platform database
	org, err := m.platformDB.GetOrgBySlug(ctx, slug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get organization by slug: %w", err)
	}

	// Get or create connection pool
	pool, err := m.GetOrgDB(ctx, org)
	if err != nil {
		return nil, nil, err
	}

	// Update last activity
	go func() {
		ctx := context.Background()
		_ = m.platformDB.UpdateOrgLastActivity(ctx, org.ID.String())
	}()

	return pool, org, nil
}

// Close closes all organization database connections
func (m *OrgDBManager) Close() {
	m.pools.Range(func(key, value interface{}) bool {
		if pool, ok := value.(*pgxpool.Pool); ok {
			pool.Close()
		}
		m.pools.Delete(key)
		return true
	})
}

// PoolStats returns statistics about connection pools
func (m *OrgDBManager) PoolStats() map[string]interface{} {
	stats := make(map[string]interface{})
	count := 0

	m.pools.Range(func(key, value interface{}) bool {
		count++
		if pool, ok := value.(*pgxpool.Pool); ok {
			poolStats := pool.Stat()
			stats[key.(string)] = map[string]interface{}{
				"acquired_conns": poolStats.AcquiredConns(),
				"idle_conns":     poolStats.IdleConns(),
				"total_conns":    poolStats.TotalConns(),
				"max_conns":      poolStats.MaxConns(),
			}
		}
		return true
	})

	stats["total_pools"] = count
	return stats
}
