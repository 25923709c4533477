package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/mfgops/stockledger/internal/adapter/repository/postgres"
	"github.com/mfgops/stockledger/internal/domain"
	infrapostgres "github.com/mfgops/stockledger/internal/infrastructure/postgres"
)

// TestDB provides isolated test database connections.
type TestDB struct {
	Pool *pgxpool.Pool
	t    *testing.T
}

// NewTestDB connects to the integration database and applies migrations.
// Tests calling this are skipped unless DATABASE_URL is set.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	migrationsPath := "../../migrations"
	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		migrationsPath = "migrations"
	}

	if err := infrapostgres.RunMigrations(dbURL, migrationsPath); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}

	return &TestDB{
		Pool: pool,
		t:    t,
	}
}

// Cleanup closes the database connection.
func (db *TestDB) Cleanup() {
	db.Pool.Close()
}

// TruncateAll removes all data from tables.
func (db *TestDB) TruncateAll(ctx context.Context) {
	db.t.Helper()

	_, err := db.Pool.Exec(ctx, `
		TRUNCATE TABLE outbox_events CASCADE;
		TRUNCATE TABLE movements CASCADE;
		TRUNCATE TABLE items CASCADE;
	`)
	if err != nil {
		db.t.Fatalf("failed to truncate tables: %v", err)
	}
}

// CreateTestItem inserts an item configuration.
func (db *TestDB) CreateTestItem(ctx context.Context, name, category string, minStock, maxStock int64, unitCost string) *domain.Item {
	db.t.Helper()

	now := time.Now().UTC()

	item := &domain.Item{
		ID:        GenerateID(),
		Name:      name,
		Category:  category,
		Unit:      "pcs",
		UnitCost:  decimal.RequireFromString(unitCost),
		MinStock:  minStock,
		MaxStock:  maxStock,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := postgres.NewItemRepository(db.Pool).Create(ctx, item); err != nil {
		db.t.Fatalf("failed to create test item: %v", err)
	}

	return item
}

// GenerateID generates a new ULID.
func GenerateID() string {
	return ulid.Make().String()
}
