package database

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/ranger/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests instead of the embedded SQL files
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	err = CreateCustomIndexes(ctx, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	run1, err := client.Run.Create().
		SetID("run-1").
		SetGoal("Investigate failing pods in the production cluster").
		SetAgentProfileID("sre").
		Save(ctx)
	require.NoError(t, err)

	run2, err := client.Run.Create().
		SetID("run-2").
		SetGoal("Summarize memory usage trends for the staging namespace").
		SetAgentProfileID("sre").
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT run_id FROM runs
		WHERE to_tsvector('english', goal) @@ to_tsquery('english', $1)`,
		"failing & production",
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var runID string
		err := rows.Scan(&runID)
		require.NoError(t, err)
		results = append(results, runID)
	}

	assert.Len(t, results, 1)
	assert.Equal(t, run1.ID, results[0])

	rows2, err := client.DB().QueryContext(ctx,
		`SELECT run_id FROM runs
		WHERE to_tsvector('english', goal) @@ to_tsquery('english', $1)`,
		"memory",
	)
	require.NoError(t, err)
	defer rows2.Close()

	results2 := []string{}
	for rows2.Next() {
		var runID string
		err := rows2.Scan(&runID)
		require.NoError(t, err)
		results2 = append(results2, runID)
	}

	assert.Len(t, results2, 1)
	assert.Equal(t, run2.ID, results2[0])
}

func TestActiveFingerprintIndex(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Run.Create().
		SetID("run-fp-1").
		SetGoal("Investigate alert").
		SetAgentProfileID("sre").
		SetAlertFingerprint("fp-abc").
		Save(ctx)
	require.NoError(t, err)

	// Second non-terminal run with the same fingerprint violates the
	// partial unique index.
	_, err = client.Run.Create().
		SetID("run-fp-2").
		SetGoal("Investigate alert").
		SetAgentProfileID("sre").
		SetAlertFingerprint("fp-abc").
		Save(ctx)
	require.Error(t, err)

	// Terminal runs do not participate in the index.
	_, err = client.Run.Create().
		SetID("run-fp-3").
		SetGoal("Investigate alert").
		SetAgentProfileID("sre").
		SetAlertFingerprint("fp-abc").
		SetStatus("completed").
		Save(ctx)
	require.NoError(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_SSLMODE", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clearEnv := func(t *testing.T) {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
		t.Cleanup(func() {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
		})
	}

	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "ranger", cfg.User)
		assert.Equal(t, "ranger", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
	})

	t.Run("custom values", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_USER", "admin")
		os.Setenv("DB_PASSWORD", "secret")
		os.Setenv("DB_NAME", "production")
		os.Setenv("DB_SSLMODE", "require")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "admin", cfg.User)
		assert.Equal(t, "production", cfg.Database)
		assert.Equal(t, "require", cfg.SSLMode)
	})

	t.Run("invalid DB_PORT", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("DB_PORT", "invalid")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})

	t.Run("DATABASE_URL takes precedence", func(t *testing.T) {
		clearEnv(t)
		os.Setenv("DATABASE_URL", "postgres://u:p@db:5432/runs?sslmode=disable")
		os.Setenv("DB_HOST", "ignored")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "postgres://u:p@db:5432/runs?sslmode=disable", cfg.DSN())
	})
}

func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	require.NotNil(t, health)

	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000), "response time should be less than 1 second for a local ping")

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]interface{}
	err = json.Unmarshal(jsonBytes, &jsonData)
	require.NoError(t, err)

	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.Less(t, responseTime, float64(1000000), "response_time_ms should be in milliseconds, not nanoseconds")

	waitDuration, ok := jsonData["wait_duration_ms"].(float64)
	require.True(t, ok, "wait_duration_ms should be a number")
	assert.GreaterOrEqual(t, waitDuration, float64(0))
}
