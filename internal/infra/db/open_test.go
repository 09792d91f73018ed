package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConnectionConfig(t *testing.T) {
	cfg := DefaultConnectionConfig()

	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 10, cfg.MaxIdleConns)
	assert.Equal(t, 1*time.Hour, cfg.ConnMaxLifetime)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxIdleTime)
}

func TestConnectionConfigFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want ConnectionConfig
	}{
		{
			name: "defaults when unset",
			env:  map[string]string{},
			want: DefaultConnectionConfig(),
		},
		{
			name: "custom values",
			env: map[string]string{
				"DB_MAX_OPEN_CONNS":     "100",
				"DB_MAX_IDLE_CONNS":     "50",
				"DB_CONN_MAX_LIFETIME":  "2h",
				"DB_CONN_MAX_IDLE_TIME": "45m",
			},
			want: ConnectionConfig{
				MaxOpenConns:    100,
				MaxIdleConns:    50,
				ConnMaxLifetime: 2 * time.Hour,
				ConnMaxIdleTime: 45 * time.Minute,
			},
		},
		{
			name: "invalid values fall back to defaults",
			env: map[string]string{
				"DB_MAX_OPEN_CONNS":    "-10",
				"DB_MAX_IDLE_CONNS":    "0",
				"DB_CONN_MAX_LIFETIME": "0s",
			},
			want: DefaultConnectionConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			assert.Equal(t, tt.want, ConnectionConfigFromEnv())
		})
	}
}

// Integration test, runs only when a real database is reachable.
func TestOpen_SuccessfulConnection(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	db := Open()
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("database connection failed: %v", err)
	}
}

// Note: Open() with a missing DATABASE_URL calls log.Fatal, which would
// terminate the test process; that path is covered by deployment checks.
