package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"kitchenpos/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := cmd.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 3*time.Second, cfg.PurgomalumTimeout)
	assert.Equal(t, "0 * * * * *", cfg.MenuAuditSchedule)
}

func TestLoadConfig_MissingFileIsIgnored(t *testing.T) {
	_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
}

func TestLoadConfig_FileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http_port: "9090"
db_host: db.internal
purgomalum_timeout: 5s
delivery_exchange: riders
`), 0o600))

	t.Setenv("DB_HOST", "override.internal")
	t.Setenv("PURGOMALUM_TIMEOUT", "750ms")

	cfg, err := cmd.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "override.internal", cfg.DBHost)
	assert.Equal(t, 750*time.Millisecond, cfg.PurgomalumTimeout)
	assert.Equal(t, "riders", cfg.DeliveryExchange)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTPAddr())
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	t.Setenv("PURGOMALUM_TIMEOUT", "soon")

	_, err := cmd.LoadConfig("")

	require.Error(t, err)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_port: ["), 0o600))

	_, err := cmd.LoadConfig(path)

	require.Error(t, err)
}

func TestConfig_DSN(t *testing.T) {
	cfg := cmd.Config{
		DBHost: "localhost", DBPort: "5432", DBUser: "pos", DBPassword: "secret", DBName: "kitchenpos", DBSslMode: "disable",
	}

	assert.Equal(t, "host=localhost port=5432 user=pos password=secret dbname=kitchenpos sslmode=disable", cfg.DSN())
}
