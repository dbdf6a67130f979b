package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand(cfg *ServerCmdConfig) *cobra.Command {
	cmd := &cobra.Command{Use: "test", Run: func(cmd *cobra.Command, args []string) {}}
	AddCommonFlags(cmd.Flags(), cfg)
	AddServerFlags(cmd.Flags(), cfg)
	return cmd
}

func TestLoadDefaults(t *testing.T) {
	var cfg ServerCmdConfig
	cmd := newTestCommand(&cfg)
	require.NoError(t, cmd.Execute())

	loader := NewConfigLoader()
	require.NoError(t, loader.InitializeConfig(cmd))
	require.NoError(t, loader.Load(&cfg))

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.DB.PrepareStmt)
	assert.Equal(t, 25, cfg.DB.Pool.MaxOpenConnections)
	assert.Equal(t, time.Hour, cfg.CronJobs.PurgeInterval)
	assert.Equal(t, 30*24*time.Hour, cfg.CronJobs.DeletedRetention)
}

func TestLoadConfigFile(t *testing.T) {
	content := `
[server]
port = 9091
graceful-shutdown = "5s"

[db]
data-source = "postgres://localhost:5432/sanchara"

[cronjobs]
enable = false
`
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	var cfg ServerCmdConfig
	cmd := newTestCommand(&cfg)
	cmd.SetArgs([]string{"--config", path})
	require.NoError(t, cmd.Execute())

	loader := NewConfigLoader()
	require.NoError(t, loader.InitializeConfig(cmd))
	require.NoError(t, loader.Load(&cfg))

	assert.Equal(t, 9091, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.GracefulShutdown)
	assert.Equal(t, "postgres://localhost:5432/sanchara", cfg.DB.DataSource)
	assert.False(t, cfg.CronJobs.Enable)
}
