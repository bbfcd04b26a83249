package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvbrowse/kvcore/backend"
	"github.com/kvbrowse/kvcore/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	settings, err := config.Load("", nil)
	require.NoError(t, err)

	kind, err := settings.Kind()
	require.NoError(t, err)
	assert.Equal(t, backend.Redis, kind)
	assert.Equal(t, config.TransportAuto, settings.Transport)
	assert.Equal(t, 10, settings.PageSize)
	assert.Equal(t, 5*time.Second, settings.DialTimeout)
	assert.Equal(t, "127.0.0.1:6379", settings.Endpoint(kind))
}

func TestLoad_FileAndFlags(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "kvcore.yaml")
	require.NoError(t, os.WriteFile(file, []byte(
		"backend: etcd\n"+
			"endpoints: [\"127.0.0.1:2379\", \"127.0.0.1:22379\"]\n"+
			"dial_timeout: 2s\n"+
			"page_size: 50\n"), 0o600))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("backend", "redis", "")
	flags.Int("page-size", 10, "")
	require.NoError(t, flags.Parse([]string{"--page-size", "25"}))

	settings, err := config.Load(file, flags)
	require.NoError(t, err)

	assert.Equal(t, "etcd", settings.Backend)
	assert.Equal(t, []string{"127.0.0.1:2379", "127.0.0.1:22379"}, settings.Endpoints)
	assert.Equal(t, 2*time.Second, settings.DialTimeout)
	assert.Equal(t, 25, settings.PageSize)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("KVCORE_BACKEND", "memcached")
	t.Setenv("KVCORE_ADDRESS", "cache:11211")

	settings, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "memcached", settings.Backend)
	assert.Equal(t, "cache:11211", settings.Endpoint(backend.Memcached))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := config.Settings{Backend: "redis", Transport: config.TransportGoRedis, PageSize: 10} //nolint:exhaustruct

	tests := []struct {
		name   string
		modify func(*config.Settings)
		ok     bool
	}{
		{"valid", func(*config.Settings) {}, true},
		{"unknown backend", func(s *config.Settings) { s.Backend = "mongo" }, false},
		{"unknown transport", func(s *config.Settings) { s.Transport = "udp" }, false},
		{"goredis for memcached", func(s *config.Settings) { s.Backend = "memcached" }, false},
		{"goredis for embedded", func(s *config.Settings) { s.Backend = "lmdb" }, false},
		{"zero page size", func(s *config.Settings) { s.PageSize = 0 }, false},
		{"negative timeout", func(s *config.Settings) { s.IOTimeout = -time.Second }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			settings := valid
			tc.modify(&settings)

			err := settings.Validate()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, config.ErrInvalid)
			}
		})
	}
}
