// Package config loads connection settings from a config file, flags and
// KVCORE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kvbrowse/kvcore/backend"
)

// EnvPrefix prefixes every environment variable, e.g. KVCORE_BACKEND.
const EnvPrefix = "KVCORE"

// Transports selectable for RESP backends.
const (
	TransportAuto    = "auto"
	TransportTCP     = "tcp"
	TransportGoRedis = "goredis"
)

// ErrInvalid is the cause of every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Settings describe one backend connection.
type Settings struct {
	Backend string `mapstructure:"backend"`
	// Address is host:port of remote backends.
	Address string `mapstructure:"address"`
	// URL is a redis:// URL, used instead of Address when set.
	URL       string   `mapstructure:"url"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	DB        int      `mapstructure:"db"`
	Endpoints []string `mapstructure:"endpoints"`
	// Space is the tarantool space holding the pairs.
	Space string `mapstructure:"space"`
	// Path is the data directory of embedded stores. Empty keeps the store
	// in memory.
	Path string `mapstructure:"path"`
	// Transport selects how RESP backends are reached.
	Transport   string        `mapstructure:"transport"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
	IOTimeout   time.Duration `mapstructure:"io_timeout"`
	PageSize    int           `mapstructure:"page_size"`
	Env         string        `mapstructure:"env"`
	LogLevel    string        `mapstructure:"log_level"`
}

// Kind returns the parsed backend kind.
func (s Settings) Kind() (backend.Kind, error) {
	kind, err := backend.ParseKind(s.Backend)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return kind, nil
}

// Endpoint returns Address, or localhost with the kind's default port.
func (s Settings) Endpoint(kind backend.Kind) string {
	if s.Address != "" {
		return s.Address
	}

	return fmt.Sprintf("127.0.0.1:%d", kind.DefaultPort())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", "redis")
	v.SetDefault("transport", TransportAuto)
	v.SetDefault("space", "kv")
	v.SetDefault("dial_timeout", 5*time.Second)
	v.SetDefault("io_timeout", 30*time.Second)
	v.SetDefault("page_size", 10)
	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "")
}

// Load reads settings. Sources by precedence: flags that were set,
// environment, config file, defaults. file and flags may be empty.
func Load(file string, flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()

	setDefaults(v)

	if flags != nil {
		var bindErr error

		flags.VisitAll(func(flag *pflag.Flag) {
			if bindErr == nil {
				bindErr = v.BindPFlag(strings.ReplaceAll(flag.Name, "-", "_"), flag)
			}
		})

		if bindErr != nil {
			return Settings{}, fmt.Errorf("failed to bind flags: %w", bindErr)
		}
	}

	if file != "" {
		v.SetConfigFile(file)

		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// Validate checks field values.
func (s Settings) Validate() error {
	kind, err := s.Kind()
	if err != nil {
		return err
	}

	switch s.Transport {
	case TransportAuto, TransportTCP:
	case TransportGoRedis:
		if backend.TraitsOf(kind).Protocol != backend.ProtocolRESP || !kind.IsRemote() {
			return fmt.Errorf("%w: transport %s cannot reach %s", ErrInvalid, s.Transport, kind)
		}
	default:
		return fmt.Errorf("%w: unknown transport %q", ErrInvalid, s.Transport)
	}

	if s.PageSize <= 0 {
		return fmt.Errorf("%w: page_size must be positive", ErrInvalid)
	}

	if s.DialTimeout < 0 || s.IOTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalid)
	}

	return nil
}
