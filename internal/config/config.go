package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/subosito/gotenv"
	"gopkg.in/yaml.v3"

	"AOSocial/internal/domain"
)

const (
	defaultTimezone = "UTC"
	defaultEnvFile  = ".env"

	configPathEnv     = "AOSOCIAL_CONFIG"
	envFileEnv        = "AOSOCIAL_ENV_FILE"
	logLevelEnv       = "AOSOCIAL_LOG_LEVEL"
	logFormatEnv      = "AOSOCIAL_LOG_FORMAT"
	walletEnv         = "AOSOCIAL_WALLET"
	cuURLEnv          = "AOSOCIAL_CU_URL"
	relayURLEnv       = "AOSOCIAL_RELAY_URL"
	graphQLURLEnv     = "AOSOCIAL_GRAPHQL_URL"
	storageBackendEnv = "AOSOCIAL_STORAGE"
	sqlitePathEnv     = "AOSOCIAL_SQLITE_PATH"
	valkeyAddrEnv     = "AOSOCIAL_VALKEY_ADDR"
	valkeyPasswordEnv = "AOSOCIAL_VALKEY_PASSWORD"
)

// Storage backends for the profile store.
const (
	BackendSQLite = "sqlite"
	BackendValkey = "valkey"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Wallet    WalletConfig    `yaml:"wallet"`
	AO        AOConfig        `yaml:"ao"`
	GraphQL   GraphQLConfig   `yaml:"graphql"`
	Storage   StorageConfig   `yaml:"storage"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Tokens    []domain.Token  `yaml:"tokens"`
}

// LoggingConfig selects level and output format (text or json).
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// WalletConfig names the wallet address acting as profile owner.
type WalletConfig struct {
	Address string `yaml:"address"`
}

// AOConfig points at the compute unit used for dry runs and at the signing
// relay that forwards wallet-signed messages.
type AOConfig struct {
	CUURL    string        `yaml:"cuUrl"`
	RelayURL string        `yaml:"relayUrl"`
	Timeout  time.Duration `yaml:"timeout"`
}

// GraphQLConfig describes the gateway used to look up processes.
type GraphQLConfig struct {
	URL string `yaml:"url"`
}

// StorageConfig selects where the current profile is kept.
type StorageConfig struct {
	Backend    string       `yaml:"backend"`
	SQLitePath string       `yaml:"sqlitePath"`
	Valkey     ValkeyConfig `yaml:"valkey"`
}

// ValkeyConfig holds connection details for the valkey backend.
type ValkeyConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	Prefix   string `yaml:"prefix"`
}

// SchedulerConfig defines when balances are refreshed by the watcher.
type SchedulerConfig struct {
	CronExpression string         `yaml:"cronExpression"`
	Timezone       string         `yaml:"timezone"`
	location       *time.Location `yaml:"-"`
}

// Location resolves the scheduler timezone string to a time.Location.
func (s SchedulerConfig) Location() *time.Location {
	if s.location != nil {
		return s.location
	}
	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

// Load reads the YAML file named by AOSOCIAL_CONFIG (if any), the dotenv
// file, and applies environment overrides.
func Load() Config {
	return LoadFile(os.Getenv(configPathEnv))
}

// LoadFile is Load with an explicit YAML path; an empty path means defaults only.
func LoadFile(path string) Config {
	cfg := defaultConfig()

	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	loadEnvFile()
	cfg.applyEnvOverrides()
	cfg.bindTimezone()

	return cfg
}

func loadEnvFile() {
	path := os.Getenv(envFileEnv)
	if path == "" {
		path = defaultEnvFile
	}
	if err := gotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: cannot load env file %s: %v", path, err)
	}
}

func (c *Config) applyEnvOverrides() {
	overrides := []struct {
		env   string
		field *string
	}{
		{logLevelEnv, &c.Logging.Level},
		{logFormatEnv, &c.Logging.Format},
		{walletEnv, &c.Wallet.Address},
		{cuURLEnv, &c.AO.CUURL},
		{relayURLEnv, &c.AO.RelayURL},
		{graphQLURLEnv, &c.GraphQL.URL},
		{storageBackendEnv, &c.Storage.Backend},
		{sqlitePathEnv, &c.Storage.SQLitePath},
		{valkeyAddrEnv, &c.Storage.Valkey.Address},
		{valkeyPasswordEnv, &c.Storage.Valkey.Password},
	}
	for _, o := range overrides {
		if v := strings.TrimSpace(os.Getenv(o.env)); v != "" {
			*o.field = v
		}
	}
}

func (c *Config) bindTimezone() {
	tz := c.Scheduler.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("config: unknown timezone %s, reverting to %s", tz, defaultTimezone)
		loc, _ = time.LoadLocation(defaultTimezone)
	}
	c.Scheduler.location = loc
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Wallet.Address != "" {
		base.Wallet.Address = override.Wallet.Address
	}

	if override.AO.CUURL != "" {
		base.AO.CUURL = override.AO.CUURL
	}
	if override.AO.RelayURL != "" {
		base.AO.RelayURL = override.AO.RelayURL
	}
	if override.AO.Timeout > 0 {
		base.AO.Timeout = override.AO.Timeout
	}

	if override.GraphQL.URL != "" {
		base.GraphQL.URL = override.GraphQL.URL
	}

	if override.Storage.Backend != "" {
		base.Storage.Backend = override.Storage.Backend
	}
	if override.Storage.SQLitePath != "" {
		base.Storage.SQLitePath = override.Storage.SQLitePath
	}
	if override.Storage.Valkey.Address != "" {
		base.Storage.Valkey = override.Storage.Valkey
	}

	if override.Scheduler.CronExpression != "" {
		base.Scheduler.CronExpression = override.Scheduler.CronExpression
	}
	if override.Scheduler.Timezone != "" {
		base.Scheduler.Timezone = override.Scheduler.Timezone
	}

	if len(override.Tokens) > 0 {
		base.Tokens = override.Tokens
	}

	return base
}

func defaultConfig() Config {
	tz, _ := time.LoadLocation(defaultTimezone)
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		AO: AOConfig{
			CUURL:   "https://cu.ao-testnet.xyz",
			Timeout: 20 * time.Second,
		},
		GraphQL: GraphQLConfig{URL: "https://arweave.net/graphql"},
		Storage: StorageConfig{
			Backend:    BackendSQLite,
			SQLitePath: "data/aosocial.db",
			Valkey:     ValkeyConfig{Prefix: "aosocial:profile:"},
		},
		Scheduler: SchedulerConfig{CronExpression: "*/10 * * * *", Timezone: defaultTimezone, location: tz},
		Tokens: []domain.Token{
			{Name: "AOCRED-Test", Process: "Sa0iBLPNyJQrwpTTG-tWLQU-1QeUAJA73DdxGGiKoJc", Denomination: 3},
			{Name: "TRUNK", Process: "wOrb8b_V8QixWyXZub48Ki5B6OIDyf_p1ngoonsaRpQ", Denomination: 3},
		},
	}
}
