package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	DataDir  string
	DBPath   string
	StateDir string
	LogPath  string
	Storage  StorageConfig
	Log      LogConfig
	HTTP     HTTPConfig
	API      APIConfig
	Location LocationConfig
	Quran    QuranConfig
	Server   ServerConfig
}

type StorageConfig struct {
	Backend string
	Redis   RedisConfig
}

type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
}

type LogConfig struct {
	Level  string
	Format string
}

type HTTPConfig struct {
	Timeout   time.Duration
	UserAgent string
}

type APIConfig struct {
	Aladhan   string
	Nominatim string
	MP3Quran  string
	QuranCom  string
}

// LocationConfig is the fix the device locator reports. A terminal has no
// positioning sensor, so the fix comes from config, env or flags.
type LocationConfig struct {
	HasFix    bool
	Latitude  float64
	Longitude float64
}

type QuranConfig struct {
	Player      string
	AutoAdvance bool
}

type ServerConfig struct {
	Addr string
}

// New returns the default configuration rooted at dataDir without reading
// any file or environment.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	return decode(newViper(), dataDir)
}

// Load layers <dataDir>/.env, <dataDir>/mihrab.yaml and MIHRAB_* variables
// over the defaults.
func Load(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	if err := godotenv.Load(filepath.Join(dataDir, ".env")); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	v := newViper()
	v.SetEnvPrefix("MIHRAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("mihrab")
	v.SetConfigType("yaml")
	v.AddConfigPath(dataDir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}
	return decode(v, dataDir)
}

// DefaultDataDir resolves the per-user data directory.
func DefaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "mihrab")
	}
	return ".mihrab"
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("storage.backend", BackendSQLite)
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.username", "")
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	v.SetDefault("http.timeout", 15*time.Second)
	v.SetDefault("http.userAgent", "mihrab/1.0 (+https://github.com/mihrab)")

	v.SetDefault("api.aladhan", "https://api.aladhan.com")
	v.SetDefault("api.nominatim", "https://nominatim.openstreetmap.org")
	v.SetDefault("api.mp3quran", "https://mp3quran.net")
	v.SetDefault("api.qurancom", "https://api.quran.com")

	v.SetDefault("location.latitude", "")
	v.SetDefault("location.longitude", "")

	v.SetDefault("quran.player", "")
	v.SetDefault("quran.autoAdvance", false)

	v.SetDefault("server.addr", "127.0.0.1:8080")
	return v
}

func decode(v *viper.Viper, dataDir string) (Config, error) {
	cfg := Config{
		DataDir:  dataDir,
		DBPath:   filepath.Join(dataDir, "mihrab.db"),
		StateDir: filepath.Join(dataDir, "state"),
		LogPath:  filepath.Join(dataDir, "mihrab.log"),
		Storage: StorageConfig{
			Backend: strings.ToLower(strings.TrimSpace(v.GetString("storage.backend"))),
			Redis: RedisConfig{
				Addr:     v.GetString("storage.redis.addr"),
				Username: v.GetString("storage.redis.username"),
				Password: v.GetString("storage.redis.password"),
				DB:       v.GetInt("storage.redis.db"),
			},
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		HTTP: HTTPConfig{
			Timeout:   v.GetDuration("http.timeout"),
			UserAgent: v.GetString("http.userAgent"),
		},
		API: APIConfig{
			Aladhan:   v.GetString("api.aladhan"),
			Nominatim: v.GetString("api.nominatim"),
			MP3Quran:  v.GetString("api.mp3quran"),
			QuranCom:  v.GetString("api.qurancom"),
		},
		Quran: QuranConfig{
			Player:      v.GetString("quran.player"),
			AutoAdvance: v.GetBool("quran.autoAdvance"),
		},
		Server: ServerConfig{Addr: v.GetString("server.addr")},
	}

	switch cfg.Storage.Backend {
	case BackendSQLite, BackendFile, BackendRedis, BackendMemory:
	default:
		return Config{}, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if cfg.HTTP.Timeout <= 0 {
		return Config{}, fmt.Errorf("http timeout must be positive")
	}

	lat := strings.TrimSpace(v.GetString("location.latitude"))
	lon := strings.TrimSpace(v.GetString("location.longitude"))
	if lat != "" && lon != "" {
		cfg.Location = LocationConfig{HasFix: true, Latitude: v.GetFloat64("location.latitude"), Longitude: v.GetFloat64("location.longitude")}
	}
	return cfg, nil
}

// WithFix overrides the configured device fix.
func (c Config) WithFix(latitude, longitude float64) Config {
	c.Location = LocationConfig{HasFix: true, Latitude: latitude, Longitude: longitude}
	return c
}

// WithBackend overrides the storage backend when backend is non-empty.
func (c Config) WithBackend(backend string) (Config, error) {
	backend = strings.ToLower(strings.TrimSpace(backend))
	if backend == "" {
		return c, nil
	}
	switch backend {
	case BackendSQLite, BackendFile, BackendRedis, BackendMemory:
		c.Storage.Backend = backend
		return c, nil
	}
	return c, fmt.Errorf("unknown storage backend %q", backend)
}
