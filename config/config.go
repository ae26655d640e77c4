package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App       AppConfig       `yaml:"app"`
	HTTP      HTTPConfig      `yaml:"http"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Inventory InventoryConfig `yaml:"inventory"`
}

type AppConfig struct {
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`
}

type HTTPConfig struct {
	Address                string `yaml:"address"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
}

func (h HTTPConfig) ShutdownTimeout() time.Duration {
	return time.Duration(h.ShutdownTimeoutSeconds) * time.Second
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers    []string `yaml:"brokers"`
	AuditTopic string   `yaml:"audit_topic"`
	GroupID    string   `yaml:"group_id"`
}

// Enabled reports whether audit events should be published at all.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.AuditTopic != ""
}

type InventoryConfig struct {
	SeedSampleData  bool   `yaml:"seed_sample_data"`
	IDPrefix        string `yaml:"id_prefix"`
	IDStart         int64  `yaml:"id_start"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
}

func (i InventoryConfig) CacheTTL() time.Duration {
	return time.Duration(i.CacheTTLSeconds) * time.Second
}

func Default() *Config {
	return &Config{
		App: AppConfig{Env: "development", LogLevel: "info"},
		HTTP: HTTPConfig{
			Address:                ":8080",
			ShutdownTimeoutSeconds: 5,
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Kafka: KafkaConfig{
			AuditTopic: "flight-audit",
			GroupID:    "flight-audit-worker",
		},
		Inventory: InventoryConfig{
			SeedSampleData:  true,
			IDPrefix:        "FLT",
			IDStart:         1000,
			CacheTTLSeconds: 30,
		},
	}
}

// LoadConfig reads the YAML file at path on top of the defaults, then applies
// environment overrides (a .env file in the working directory is honoured).
// A missing file is not an error; the defaults and environment are used.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var errs []error

	setString(&c.App.Env, "APP_ENV")
	setString(&c.App.LogLevel, "LOG_LEVEL")
	setString(&c.HTTP.Address, "HTTP_ADDRESS")
	if v := strings.TrimSpace(os.Getenv("REDIS_ADDR")); v != "" {
		c.Redis.Addr = v
		c.Redis.Enabled = true
	}
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = splitAndTrim(v)
	}
	setString(&c.Kafka.AuditTopic, "KAFKA_AUDIT_TOPIC")
	if v := os.Getenv("SEED_SAMPLE_DATA"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid SEED_SAMPLE_DATA: %w", err))
		} else {
			c.Inventory.SeedSampleData = b
		}
	}

	return errors.Join(errs...)
}

func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.Address == "" {
		errs = append(errs, errors.New("http.address is required"))
	}
	if c.HTTP.ShutdownTimeoutSeconds <= 0 {
		errs = append(errs, errors.New("http.shutdown_timeout_seconds must be > 0"))
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		errs = append(errs, errors.New("redis.addr is required when redis is enabled"))
	}
	if c.Inventory.IDPrefix == "" {
		errs = append(errs, errors.New("inventory.id_prefix is required"))
	}
	if c.Inventory.IDStart < 0 {
		errs = append(errs, errors.New("inventory.id_start must be >= 0"))
	}
	if c.Inventory.CacheTTLSeconds <= 0 {
		errs = append(errs, errors.New("inventory.cache_ttl_seconds must be > 0"))
	}
	return errors.Join(errs...)
}

func setString(target *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*target = v
	}
}

func splitAndTrim(v string) []string {
	raw := strings.Split(v, ",")
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		out = append(out, r)
	}
	return out
}
