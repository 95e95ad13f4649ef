package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newTestViper())
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, CatalogSourceFile, cfg.Catalog.Source)
	assert.Equal(t, "./data/countries.json", cfg.Catalog.Path)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 4, cfg.Quiz.OptionCount)
	assert.Equal(t, 10, cfg.Quiz.DefaultCount)
	assert.Equal(t, "https://flagcdn.com/w320", cfg.Flags.BaseURL)
	assert.Empty(t, cfg.Redis.Address)
}

func TestFromViper_EnvOverrides(t *testing.T) {
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("CATALOG_SOURCE", "HTTP")
	t.Setenv("CATALOG_URL", "http://example.test/countries.json")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SERVER_READ_TIMEOUT", "5s")

	cfg, err := fromViper(newTestViper())
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, CatalogSourceHTTP, cfg.Catalog.Source)
	assert.Equal(t, "http://example.test/countries.json", cfg.Catalog.URL)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg, err := fromViper(newTestViper())
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown source", func(c *Config) { c.Catalog.Source = "ftp" }},
		{"http without url", func(c *Config) { c.Catalog.Source = CatalogSourceHTTP }},
		{"database without name", func(c *Config) { c.Catalog.Source = CatalogSourceDatabase }},
		{"file without path", func(c *Config) { c.Catalog.Path = "" }},
		{"single option", func(c *Config) { c.Quiz.OptionCount = 1 }},
		{"default above max", func(c *Config) { c.Quiz.DefaultCount = 100 }},
		{"zero ttl", func(c *Config) { c.Session.TTL = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_GetDSN(t *testing.T) {
	cfg := &Config{DB: DBConfig{Driver: "oracle", Host: "db", Port: 1521, User: "u", Password: "p", DBName: "FREEPDB1"}}
	assert.Equal(t, "oracle://u:p@db:1521/FREEPDB1", cfg.GetDSN())

	cfg.DB.Driver = "pgx"
	cfg.DB.Port = 5432
	assert.Equal(t, "postgres://u:p@db:5432/FREEPDB1?sslmode=disable", cfg.GetDSN())
}
