package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Host: "localhost", Port: 5432, User: "roomies", DBName: "roomies", SSLMode: "disable"},
		JWT:      JWTConfig{AccessSecret: strings.Repeat("s", 32)},
		Storage:  StorageConfig{Type: StoragePostgres},
		Matching: MatchingConfig{SuggestionsLimit: 20, CompatibilityCacheTTL: time.Minute},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing db host", mutate: func(c *Config) { c.Database.Host = "" }, wantErr: "database host"},
		{name: "memory storage skips db", mutate: func(c *Config) {
			c.Storage.Type = StorageMemory
			c.Database = DatabaseConfig{}
		}},
		{name: "unknown storage", mutate: func(c *Config) { c.Storage.Type = "sqlite" }, wantErr: "unknown storage"},
		{name: "short secret", mutate: func(c *Config) { c.JWT.AccessSecret = "short" }, wantErr: "at least 32"},
		{name: "zero suggestions", mutate: func(c *Config) { c.Matching.SuggestionsLimit = 0 }, wantErr: "suggestions limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestGetDSN(t *testing.T) {
	c := validConfig()
	c.Database.Password = "secret"
	assert.Equal(t, "host=localhost port=5432 user=roomies password=secret dbname=roomies sslmode=disable", c.Database.GetDSN())
}

func TestIsDevelopment(t *testing.T) {
	c := validConfig()
	c.Server.Env = "development"
	assert.True(t, c.IsDevelopment())

	c.Server.Env = "production"
	assert.False(t, c.IsDevelopment())
}
