package internal

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestParseRetention(t *testing.T) {
	tests := []struct {
		value   string
		want    time.Duration
		wantErr bool
	}{
		{"30s", 30 * time.Second, false},
		{"15m", 15 * time.Minute, false},
		{"12h", 12 * time.Hour, false},
		{"7d", 7 * 24 * time.Hour, false},
		{"1d12h", 36 * time.Hour, false},
		{" 2d ", 48 * time.Hour, false},
		{"", 0, true},
		{"0s", 0, true},
		{"500ms", 0, true},
		{"xd", 0, true},
		{"-1d", 0, true},
		{"1d1x", 0, true},
		{"forever", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			req := require.New(t)

			got, err := ParseRetention(tt.value)

			if tt.wantErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	var config Config

	err := env.Unmarshal(env.EnvSet{
		"PORT":            "50051",
		"BADGER_FILEPATH": "/tmp/relay",
	}, &config)

	req.NoError(err)
	req.NoError(Validate(config))
	req.Equal("INFO", config.LogLevel)
	req.True(config.AutoDelete)
	req.Nil(config.LimitMailbox)
	req.Equal(2*time.Second, config.DeliveryTimeout)

	retention, err := config.Retention()
	req.NoError(err)
	req.Equal(7*24*time.Hour, retention)
}

func TestConfig_AutoDeleteDisabled(t *testing.T) {
	req := require.New(t)
	var config Config

	err := env.Unmarshal(env.EnvSet{
		"PORT":             "50051",
		"BADGER_FILEPATH":  "/tmp/relay",
		"AUTO_DELETE":      "false",
		"AUTO_DELETE_TIME": "not a duration",
		"LIMIT_MAILBOX":    "100",
		"SERVER_NAME":      "relay-eu",
		"ADMIN_CONTACT":    "admin@example.org",
	}, &config)

	req.NoError(err)
	req.NoError(Validate(config))
	retention, err := config.Retention()
	req.NoError(err)
	req.Zero(retention)
	req.Equal(100, *config.LimitMailbox)
	req.Equal("relay-eu", config.Profile().ServerName)
	req.Equal("admin@example.org", config.Profile().AdminContact)
}

func TestConfig_Invalid(t *testing.T) {
	tests := []struct {
		description string
		envSet      env.EnvSet
	}{
		{"Should fail on an unknown log level", env.EnvSet{"PORT": "1", "BADGER_FILEPATH": "/tmp/relay", "LOG_LEVEL": "LOUD"}},
		{"Should fail on a bad retention", env.EnvSet{"PORT": "1", "BADGER_FILEPATH": "/tmp/relay", "AUTO_DELETE_TIME": "soon"}},
		{"Should fail on a zero mailbox limit", env.EnvSet{"PORT": "1", "BADGER_FILEPATH": "/tmp/relay", "LIMIT_MAILBOX": "0"}},
		{"Should fail on a port out of range", env.EnvSet{"PORT": "70000", "BADGER_FILEPATH": "/tmp/relay"}},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			var config Config

			req.NoError(env.Unmarshal(tt.envSet, &config))
			req.Error(Validate(config))
		})
	}
}
