package internal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"line-relay/domain"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type Config struct {
	Host                 string        `env:"HOST,default=0.0.0.0"`
	Port                 int           `env:"PORT,required=true" validate:"min=1,max=65535"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	AutoDelete           bool          `env:"AUTO_DELETE,default=true"`
	AutoDeleteTime       string        `env:"AUTO_DELETE_TIME,default=7d"`
	LimitMailbox         *int          `env:"LIMIT_MAILBOX" validate:"omitempty,min=1"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64" validate:"min=1"`
	DeliveryTimeout      time.Duration `env:"DELIVERY_TIMEOUT,default=2s" validate:"gt=0"`
	MaxContentLength     int           `env:"MAX_CONTENT_LENGTH,default=4096" validate:"min=0"`
	KeepSeatOnDisconnect bool          `env:"KEEP_SEAT_ON_DISCONNECT,default=false"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=1s" validate:"gt=0"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s" validate:"gt=0"`
	GCInterval           time.Duration `env:"GC_INTERVAL,default=10m" validate:"gt=0"`
	GCDiscardRatio       float64       `env:"GC_DISCARD_RATIO,default=0.5" validate:"gt=0,lt=1"`
	StatsInterval        time.Duration `env:"STATS_INTERVAL,default=1m" validate:"gt=0"`
	DebugPort            int           `env:"DEBUG_PORT,default=8081" validate:"min=1,max=65535"`

	ServerName        string `env:"SERVER_NAME,default=line-relay"`
	ServerDescription string `env:"SERVER_DESCRIPTION"`
	AdminContact      string `env:"ADMIN_CONTACT"`
	ServerLocation    string `env:"SERVER_LOCATION"`
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return config, Validate(config)
}

func Validate(config Config) error {
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := config.Retention(); err != nil {
		return err
	}
	return nil
}

// Retention is the expiry applied to lines and mailboxes, zero when AUTO_DELETE is off.
func (c Config) Retention() (time.Duration, error) {
	if !c.AutoDelete {
		return 0, nil
	}
	return ParseRetention(c.AutoDeleteTime)
}

func (c Config) Profile() domain.Profile {
	return domain.Profile{
		ServerName:        c.ServerName,
		ServerDescription: c.ServerDescription,
		AdminContact:      c.AdminContact,
		ServerLocation:    c.ServerLocation,
	}
}

// ParseRetention accepts time.ParseDuration syntax plus a leading day
// component: "7d", "1d12h", "90m".
func ParseRetention(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	var total time.Duration

	if i := strings.IndexByte(value, 'd'); i >= 0 {
		days, err := strconv.Atoi(value[:i])
		if err != nil {
			return 0, fmt.Errorf("AUTO_DELETE_TIME has an invalid day count, got %q", value)
		}
		total = time.Duration(days) * 24 * time.Hour
		value = value[i+1:]
	}
	if value != "" {
		rest, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("AUTO_DELETE_TIME is not a duration: %w", err)
		}
		total += rest
	}
	if total < time.Second {
		return 0, fmt.Errorf("AUTO_DELETE_TIME must be at least one second, got %s", total)
	}
	return total, nil
}
