package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the application configuration. Values come from the yaml file
// and can be overridden by environment variables.
type Config struct {
	// Environment selects logger defaults (development or production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	HTTP struct {
		// Addr is the address the API server listens on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the keep-alive idle timeout
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout bounds the handling of a single request; description
		// generation and contact extraction call external services.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"45s" yaml:"requestTimeout"`
		// MaxHeaderBytes limits the size of request headers
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxBodyBytes limits the size of JSON request bodies
		MaxBodyBytes int64 `env:"HTTP_MAX_BODY_BYTES" env-default:"1048576" yaml:"maxBodyBytes"`
		// MetricsPath is where prometheus metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSOrigins lists the allowed browser origins; any origin is allowed when empty
		CORSOrigins []string `env:"HTTP_CORS_ORIGINS" env-separator:"," yaml:"corsOrigins"`
	} `yaml:"http"`

	Database struct {
		Username     string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		Password     string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		Host         string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		Port         int    `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		SslMode      string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		DatabaseName string `env:"DATABASE_NAME" env-default:"outreach" yaml:"name"`
		// MaxOpenConnections limits the size of the pgx pool
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections is the minimum number of pooled connections kept open
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	JWT struct {
		// PublicKey is the PEM encoded RSA key used to verify bearer tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is only needed by the jwt command to sign development tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	Worker struct {
		// MaxWorkers is the concurrency of the default River queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"50" yaml:"maxWorkers"`
		// MaxAttempts is how many times a fan-out or reply job is tried
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
	} `yaml:"worker"`

	Inbox struct {
		// BatchLimit is the number of write operations grouped in one transaction
		BatchLimit int `env:"INBOX_BATCH_LIMIT" env-default:"450" yaml:"batchLimit"`
		// Concurrency bounds how many campaigns are processed at once by maintenance routines
		Concurrency int `env:"INBOX_CONCURRENCY" env-default:"4" yaml:"concurrency"`
		// AutoReplyDelay is how long after a user message the automatic reply is posted
		AutoReplyDelay time.Duration `env:"INBOX_AUTO_REPLY_DELAY" env-default:"1s" yaml:"autoReplyDelay"`
		// AutoReplyText is the content of the automatic reply
		AutoReplyText string `env:"INBOX_AUTO_REPLY_TEXT" env-default:"Thanks for your message! How can I help?" yaml:"autoReplyText"` //nolint: lll
		// AvatarURL is the fallback profile picture base, the contact id is appended
		AvatarURL string `env:"INBOX_AVATAR_URL" env-default:"https://i.pravatar.cc/50?u=" yaml:"avatarUrl"`
	} `yaml:"inbox"`

	Campaign struct {
		// LaunchUniquePeriod is the window in which a second launch of the same campaign is deduplicated
		LaunchUniquePeriod time.Duration `env:"CAMPAIGN_LAUNCH_UNIQUE_PERIOD" env-default:"1m" yaml:"launchUniquePeriod"`
	} `yaml:"campaign"`

	LLM struct {
		// APIKey authenticates against the Gemini API
		APIKey string `env:"LLM_API_KEY" yaml:"apiKey"`
		// Model is the Gemini model used for descriptions
		Model string `env:"LLM_MODEL" env-default:"gemini-2.5-flash" yaml:"model"`
		// Timeout bounds a single generation call
		Timeout time.Duration `env:"LLM_TIMEOUT" env-default:"30s" yaml:"timeout"`
	} `yaml:"llm"`

	Contacts struct {
		// DownloadTimeout bounds fetching the contacts file from the CDN
		DownloadTimeout time.Duration `env:"CONTACTS_DOWNLOAD_TIMEOUT" env-default:"20s" yaml:"downloadTimeout"`
		// MaxFileBytes rejects larger contact files
		MaxFileBytes int64 `env:"CONTACTS_MAX_FILE_BYTES" env-default:"10485760" yaml:"maxFileBytes"`
	} `yaml:"contacts"`

	Tracing struct {
		// Endpoint is the OTLP/HTTP collector URL. Tracing is disabled when empty.
		Endpoint string `env:"TRACING_ENDPOINT" yaml:"endpoint"`
		// ServiceName is reported as the service.name resource attribute
		ServiceName string `env:"TRACING_SERVICE_NAME" env-default:"outreach" yaml:"serviceName"`
	} `yaml:"tracing"`

	// GracefulShutdownTimeout is how long in-flight requests and jobs get to finish on shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the yaml file at configPath and applies environment overrides.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
