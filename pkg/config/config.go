package config

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Redis struct {
		// Empty Addr keeps rate-limit counters in process memory.
		Addr     string `env:"REDIS_ADDR"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB" env-default:"0"`
	}
	Instagram struct {
		AppID             string        `env:"INSTAGRAM_APP_ID" env-required:"true"`
		AppSecret         string        `env:"INSTAGRAM_APP_SECRET" env-required:"true"`
		RedirectURI       string        `env:"INSTAGRAM_REDIRECT_URI" env-required:"true"`
		GraphURL          string        `env:"INSTAGRAM_GRAPH_URL" env-default:"https://graph.facebook.com/v19.0"`
		DialogURL         string        `env:"INSTAGRAM_DIALOG_URL" env-default:"https://www.facebook.com/v19.0/dialog/oauth"`
		MaxPosts          int           `env:"INSTAGRAM_MAX_POSTS" env-default:"500"`
		RequestsPerSecond float64       `env:"INSTAGRAM_REQUESTS_PER_SECOND" env-default:"10"`
		Burst             int           `env:"INSTAGRAM_BURST" env-default:"20"`
		Timeout           time.Duration `env:"INSTAGRAM_HTTP_TIMEOUT" env-default:"30s"`
	}
	Sync struct {
		Schedule           string        `env:"SYNC_SCHEDULE" env-default:"0 */6 * * *"`
		Timezone           string        `env:"SYNC_TIMEZONE" env-default:"UTC"`
		Timeout            time.Duration `env:"SYNC_TIMEOUT" env-default:"10m"`
		Concurrency        int           `env:"SYNC_CONCURRENCY" env-default:"10"`
		InsightConcurrency int           `env:"SYNC_INSIGHT_CONCURRENCY" env-default:"5"`
		DisplayLimit       int           `env:"SYNC_DISPLAY_LIMIT" env-default:"200"`
	}
	TokenRefresh struct {
		Schedule string `env:"TOKEN_REFRESH_SCHEDULE" env-default:"0 3 * * *"`
	}
	RateLimit struct {
		ConnectMax    int           `env:"RATE_LIMIT_CONNECT_MAX" env-default:"5"`
		ConnectWindow time.Duration `env:"RATE_LIMIT_CONNECT_WINDOW" env-default:"15m"`
		SweepInterval time.Duration `env:"RATE_LIMIT_SWEEP_INTERVAL" env-default:"5m"`
	}
	Webhook struct {
		// Purge webhooks are accepted unsigned when Secret is empty.
		Secret string `env:"WEBHOOK_SECRET"`
	}
	Telegram struct {
		// Alerts are disabled when Token is empty.
		Token   string `env:"TELEGRAM_TOKEN"`
		Channel int64  `env:"TELEGRAM_CHANNEL"`
	}
}

var (
	once    sync.Once
	cfg     *Config
	loadErr error
)

// New reads the configuration from the environment once per process.
// Missing Instagram app credentials abort initialization.
func New() (*Config, error) {
	once.Do(func() {
		cfg, loadErr = Load()
	})
	return cfg, loadErr
}

// Load reads the configuration without memoising it.
func Load() (*Config, error) {
	c := &Config{}
	if err := cleanenv.ReadEnv(c); err != nil {
		help, _ := cleanenv.GetDescription(c, nil)
		return nil, fmt.Errorf("failed to read configuration: %w\n%s", err, help)
	}
	if c.Instagram.AppID == "" || c.Instagram.AppSecret == "" || c.Instagram.RedirectURI == "" {
		return nil, errors.New("INSTAGRAM_APP_ID, INSTAGRAM_APP_SECRET and INSTAGRAM_REDIRECT_URI must be set")
	}
	return c, nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}
