package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is applied to every environment variable consumed by the bridge.
const EnvPrefix = "BRIDGE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv        = "BRIDGE_APP_ENV"
	EnvDBDSN         = "BRIDGE_DB_DSN"
	EnvShopifyStore  = "BRIDGE_SHOPIFY_STORE_URL"
	EnvShopifyToken  = "BRIDGE_SHOPIFY_ACCESS_TOKEN"
	EnvWebhookSecret = "BRIDGE_WEBHOOK_SECRET"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Shopify ShopifyConfig
	Webhook WebhookConfig
	Partner PartnerConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Shopify.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BRIDGE_APP_ENV" required:"true"`
	Port         string `envconfig:"BRIDGE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"BRIDGE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BRIDGE_LOG_WARN_STACK" default:"false"`
	AutoMigrate  bool   `envconfig:"BRIDGE_AUTO_MIGRATE" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"BRIDGE_DB_DSN" required:"true"`
	Driver string `envconfig:"BRIDGE_DB_DRIVER" default:"postgres"`

	MaxOpenConns    int           `envconfig:"BRIDGE_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"BRIDGE_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"BRIDGE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BRIDGE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// ShopifyConfig points the catalog fetch at the store's Admin API.
type ShopifyConfig struct {
	StoreURL    string        `envconfig:"BRIDGE_SHOPIFY_STORE_URL" required:"true"`
	AccessToken string        `envconfig:"BRIDGE_SHOPIFY_ACCESS_TOKEN" required:"true"`
	APIVersion  string        `envconfig:"BRIDGE_SHOPIFY_API_VERSION" default:"2024-01"`
	Timeout     time.Duration `envconfig:"BRIDGE_SHOPIFY_TIMEOUT" default:"8s"`
}

func (s ShopifyConfig) validate() error {
	if strings.TrimSpace(s.StoreURL) == "" {
		return fmt.Errorf("shopify store url is required")
	}
	if strings.TrimSpace(s.AccessToken) == "" {
		return fmt.Errorf("shopify access token is required")
	}
	return nil
}

// WebhookConfig carries the HMAC shared secret and the reference tags that
// mark an order as belonging to the partner.
type WebhookConfig struct {
	Secret       string   `envconfig:"BRIDGE_WEBHOOK_SECRET" required:"true"`
	AcceptedRefs []string `envconfig:"BRIDGE_WEBHOOK_ACCEPTED_REFS" default:"bacqyard,bacqyard_test"`
}

// PartnerConfig controls the optional outbound forward of matched orders.
type PartnerConfig struct {
	ForwardURL     string        `envconfig:"BRIDGE_PARTNER_FORWARD_URL"`
	ForwardEnabled bool          `envconfig:"BRIDGE_PARTNER_FORWARD_ENABLED" default:"false"`
	Timeout        time.Duration `envconfig:"BRIDGE_PARTNER_TIMEOUT" default:"5s"`
}
