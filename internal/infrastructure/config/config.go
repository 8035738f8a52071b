package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Log      LogConfig
	Database DatabaseConfig
	Shipping ShippingConfig
	Catalog  CatalogConfig
	SMTP     SMTPConfig
	Admin    AdminConfig
	Payment  PaymentConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout           time.Duration
	WriteTimeout          time.Duration
	IdleTimeout           time.Duration
	MaxHeaderBytes        int
	MaxBodySize           int64
	RateLimitEnabled      bool
	RateLimitRequests     int
	RateLimitWindow       time.Duration
	AuthRateLimitRequests int
	AuthRateLimitWindow   time.Duration
	CORSAllowOrigins      []string
	CORSAllowMethods      []string
	CORSAllowHeaders      []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// DatabaseConfig holds the embedded order store settings
type DatabaseConfig struct {
	Path string // SQLite file path, or ":memory:" for tests
}

// ShippingConfig holds the carrier rate API settings and the fixed
// origin address rates are quoted from
type ShippingConfig struct {
	APIKey      string
	BaseURL     string
	Markup      float64 // multiplicative surcharge applied to every raw rate
	Timeout     time.Duration
	FromName    string
	FromStreet1 string
	FromCity    string
	FromState   string
	FromZip     string
	FromCountry string
	FromPhone   string
}

// CatalogConfig holds the spreadsheet catalog source settings
type CatalogConfig struct {
	SheetID     string
	APIKey      string
	BaseURL     string
	TTL         time.Duration // snapshot time-to-live
	Timeout     time.Duration
	ProductsTab string
	GalleryTab  string
}

// SMTPConfig holds outbound mail settings for order and contact notifications
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	OwnerEmail string
	Timeout    time.Duration
}

// AdminConfig holds the shared-secret admin credentials
type AdminConfig struct {
	Password string
	Secret   string
}

// PaymentConfig holds public payment hints surfaced to customers
type PaymentConfig struct {
	PayPalMeURL string
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with GRX_ prefix (e.g., GRX_SHIPPING_APIKEY)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("GRX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:           v.GetDuration("http.read_timeout"),
			WriteTimeout:          v.GetDuration("http.write_timeout"),
			IdleTimeout:           v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:        v.GetInt("http.max_header_bytes"),
			MaxBodySize:           v.GetInt64("http.max_body_size"),
			RateLimitEnabled:      v.GetBool("http.rate_limit_enabled"),
			RateLimitRequests:     v.GetInt("http.rate_limit_requests"),
			RateLimitWindow:       v.GetDuration("http.rate_limit_window"),
			AuthRateLimitRequests: v.GetInt("http.auth_rate_limit_requests"),
			AuthRateLimitWindow:   v.GetDuration("http.auth_rate_limit_window"),
			CORSAllowOrigins:      v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods:      v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders:      v.GetStringSlice("http.cors_allow_headers"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("database.path"),
		},
		Shipping: ShippingConfig{
			APIKey:      v.GetString("shipping.api_key"),
			BaseURL:     v.GetString("shipping.base_url"),
			Markup:      v.GetFloat64("shipping.markup"),
			Timeout:     v.GetDuration("shipping.timeout"),
			FromName:    v.GetString("shipping.from_name"),
			FromStreet1: v.GetString("shipping.from_street1"),
			FromCity:    v.GetString("shipping.from_city"),
			FromState:   v.GetString("shipping.from_state"),
			FromZip:     v.GetString("shipping.from_zip"),
			FromCountry: v.GetString("shipping.from_country"),
			FromPhone:   v.GetString("shipping.from_phone"),
		},
		Catalog: CatalogConfig{
			SheetID:     v.GetString("catalog.sheet_id"),
			APIKey:      v.GetString("catalog.api_key"),
			BaseURL:     v.GetString("catalog.base_url"),
			TTL:         v.GetDuration("catalog.ttl"),
			Timeout:     v.GetDuration("catalog.timeout"),
			ProductsTab: v.GetString("catalog.products_tab"),
			GalleryTab:  v.GetString("catalog.gallery_tab"),
		},
		SMTP: SMTPConfig{
			Host:       v.GetString("smtp.host"),
			Port:       v.GetInt("smtp.port"),
			Username:   v.GetString("smtp.username"),
			Password:   v.GetString("smtp.password"),
			From:       v.GetString("smtp.from"),
			OwnerEmail: v.GetString("smtp.owner_email"),
			Timeout:    v.GetDuration("smtp.timeout"),
		},
		Admin: AdminConfig{
			Password: v.GetString("admin.password"),
			Secret:   v.GetString("admin.secret"),
		},
		Payment: PaymentConfig{
			PayPalMeURL: v.GetString("payment.paypal_me_url"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "griffix-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 1 << 20 // 1MB, JSON bodies only
	}
	if cfg.HTTP.RateLimitRequests == 0 {
		cfg.HTTP.RateLimitRequests = 100
	}
	if cfg.HTTP.RateLimitWindow == 0 {
		cfg.HTTP.RateLimitWindow = time.Minute
	}
	if cfg.HTTP.AuthRateLimitRequests == 0 {
		cfg.HTTP.AuthRateLimitRequests = 5
	}
	if cfg.HTTP.AuthRateLimitWindow == 0 {
		cfg.HTTP.AuthRateLimitWindow = time.Minute
	}
	// NOTE: CORS origins are intentionally not given a default fallback to "*".
	// An empty list means no cross-origin requests are allowed until explicitly configured.
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "X-Admin-Token", "X-Request-ID"}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "data/orders.db"
	}
	if cfg.Shipping.BaseURL == "" {
		cfg.Shipping.BaseURL = "https://api.goshippo.com"
	}
	if cfg.Shipping.Markup == 0 {
		cfg.Shipping.Markup = 1.10
	}
	if cfg.Shipping.Timeout == 0 {
		cfg.Shipping.Timeout = 10 * time.Second
	}
	if cfg.Shipping.FromName == "" {
		cfg.Shipping.FromName = "Griffix Racing"
	}
	if cfg.Shipping.FromCountry == "" {
		cfg.Shipping.FromCountry = "AU"
	}
	if cfg.Catalog.BaseURL == "" {
		cfg.Catalog.BaseURL = "https://sheets.googleapis.com"
	}
	if cfg.Catalog.TTL == 0 {
		cfg.Catalog.TTL = 60 * time.Second
	}
	if cfg.Catalog.Timeout == 0 {
		cfg.Catalog.Timeout = 10 * time.Second
	}
	if cfg.Catalog.ProductsTab == "" {
		cfg.Catalog.ProductsTab = "Products"
	}
	if cfg.Catalog.GalleryTab == "" {
		cfg.Catalog.GalleryTab = "Gallery"
	}
	if cfg.SMTP.Host == "" {
		cfg.SMTP.Host = "smtp.gmail.com"
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}
	if cfg.SMTP.Timeout == 0 {
		cfg.SMTP.Timeout = 10 * time.Second
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Shipping.Markup <= 0 {
		return fmt.Errorf("shipping.markup must be positive, got %f", c.Shipping.Markup)
	}
	if c.Catalog.TTL <= 0 {
		return fmt.Errorf("catalog.ttl must be positive")
	}

	// Production-specific validations
	if c.App.Env == "production" {
		if c.Admin.Secret == "" {
			return fmt.Errorf("admin.secret is required in production")
		}
		if len(c.Admin.Secret) < 32 {
			return fmt.Errorf("admin.secret must be at least 32 characters in production")
		}
		if c.Admin.Password == "" {
			return fmt.Errorf("admin.password is required in production")
		}
		// CORS must not use wildcard in production
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
	}

	return nil
}
