package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		TemplatesDir string `yaml:"templates_dir"`
	} `yaml:"email"`

	Notifications struct {
		// SendRealEmails gates the generic broadcast of notification
		// emails to residents. Checked on every dispatch, never cached.
		SendRealEmails bool   `yaml:"send_real_emails"`
		SiteURL        string `yaml:"site_url"`
		DashboardPath  string `yaml:"dashboard_path"`
	} `yaml:"notifications"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

// DashboardURL builds the absolute link residents follow from emails.
func (c *Config) DashboardURL() string {
	base := c.Notifications.SiteURL
	if base == "" {
		base = "http://127.0.0.1:8000"
	}
	path := c.Notifications.DashboardPath
	if path == "" {
		path = "/resident-dashboard/"
	}
	return base + path
}

// Load reads configuration from config.yaml, or from environment
// variables when DATABASE_URL is set (test and container mode).
func Load() (*Config, error) {
	var cfg Config

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.JWT.TTL = 60

		cfg.Email.SMTPHost = envOr("SMTP_HOST", "localhost")
		cfg.Email.SMTPPort, _ = strconv.Atoi(envOr("SMTP_PORT", "587"))
		cfg.Email.SMTPUser = os.Getenv("SMTP_USER")
		cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
		cfg.Email.FromEmail = envOr("FROM_EMAIL", "no-reply@syndicpro.local")
		cfg.Email.FromName = envOr("FROM_NAME", "SyndicPro")

		cfg.Notifications.SendRealEmails = os.Getenv("SEND_REAL_EMAILS") == "True"
		cfg.Notifications.SiteURL = envOr("SITE_URL", "http://127.0.0.1:8000")

		cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
		cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")
		return &cfg, nil
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad is Load for entrypoints that cannot start without config.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
