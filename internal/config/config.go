package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
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

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Payment struct {
		WindowSeconds      int    `yaml:"window_seconds"`       // QR display window
		ExpiryGraceSeconds int    `yaml:"expiry_grace_seconds"` // slack before the sweeper expires
		SweepInterval      int    `yaml:"sweep_interval"`       // seconds between sweeps
		MaxAmount          string `yaml:"max_amount"`           // per-transaction ceiling
	} `yaml:"payment"`

	Webhook struct {
		Secret string `yaml:"secret"`
	} `yaml:"webhook"`

	Admin struct {
		PIN                string `yaml:"pin"`
		FirstAdminEmail    string `yaml:"first_admin_email"`
		FirstAdminPassword string `yaml:"first_admin_password"`
	} `yaml:"admin"`
}

var AppConfig *Config

// LoadConfig populates AppConfig. A DATABASE_URL in the environment wins
// over the yaml file, which keeps tests and container deployments off the
// filesystem. .env is loaded first if present.
func LoadConfig() {
	_ = godotenv.Load()

	var cfg Config

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.JWT.TTL = 60
		cfg.Webhook.Secret = os.Getenv("WEBHOOK_SECRET")
		cfg.Admin.PIN = os.Getenv("ADMIN_PIN")
		cfg.Admin.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
		cfg.Admin.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")
		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	if err != nil {
		log.Fatalf("Failed to open config file at %s: %v", configPath, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
	}

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Payment.WindowSeconds == 0 {
		cfg.Payment.WindowSeconds = 180
	}
	if cfg.Payment.ExpiryGraceSeconds == 0 {
		cfg.Payment.ExpiryGraceSeconds = 30
	}
	if cfg.Payment.SweepInterval == 0 {
		cfg.Payment.SweepInterval = 60
	}
	if cfg.Payment.MaxAmount == "" {
		cfg.Payment.MaxAmount = "100000"
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
