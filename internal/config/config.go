package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Port        string `env:"PORT" env-default:"8080"`
	DBDSN       string `env:"DB_DSN" env-default:"vinahous.db"`
	LogFile     string `env:"LOG_FILE" env-default:"./vinahous.log"`
	StaticDir   string `env:"STATIC_DIR" env-default:"./web/static"`
	TemplateDir string `env:"TEMPLATE_DIR" env-default:"./web/templates"`
	ExportDir   string `env:"EXPORT_DIR" env-default:"./orders"`
	// Bcrypt hash of the admin password. Empty disables the admin guard,
	// which matches the open admin mode of the original deployment.
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH" env-default:""`
}

func Load() Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("[config] %v", err)
	}
	log.Printf("[config] PORT=%s DB_DSN=%s STATIC_DIR=%s EXPORT_DIR=%s admin_guard=%v",
		cfg.Port, cfg.DBDSN, cfg.StaticDir, cfg.ExportDir, cfg.AdminPasswordHash != "")
	return cfg
}
