package config

import (
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

type Config struct {
	DiscordToken      string `env:"DISCORD_TOKEN,required"`
	StoragePath       string `env:"STORAGE_PATH" envDefault:"data/datastore.json"`
	FontsDir          string `env:"FONTS_DIR" envDefault:"fonts"`
	InitSlashCommands bool   `env:"INIT_SLASH_COMMANDS" envDefault:"true"`
	RenderWorkers     int    `env:"RENDER_WORKERS" envDefault:"2"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("[ERR] Invalid configuration: %v", err)
	}
	return cfg
}
