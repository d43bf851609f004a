package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	YtdlpPath string `toml:"ytdlp_path" json:"ytdlp_path"`
	Proxy     string `toml:"proxy" json:"proxy"`
}

// Load reads the first of config.toml/config.json that exists, then
// lets YTDLP_PATH and YTDLP_PROXY (possibly via a .env file) override
// it. Every knob is optional; a zero Config works.
func Load() Config {
	var cfg Config
	for _, file := range []string{"config.toml", "config.json"} {
		if !isExist(file) {
			continue
		}
		var err error
		switch strings.ToLower(filepath.Ext(file)) {
		case ".toml":
			err = toml.Unmarshal(readAll(file), &cfg)
		case ".json":
			err = json.Unmarshal(readAll(file), &cfg)
		}
		if err != nil {
			// diagnostics go to stderr, stdout is the JSON document
			log.Printf("ignoring %s: %v", file, err)
		}
		break
	}

	godotenv.Load()
	if v := os.Getenv("YTDLP_PATH"); v != "" {
		cfg.YtdlpPath = v
	}
	if v := os.Getenv("YTDLP_PROXY"); v != "" {
		cfg.Proxy = v
	}
	return cfg
}

func isExist(file string) bool {
	_, err := os.Stat(file)
	return err == nil
}

func readAll(file string) []byte {
	by, err := os.ReadFile(file)
	if err != nil {
		return nil
	}
	return by
}
