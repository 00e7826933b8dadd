package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabasePath           string `json:"databasePath"`
	Port                   int    `json:"port"`
	CatalogCSVPath         string `json:"catalogCsvPath"`
	CatalogEncoding        string `json:"catalogEncoding"`
	DuplicateWindowSeconds int    `json:"duplicateWindowSeconds"`
	LogLevel               string `json:"logLevel"`
	LogFormat              string `json:"logFormat"`
}

var (
	cfg = Default()
	mu  sync.RWMutex

	configFilePath = "./gs1scan_config.json"
)

// Default は設定ファイルがない場合の既定値です。
func Default() Config {
	return Config{
		DatabasePath:           "./gs1scan.db",
		Port:                   8080,
		CatalogCSVPath:         "SOU/CATALOG.CSV",
		CatalogEncoding:        "sjis",
		DuplicateWindowSeconds: 300,
		LogLevel:               "info",
		LogFormat:              "console",
	}
}

// SetPath は設定ファイルのパスを変更します。
func SetPath(path string) {
	mu.Lock()
	defer mu.Unlock()
	configFilePath = path
}

// LoadConfig は .env と設定ファイルを読み込みます。
// 環境変数 GS1SCAN_* はファイルの値より優先されます。
func LoadConfig() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}

	loaded := Default()
	file, err := os.ReadFile(configFilePath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err == nil {
		if err := json.Unmarshal(file, &loaded); err != nil {
			return cfg, err
		}
	}

	applyDefaults(&loaded)
	applyEnv(&loaded)
	cfg = loaded
	return cfg, nil
}

func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	applyDefaults(&newCfg)

	file, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configFilePath, file, 0644); err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

func applyDefaults(c *Config) {
	d := Default()
	if c.DatabasePath == "" {
		c.DatabasePath = d.DatabasePath
	}
	if c.Port == 0 {
		c.Port = d.Port
	}
	if c.CatalogEncoding == "" {
		c.CatalogEncoding = d.CatalogEncoding
	}
	if c.DuplicateWindowSeconds == 0 {
		c.DuplicateWindowSeconds = d.DuplicateWindowSeconds
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
}

func applyEnv(c *Config) {
	if v := os.Getenv("GS1SCAN_DB_PATH"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("GS1SCAN_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("GS1SCAN_CATALOG_PATH"); v != "" {
		c.CatalogCSVPath = v
	}
	if v := os.Getenv("GS1SCAN_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("GS1SCAN_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
}
