package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	LogFile      string
	MaxUploadMB  int

	// Pipeline defaults; per-run form values override them.
	CurrentMonth string  // year-month excluded as structurally incomplete, e.g. "202508"
	MinQty       float64 // materiality threshold for reported quantities
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8082"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "256"))
	minQty, err := strconv.ParseFloat(getenv("MIN_QTY", "1000"), 64)
	if err != nil {
		minQty = 1000
	}
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         port,
		AllowOrigins: origins,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFile:      getenv("LOG_FILE", "logs/icms-recon.log"),
		MaxUploadMB:  mb,
		CurrentMonth: getenv("CURRENT_MONTH", ""),
		MinQty:       minQty,
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
