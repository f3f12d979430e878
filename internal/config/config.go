package config

import (
	"os"
	"path/filepath"
	"strconv"

	"exactstat/order"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	// DecimalPrecision is the working precision for decimal arithmetic.
	DecimalPrecision uint32
	// QuartileScheme is the default quartile convention for commands that
	// do not pass --scheme.
	QuartileScheme order.QuartileScheme
	// QuantileScheme is the default quantile estimator for commands that
	// do not pass --scheme.
	QuantileScheme order.QuantileScheme
	DataPath       string
	LogDir         string
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}
	logDir := filepath.Join(dataPath, "logs")

	precision := getEnvUint("EXACTSTAT_PRECISION", 28)
	if precision == 0 {
		log.Warn().Msg("EXACTSTAT_PRECISION must be positive, using 28")
		precision = 28
	}

	quartile, err := order.ParseQuartileScheme(getEnv("EXACTSTAT_QUARTILE_SCHEME", "inclusive"))
	if err != nil {
		log.Warn().Err(err).Msg("Invalid EXACTSTAT_QUARTILE_SCHEME, using inclusive")
		quartile = order.QuartileInclusive
	}
	quantile, err := order.ParseQuantileScheme(getEnv("EXACTSTAT_QUANTILE_SCHEME", "excel"))
	if err != nil {
		log.Warn().Err(err).Msg("Invalid EXACTSTAT_QUANTILE_SCHEME, using excel")
		quantile = order.QuantileR7
	}

	cfg := &AppConfig{
		DecimalPrecision: precision,
		QuartileScheme:   quartile,
		QuantileScheme:   quantile,
		DataPath:         dataPath,
		LogDir:           logDir,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvUint(key string, fallback uint32) uint32 {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseUint(value, 10, 32); err == nil {
			return uint32(n)
		}
	}
	return fallback
}
