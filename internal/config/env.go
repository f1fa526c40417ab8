package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "ARCADE_"

// LoadEnv reads KEY=value files into the process environment. Variables
// that are already set win. Missing files are skipped; with no arguments
// it looks for ./.env.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: cannot load %s: %w", f, err)
		}
	}
	return nil
}

// Env returns ARCADE_<key>, or def when unset or empty.
func Env(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(EnvPrefix + key)); v != "" {
		return v
	}
	return def
}

// EnvInt returns ARCADE_<key> as an int, or def when unset or malformed.
func EnvInt(key string, def int) int {
	v := Env(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// EnvInt64 is EnvInt for 64-bit values such as seeds.
func EnvInt64(key string, def int64) int64 {
	v := Env(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// EnvBool returns ARCADE_<key> parsed by strconv.ParseBool, or def.
func EnvBool(key string, def bool) bool {
	v := Env(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
