package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// lookupEnv returns fallback when key is unset or blank, and also when parse
// rejects the value. Config loads before the logger exists, hence log.
func lookupEnv[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw, ok := os.LookupEnv(key)
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return fallback
	}

	value, err := parse(raw)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %v: %v", key, raw, fallback, err)
		return fallback
	}
	return value
}

func GetEnvString(key, defaultValue string) string {
	return lookupEnv(key, defaultValue, func(raw string) (string, error) { return raw, nil })
}

func GetEnvInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue, strconv.Atoi)
}

func GetEnvBool(key string, defaultValue bool) bool {
	return lookupEnv(key, defaultValue, strconv.ParseBool)
}
