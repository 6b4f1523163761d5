package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"safecheck/internal/checkin/models"
)

// Config captures the host application configuration.
type Config struct {
	Locale    string
	TimeZone  *time.Location
	LogLevel  string
	LogFormat string
	// OpsAddr is where /healthz and /metrics are served; empty disables it.
	OpsAddr string
	Device  Device
}

// Device configures the simulated location and camera.
type Device struct {
	Latitude           float64
	Longitude          float64
	Accuracy           *float64
	Address            string
	LocationPermission models.Permission
	CameraPermission   models.Permission
	PhotoDir           string
}

// Load reads an optional .env file and then builds Config from the
// environment. Variables already set in the environment win over .env.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	tz, err := loadTimeZone(getEnv("SAFECHECK_TIMEZONE", "Local"))
	if err != nil {
		return Config{}, err
	}
	lat, err := getEnvAsFloat("SAFECHECK_DEVICE_LAT", 37.7749)
	if err != nil {
		return Config{}, err
	}
	lng, err := getEnvAsFloat("SAFECHECK_DEVICE_LNG", -122.4194)
	if err != nil {
		return Config{}, err
	}

	var accuracy *float64
	if raw := os.Getenv("SAFECHECK_DEVICE_ACCURACY"); raw != "" {
		acc, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("SAFECHECK_DEVICE_ACCURACY: %w", err)
		}
		accuracy = &acc
	}

	return Config{
		Locale:    getEnv("SAFECHECK_LOCALE", "en-US"),
		TimeZone:  tz,
		LogLevel:  getEnv("SAFECHECK_LOG_LEVEL", "info"),
		LogFormat: getEnv("SAFECHECK_LOG_FORMAT", "text"),
		OpsAddr:   os.Getenv("SAFECHECK_OPS_ADDR"),
		Device: Device{
			Latitude:           lat,
			Longitude:          lng,
			Accuracy:           accuracy,
			Address:            getEnv("SAFECHECK_DEVICE_ADDRESS", "San Francisco, CA"),
			LocationPermission: models.ParsePermission(getEnv("SAFECHECK_LOCATION_PERMISSION", "granted")),
			CameraPermission:   models.ParsePermission(getEnv("SAFECHECK_CAMERA_PERMISSION", "granted")),
			PhotoDir:           getEnv("SAFECHECK_PHOTO_DIR", os.TempDir()),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func loadTimeZone(name string) (*time.Location, error) {
	switch name {
	case "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("SAFECHECK_TIMEZONE: %w", err)
	}
	return loc, nil
}
