/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

var ErrMissingConfiguration = errors.New("missing required configuration")

type TestConfig struct {
	// BaseURL is the service under test, if empty an in-process fake
	// is started instead.
	BaseURL           string
	AdminUsername     string
	AdminPassword     string
	RequestTimeout    time.Duration
	TestTimeout       time.Duration
	RateLimit         rate.Limit
	ValidateResponses bool
	LogRequests       bool
	LogResponses      bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:           os.Getenv("BOOKER_BASE_URL"),
		AdminUsername:     getStringWithDefault("BOOKER_ADMIN_USER", "admin"),
		AdminPassword:     getStringWithDefault("BOOKER_ADMIN_PASSWORD", "password123"),
		RequestTimeout:    getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		TestTimeout:       getDurationWithDefault("TEST_TIMEOUT", 5*time.Minute),
		RateLimit:         rate.Limit(getFloatWithDefault("RATE_LIMIT", 0)),
		ValidateResponses: getBoolWithDefault("VALIDATE_RESPONSES", true),
		LogRequests:       getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:      getBoolWithDefault("LOG_RESPONSES", false),
	}

	// Validate required fields
	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// UseFake returns true when the suites should run against an in-process fake.
func (c *TestConfig) UseFake() bool {
	return c.BaseURL == ""
}

// getStringWithDefault gets a string from environment variable or returns default.
func getStringWithDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

// getFloatWithDefault gets a number from environment variable or returns default.
func getFloatWithDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}

	return floatValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env",    // From test/api/suites directory
		"../../../.env", // From test/contracts/consumer/booker directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Load .env file, the environment takes precedence.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
// Credentials are only needed when talking to a real service.
func validateRequiredFields(config *TestConfig) error {
	if config.UseFake() {
		return nil
	}

	var missing []string

	required := map[string]string{
		"BOOKER_ADMIN_USER":     config.AdminUsername,
		"BOOKER_ADMIN_PASSWORD": config.AdminPassword,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	slices.Sort(missing)

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s. Please set these environment variables or add them to a .env file", ErrMissingConfiguration, strings.Join(missing, ", "))
	}

	return nil
}
