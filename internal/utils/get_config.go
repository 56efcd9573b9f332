package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	DataFile   string `yaml:"APP_DATA_FILE"`
	ConfigFile string `yaml:"APP_CONFIG_FILE"`
	Host       string `yaml:"APP_HOST"`
	Port       string `yaml:"APP_PORT"`
	BasePath   string `yaml:"APP_BASE_PATH"`
	LogLevel   string `yaml:"APP_LOG_LEVEL"`
	Culture    string `yaml:"APP_CULTURE"`
	Currency   string `yaml:"APP_CURRENCY"`
	Timezone   string `yaml:"APP_TIMEZONE"`
	Env        string `yaml:"APP_ENV"`
}

// LoadConfig reads an optional config.yaml and exports its keys into the
// environment, so the rest of the process only ever reads env vars. Keys
// already set in the environment win.
func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		return
	}

	var config Config
	if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	setIfUnset("APP_DATA_FILE", config.DataFile)
	setIfUnset("APP_CONFIG_FILE", config.ConfigFile)
	setIfUnset("APP_HOST", config.Host)
	setIfUnset("APP_PORT", config.Port)
	setIfUnset("APP_BASE_PATH", config.BasePath)
	setIfUnset("APP_LOG_LEVEL", config.LogLevel)
	setIfUnset("APP_CULTURE", config.Culture)
	setIfUnset("APP_CURRENCY", config.Currency)
	setIfUnset("APP_TIMEZONE", config.Timezone)
	setIfUnset("APP_ENV", config.Env)
}

func setIfUnset(key, value string) {
	if value == "" {
		return
	}
	if _, exists := os.LookupEnv(key); !exists {
		os.Setenv(key, value)
	}
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(GetEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
