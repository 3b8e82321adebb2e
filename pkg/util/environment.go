package util

import (
	"os"
	"strings"
)

func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		name, value, _ := strings.Cut(variable, "=")
		environmentVariables[name] = value
	}

	return environmentVariables
}

// ListenAddress honours the plain PORT variable set by most hosting platforms.
func ListenAddress(env map[string]string, fallback string) string {
	if port := env["PORT"]; port != "" {
		return ":" + port
	}

	return fallback
}
