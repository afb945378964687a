package utils

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadCredentialsEnv loads AWS credentials from ~/.env into the process
// environment so the default credential chain can pick them up.
// A missing file is not an error; the SDK falls back to its usual sources.
func LoadCredentialsEnv() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	envPath := filepath.Join(home, ".env")
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(envPath)
}

// HasStaticCredentials reports whether access keys are present in the environment
func HasStaticCredentials() bool {
	return os.Getenv("AWS_ACCESS_KEY_ID") != "" && os.Getenv("AWS_SECRET_ACCESS_KEY") != ""
}
