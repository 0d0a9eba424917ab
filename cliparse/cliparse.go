package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port            int
	ProjectID       string
	CredentialsFile string
	BaseURL         string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("poll-web-apps", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.BaseURL, "base-url", "", "Public base URL for share links")

	// Firestore config (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.ProjectID, "project", "", "Google Cloud project ID")
	fs.StringVar(&cfg.CredentialsFile, "credentials", "", "Service account key file (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}

	if cfg.ProjectID == "" {
		cfg.ProjectID = os.Getenv("FIRESTORE_PROJECT_ID")
	}
	if cfg.ProjectID == "" {
		return Config{}, errors.New("project ID required (use -project or FIRESTORE_PROJECT_ID env)")
	}

	// Credentials are optional: without a key file the client falls back
	// to application default credentials.
	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = os.Getenv("FIRESTORE_CREDENTIALS")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("PUBLIC_BASE_URL")
		if cfg.BaseURL == "" {
			cfg.BaseURL = "http://localhost:8080"
		}
	}

	return cfg, nil
}
