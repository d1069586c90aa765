package gcp

import (
	"fmt"
	"os"
	"strings"

	"google.golang.org/api/option"
)

// ClientOptionsFromEnv builds client options from service-account credentials
// in the environment. GOOGLE_APPLICATION_CREDENTIALS_JSON takes precedence and
// may hold the key inline; GOOGLE_APPLICATION_CREDENTIALS points at a key file.
func ClientOptionsFromEnv() []option.ClientOption {
	creds := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"))
	if creds == "" {
		creds = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	if creds == "" {
		return nil
	}
	if strings.HasPrefix(creds, "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(creds))}
	}
	return []option.ClientOption{option.WithCredentialsFile(creds)}
}

// RequireClientOptionsFromEnv is ClientOptionsFromEnv for tools that must not
// fall back to ambient credentials.
func RequireClientOptionsFromEnv() ([]option.ClientOption, error) {
	opts := ClientOptionsFromEnv()
	if opts == nil {
		return nil, fmt.Errorf("missing env var GOOGLE_APPLICATION_CREDENTIALS (or GOOGLE_APPLICATION_CREDENTIALS_JSON)")
	}
	return opts, nil
}
