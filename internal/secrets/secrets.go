// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads optional API credentials from a directory of
// plain-text files. The golinks API accepts an application key and
// client ID that raise the per-IP request quota; without them requests
// still work, just at the anonymous rate.
//
// Key files: api-key, client-id. The filename is the credential name and
// the trimmed file contents are its value.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Credentials holds the optional API application credentials. Zero
// values mean "not configured" and are simply omitted from requests.
type Credentials struct {
	// APIKey is sent as the key query parameter.
	APIKey string

	// ClientID is sent as the client_id query parameter.
	ClientID string
}

// Load reads credentials from dir. A missing directory or missing files
// are not errors; the corresponding fields stay empty. An unreadable
// file is an error: a present-but-broken credential should not silently
// fall back to the anonymous quota.
func Load(dir string) (Credentials, error) {
	var creds Credentials

	apiKey, err := readSecret(filepath.Join(dir, "api-key"))
	if err != nil {
		return Credentials{}, err
	}
	clientID, err := readSecret(filepath.Join(dir, "client-id"))
	if err != nil {
		return Credentials{}, err
	}

	creds.APIKey = apiKey
	creds.ClientID = clientID
	return creds, nil
}

func readSecret(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading secret %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}
