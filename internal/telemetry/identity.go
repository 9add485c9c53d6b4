package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// identityFileName stores the random install ID next to the user's data.
const identityFileName = "telemetry.json"

type identity struct {
	// AnonymousID is a random UUID generated once per install. It is not
	// derived from anything identifying.
	AnonymousID string `json:"anonymousId"`
}

// AnonymousID loads the install's anonymous ID from dir, generating and
// persisting one on first use.
func AnonymousID(dir string) (string, error) {
	path := filepath.Join(dir, identityFileName)

	data, err := os.ReadFile(path)
	if err == nil {
		var id identity
		if jsonErr := json.Unmarshal(data, &id); jsonErr == nil && id.AnonymousID != "" {
			return id.AnonymousID, nil
		}
		// Corrupt identity file: fall through and regenerate.
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("read telemetry identity: %w", err)
	}

	id := identity{AnonymousID: uuid.NewString()}
	out, err := json.MarshalIndent(id, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create telemetry dir: %w", err)
	}
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return "", fmt.Errorf("write telemetry identity: %w", err)
	}
	return id.AnonymousID, nil
}
