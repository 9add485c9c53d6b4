package prompts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// PromptKey is a type for identifying specific prompts.
type PromptKey string

const (
	// KeyBreakdownSystem is the key for the breakdown persona prompt.
	KeyBreakdownSystem PromptKey = "BreakdownSystem"
	// KeyBreakdownUser is the key for the breakdown instruction template.
	KeyBreakdownUser PromptKey = "BreakdownUser"
)

// promptConfig defines the default content and filename for a prompt.
type promptConfig struct {
	defaultContent string
	filename       string
}

var promptRegistry = map[PromptKey]promptConfig{
	KeyBreakdownSystem: {
		defaultContent: BreakdownSystemPrompt,
		filename:       "breakdown_system_prompt.txt",
	},
	KeyBreakdownUser: {
		defaultContent: BreakdownUserPrompt,
		filename:       "breakdown_user_prompt.txt",
	},
}

// fs is swappable so tests can load prompts from an in-memory filesystem.
var fs afero.Fs = afero.NewOsFs()

// SetFs replaces the filesystem used for custom prompt lookups and returns
// the previous one.
func SetFs(next afero.Fs) afero.Fs {
	prev := fs
	fs = next
	return prev
}

// GetPrompt searches for a user-provided prompt file in templatesDir. If
// found, it returns that file's content; otherwise the built-in default.
func GetPrompt(key PromptKey, templatesDir string) (string, error) {
	config, ok := promptRegistry[key]
	if !ok {
		return "", fmt.Errorf("unrecognized prompt key: %s", key)
	}

	if strings.TrimSpace(templatesDir) == "" {
		return config.defaultContent, nil
	}

	customPromptPath := filepath.Join(templatesDir, config.filename)
	content, err := afero.ReadFile(fs, customPromptPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config.defaultContent, nil
		}
		return "", fmt.Errorf("failed to read custom prompt file at %s: %w", customPromptPath, err)
	}
	return string(content), nil
}
