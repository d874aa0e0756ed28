package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/turboterm/pkg/errors"
	"github.com/arthur-debert/turboterm/pkg/logging"
)

// Template returns the embedded defaults with every value commented out,
// ready to be saved as a user config file.
func Template() string {
	return commentOutConfigValues(DefaultContent())
}

// commentOutConfigValues comments out every assignment line, keeping blank
// lines, comments and table headers.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}
	return strings.Join(result, "\n")
}

// UserConfigPath is where WriteTemplate puts the user config file.
func UserConfigPath() string {
	return filepath.Join(configHome(), "turboterm", "config.toml")
}

// WriteTemplate writes Template to path unless a file is already there. It
// reports whether the file was written.
func WriteTemplate(path string) (bool, error) {
	logger := logging.GetLogger("config")

	if _, err := os.Stat(path); err == nil {
		logger.Warn().Str("path", path).Msg("Config file already exists, skipping")
		return false, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to create directory %s", dir).
			WithDetail("path", dir)
	}
	if err := os.WriteFile(path, []byte(Template()), 0644); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to write config to %s", path).
			WithDetail("path", path)
	}

	logger.Info().Str("path", path).Msg("Written config file")
	return true, nil
}
