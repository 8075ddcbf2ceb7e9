package cli

import (
	"fmt"
	"os"

	"github.com/AndreyAkinshin/dictmatch/internal/config"
	"github.com/AndreyAkinshin/dictmatch/internal/errors"
	"github.com/AndreyAkinshin/dictmatch/internal/schema"
)

// loadSettings loads, schema-checks, and validates the settings file. An
// empty path falls back to $DICTMATCH_CONFIG and then to built-in defaults.
func loadSettings(path string) (*config.Config, []string, error) {
	if path == "" {
		path = os.Getenv(configEnvVar)
	}
	if path == "" {
		return config.Default(), nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.NotFound("settings file", path)
		}
		return nil, nil, errors.Wrap(err, fmt.Sprintf("failed to read settings file %s", path))
	}

	jsonData, err := config.ToJSON(path, data)
	if err != nil {
		return nil, nil, errors.Configf("%s: %v", path, err)
	}
	if err := schema.ValidateConfig(jsonData); err != nil {
		return nil, nil, errors.Validation(err, fmt.Sprintf("%s: %v", path, err))
	}

	cfg, warnings, err := config.LoadAndValidate(path)
	if err != nil {
		return nil, nil, errors.Configf("%s: %v", path, err)
	}
	return cfg, warnings, nil
}
