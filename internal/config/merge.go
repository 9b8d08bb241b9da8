package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/footprint"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyOutput  = "output"
	keyLogging = "logging"
	keyFactors = "factors"
	keyServer  = "server"
)

// knownTopLevelKeys lists the YAML keys that correspond to Config fields.
// Other keys are ignored during merge.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var knownTopLevelKeys = map[string]bool{
	keyOutput:  true,
	keyLogging: true,
	keyFactors: true,
	keyServer:  true,
}

// ShallowMergeYAML loads the overlay file and merges its top-level keys onto
// target. Each section present in the overlay is decoded onto the target's
// current value, so only the fields it names change; absent keys are left
// unchanged. The factors section is merged entry by entry so an overlay can
// adjust a single factor without restating the whole table.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]interface{}
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, value := range overlay {
		if !knownTopLevelKeys[key] {
			continue
		}

		// Re-marshal the single section so it can be decoded onto the typed field.
		sectionBytes, marshalErr := yaml.Marshal(value)
		if marshalErr != nil {
			return fmt.Errorf("re-marshalling overlay section %q: %w", key, marshalErr)
		}

		if err = unmarshalSection(target, key, sectionBytes); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}

	return nil
}

// unmarshalSection decodes one section onto a copy of the target's section,
// keeping every field the overlay does not name.
func unmarshalSection(target *Config, key string, data []byte) error {
	switch key {
	case keyOutput:
		v := target.Output
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Output = v
		return nil
	case keyLogging:
		v := target.Logging
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Logging = v
		return nil
	case keyFactors:
		var v footprint.EmissionFactors
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Factors = target.Factors.Merge(v)
		return nil
	case keyServer:
		v := target.Server
		if err := yaml.Unmarshal(data, &v); err != nil {
			return err
		}
		target.Server = v
		return nil
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}
