// Package survey reads SurveyResponse values from files and command-line
// overrides.
//
// Survey files may be YAML (.yaml, .yml), JSON (.json) or JSON with comments
// (.jsonc). Fields omitted from a file keep the form defaults from
// footprint.DefaultSurvey, so a file only needs the answers that differ.
package survey

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/footprint"
)

// Format identifies a survey file encoding.
type Format string

// Supported survey file formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// maxFileSize bounds how much of a survey file is read.
const maxFileSize = 1 << 20

// FormatForPath picks a Format from the file extension. Unknown extensions
// are an error so a typo never silently parses as the wrong format.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported survey file extension %q (want .yaml, .yml, .json or .jsonc)",
			filepath.Ext(path))
	}
}

// LoadFile reads and validates the survey at path.
func LoadFile(path string) (footprint.SurveyResponse, error) {
	resp, err := LoadFileUnvalidated(path)
	if err != nil {
		return footprint.SurveyResponse{}, err
	}
	if err = resp.Validate(); err != nil {
		return footprint.SurveyResponse{}, fmt.Errorf("survey file %s: %w", path, err)
	}
	return resp, nil
}

// LoadFileUnvalidated reads the survey at path without range checks, so
// later layers can still correct an out-of-range answer before validation.
func LoadFileUnvalidated(path string) (footprint.SurveyResponse, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return footprint.SurveyResponse{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return footprint.SurveyResponse{}, fmt.Errorf("reading survey file: %w", err)
	}
	if info.Size() > maxFileSize {
		return footprint.SurveyResponse{}, fmt.Errorf("survey file %s too large: %d bytes (max %d)",
			path, info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return footprint.SurveyResponse{}, fmt.Errorf("reading survey file: %w", err)
	}

	resp, err := DecodeUnvalidated(data, format)
	if err != nil {
		return footprint.SurveyResponse{}, fmt.Errorf("survey file %s: %w", path, err)
	}
	return resp, nil
}

// Decode parses data in the given format on top of the form defaults and
// validates the result. Unknown fields and unknown category names are
// rejected with footprint.ErrInvalidInput.
func Decode(data []byte, format Format) (footprint.SurveyResponse, error) {
	resp, err := DecodeUnvalidated(data, format)
	if err != nil {
		return footprint.SurveyResponse{}, err
	}
	if err = resp.Validate(); err != nil {
		return footprint.SurveyResponse{}, err
	}
	return resp, nil
}

// DecodeUnvalidated is Decode without the range checks, for callers that
// validate later and report out-of-range answers per survey.
func DecodeUnvalidated(data []byte, format Format) (footprint.SurveyResponse, error) {
	resp := footprint.DefaultSurvey()

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&resp); err != nil && !errors.Is(err, io.EOF) {
			return footprint.SurveyResponse{}, decodeError(err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&resp); err != nil {
			return footprint.SurveyResponse{}, decodeError(err)
		}
	default:
		return footprint.SurveyResponse{}, fmt.Errorf("unsupported survey format %q", format)
	}
	return resp, nil
}

// decodeError marks a parse failure as invalid input unless it already is.
func decodeError(err error) error {
	if errors.Is(err, footprint.ErrInvalidInput) {
		return err
	}
	return fmt.Errorf("%w: %v", footprint.ErrInvalidInput, err)
}
