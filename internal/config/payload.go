package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
	"sigs.k8s.io/yaml"

	oerrors "github.com/alphasquad/create-storefront/internal/errors"
)

// envKeyPattern matches top-level payload keys that are treated as env values.
var envKeyPattern = regexp.MustCompile(`^[A-Z0-9_]+$`)

// Payload is the external configuration supplied with --config.
type Payload struct {
	// Template is the template selector ("template" or "templateId").
	Template string

	// Env holds explicit values keyed by entry key. Values are raw decoded
	// JSON values; a present key with a null value is still an explicit value.
	Env map[string]any

	// CI is the "ci" boolean, nil when absent.
	CI *bool
}

// LoadPayload reads and parses an external configuration file.
// An empty path yields an empty payload. Relative paths are resolved against cwd.
func LoadPayload(path, cwd string) (*Payload, error) {
	if path == "" {
		return &Payload{Env: map[string]any{}}, nil
	}

	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(cwd, expanded)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &oerrors.DetailError{
				Type:     "config not found",
				Message:  fmt.Sprintf("Config file does not exist: %s", expanded),
				Location: expanded,
				Hint:     "Check the path passed to --config.",
				Cause:    oerrors.ErrNotFound,
			}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	raw, err := decodePayload(expanded, data)
	if err != nil {
		return nil, oerrors.NewMalformedConfigError(expanded, err)
	}

	return ParsePayload(raw), nil
}

// decodePayload decodes YAML for .yaml/.yml files and lenient JSON otherwise.
func decodePayload(path string, data []byte) (any, error) {
	var jsonData []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
		jsonData = converted
	default:
		jsonData = jsonc.ToJSON(data)
	}

	var raw any
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return raw, nil
}

// ParsePayload extracts template, env values and the CI flag from a decoded
// document. Anything other than an object yields an empty payload.
func ParsePayload(raw any) *Payload {
	p := &Payload{Env: map[string]any{}}

	input, ok := raw.(map[string]any)
	if !ok {
		return p
	}

	if s, ok := input["template"].(string); ok {
		p.Template = s
	} else if s, ok := input["templateId"].(string); ok {
		p.Template = s
	}

	if env, ok := input["env"].(map[string]any); ok {
		p.Env = env
	} else if values, ok := input["values"].(map[string]any); ok {
		p.Env = values
	} else {
		for key, value := range input {
			if envKeyPattern.MatchString(key) {
				p.Env[key] = value
			}
		}
	}

	if ci, ok := input["ci"].(bool); ok {
		p.CI = &ci
	}

	return p
}
