package config

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// settingsHeader is written above a generated settings file.
const settingsHeader = "# create-storefront settings\n# Environment variables (STOREFRONT_*) and flags take precedence.\n\n"

// settingsDocument is the on-disk shape of Settings. Durations are written
// in Go duration syntax so the loader can read them back.
type settingsDocument struct {
	PackageManager string      `yaml:"packageManager,omitempty"`
	SourceBaseURL  string      `yaml:"sourceBaseURL,omitempty"`
	FetchTimeout   string      `yaml:"fetchTimeout,omitempty"`
	Log            logDocument `yaml:"log,omitempty"`
}

type logDocument struct {
	Timestamps *bool `yaml:"timestamps,omitempty"`
}

// MarshalSettings renders settings as a commented YAML settings file.
func MarshalSettings(s *Settings) ([]byte, error) {
	doc := settingsDocument{
		PackageManager: s.PackageManager,
		SourceBaseURL:  s.SourceBaseURL,
		Log:            logDocument{Timestamps: s.Log.Timestamps},
	}
	if s.FetchTimeout > 0 {
		doc.FetchTimeout = s.FetchTimeout.String()
	}

	var buf bytes.Buffer
	buf.WriteString(settingsHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
