// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvVar is the environment variable naming the config file when the
// --config flag is absent.
const EnvVar = "QUR_CONFIG"

// Config holds flag defaults loaded from a YAML file. Every field is
// a pointer: nil means the file did not mention the setting and the
// built-in default stands. Values from the file never override flags
// the user set explicitly.
type Config struct {
	Message MessageConfig `yaml:"message"`
	Render  RenderConfig  `yaml:"render"`
	Display DisplayConfig `yaml:"display"`
}

// MessageConfig covers message generation and fragmentation.
type MessageConfig struct {
	// Length is the generated message length in bytes.
	Length *int `yaml:"length"`

	// Fragment is the maximum fragment length in bytes for
	// multi-part encoding.
	Fragment *int `yaml:"fragment"`

	// Extra is the number of fountain parts beyond the minimum.
	Extra *int `yaml:"extra"`
}

// RenderConfig covers image sizes for PNG export.
type RenderConfig struct {
	// QRSize is the QR image edge length in pixels.
	QRSize *int `yaml:"qr-size"`

	// LifehashSize is the fingerprint image edge length in pixels.
	LifehashSize *int `yaml:"lifehash-size"`
}

// DisplayConfig covers the animation.
type DisplayConfig struct {
	// FPS is the part cycle rate in frames per second.
	FPS *int `yaml:"fps"`
}

// Resolve returns the config file path: the explicit flag value if
// set, otherwise the QUR_CONFIG environment variable, otherwise
// empty. There is no search path or home-directory discovery; a
// config file is always named explicitly.
func Resolve(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvVar)
}

// Load reads and parses the YAML file at path. Unknown keys are an
// error: a typo in the file must fail loudly, not silently fall back
// to a built-in default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*Config, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var parsed Config
	if err := decoder.Decode(&parsed); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty file is a valid way to say "all defaults".
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &parsed, nil
}
