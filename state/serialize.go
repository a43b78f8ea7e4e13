package state

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

type TopologyFormat int

const (
	FormatText TopologyFormat = iota
	FormatYaml
)

// FormatOf picks the topology format from the file extension, the line format is the default.
func FormatOf(path string) TopologyFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYaml
	default:
		return FormatText
	}
}

func UnmarshalTopology(data []byte, format TopologyFormat) (*TopologyCfg, error) {
	if format == FormatText {
		return ParseTopology(bytes.NewReader(data))
	}
	cfg := &TopologyCfg{}
	err := yaml.UnmarshalWithOptions(data, cfg, yaml.DisallowUnknownField())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	err = TopologyValidator(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func MarshalTopology(cfg *TopologyCfg, format TopologyFormat) ([]byte, error) {
	if format == FormatText {
		buf := bytes.Buffer{}
		err := cfg.WriteText(&buf)
		if err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return yaml.Marshal(cfg)
}

func ReadTopology(path string) (*TopologyCfg, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return UnmarshalTopology(file, FormatOf(path))
}

func WriteTopology(path string, cfg *TopologyCfg) error {
	data, err := MarshalTopology(cfg, FormatOf(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// LoadRegistry reads the topology at path and builds a registry from it.
func LoadRegistry(path string) (*Registry, error) {
	cfg, err := ReadTopology(path)
	if err != nil {
		return nil, err
	}
	return BuildRegistry(cfg)
}
