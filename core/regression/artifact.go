package regression

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/ecoroute/core/factory"
	"github.com/kilianp07/ecoroute/core/features"
)

var (
	// ErrArtifactNotFound is returned when the artifact file does not exist.
	ErrArtifactNotFound = errors.New("model artifact not found")
	// ErrContractMismatch is returned when an artifact was trained on another feature layout.
	ErrContractMismatch = errors.New("model artifact feature contract mismatch")
)

// Artifact is the on-disk description of a trained model.
type Artifact struct {
	Type     string         `json:"type"`
	Contract string         `json:"contract"`
	Features []string       `json:"features"`
	Conf     map[string]any `json:"conf"`
}

var registry = factory.NewRegistry[Regressor]()

func init() {
	_ = registry.Register("linear", func(conf map[string]any) (Regressor, error) {
		var c LinearConf
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewLinear(c)
	})
	_ = registry.Register("forest", func(conf map[string]any) (Regressor, error) {
		var c ForestConf
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewForest(c)
	})
}

// Load reads the artifact at path and builds its regressor. The artifact must
// declare the current feature contract.
func Load(path string) (Regressor, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrArtifactNotFound, path)
		}
		return nil, fmt.Errorf("stat model artifact: %w", err)
	}
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		parser = kjson.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return nil, fmt.Errorf("unsupported model artifact format: %s", filepath.Ext(path))
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var a Artifact
	if err := k.UnmarshalWithConf("", &a, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	return Build(a)
}

// Build validates a and instantiates its regressor.
func Build(a Artifact) (Regressor, error) {
	if a.Contract != features.Contract {
		return nil, fmt.Errorf("%w: artifact %q, service %q", ErrContractMismatch, a.Contract, features.Contract)
	}
	if len(a.Features) > 0 && !slices.Equal(a.Features, features.Names) {
		return nil, fmt.Errorf("%w: feature names %v", ErrContractMismatch, a.Features)
	}
	r, err := registry.Create(factory.ModuleConfig{Type: a.Type, Conf: a.Conf})
	if err != nil {
		return nil, fmt.Errorf("build %s regressor: %w", a.Type, err)
	}
	if r.NumFeatures() != features.Size {
		return nil, fmt.Errorf("%w: regressor expects %d features, contract has %d", ErrContractMismatch, r.NumFeatures(), features.Size)
	}
	return r, nil
}

// Save writes a as indented JSON.
func Save(path string, a Artifact) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LinearArtifact wraps linear parameters in an artifact for the current contract.
func LinearArtifact(c LinearConf) Artifact {
	return Artifact{
		Type:     "linear",
		Contract: features.Contract,
		Features: append([]string(nil), features.Names...),
		Conf: map[string]any{
			"coefficients": c.Coefficients,
			"intercepts":   c.Intercepts,
		},
	}
}
