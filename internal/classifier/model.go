package classifier

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Artifact is the on-disk form of a trained filename classifier.
type Artifact struct {
	Vectorizer VectorizerConfig `yaml:"vectorizer" msgpack:"vectorizer"`
	Classes    []ClassWeights   `yaml:"classes" msgpack:"classes"`
}

// ClassWeights holds the linear decision function for one category.
type ClassWeights struct {
	Label   string             `yaml:"label" msgpack:"label"`
	Bias    float64            `yaml:"bias" msgpack:"bias"`
	Weights map[string]float64 `yaml:"weights" msgpack:"weights"`
}

// Model is a linear classifier over filename n-gram features. It is read-only
// after construction and safe for concurrent use.
type Model struct {
	vec     *vectorizer
	classes []ClassWeights
}

// Load reads a model artifact from path. The format is chosen by extension:
// .yaml/.yml for YAML, .msgpack/.mpk for MessagePack.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var artifact Artifact
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &artifact); err != nil {
			return nil, fmt.Errorf("failed to parse model artifact %s: %w", path, err)
		}
	case ".msgpack", ".mpk":
		if err := msgpack.Unmarshal(data, &artifact); err != nil {
			return nil, fmt.Errorf("failed to parse model artifact %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported model artifact extension %q", ext)
	}

	return NewModel(artifact)
}

// NewModel validates artifact and builds a Model from it.
func NewModel(artifact Artifact) (*Model, error) {
	if len(artifact.Classes) == 0 {
		return nil, fmt.Errorf("model artifact has no classes")
	}

	cfg := artifact.Vectorizer
	if cfg.NgramMin == 0 {
		cfg.NgramMin = 1
	}
	if cfg.NgramMax == 0 {
		cfg.NgramMax = cfg.NgramMin
	}
	if cfg.NgramMin < 1 || cfg.NgramMax < cfg.NgramMin {
		return nil, fmt.Errorf("invalid n-gram range [%d, %d]", cfg.NgramMin, cfg.NgramMax)
	}

	vocabulary := make(map[string]struct{})
	for term := range cfg.IDF {
		vocabulary[term] = struct{}{}
	}
	for i, class := range artifact.Classes {
		if strings.TrimSpace(class.Label) == "" {
			return nil, fmt.Errorf("class %d has an empty label", i)
		}
		for term := range class.Weights {
			vocabulary[term] = struct{}{}
		}
	}

	return &Model{
		vec: &vectorizer{
			lowercase:  !cfg.CaseSensitive,
			ngramMin:   cfg.NgramMin,
			ngramMax:   cfg.NgramMax,
			idf:        cfg.IDF,
			vocabulary: vocabulary,
		},
		classes: artifact.Classes,
	}, nil
}

// Labels returns the category labels the model can predict, in artifact order.
func (m *Model) Labels() []string {
	labels := make([]string, len(m.classes))
	for i, class := range m.classes {
		labels[i] = class.Label
	}
	return labels
}

// Predict returns the highest scoring label for filename. Ties go to the class
// listed first in the artifact; a filename with no known features falls back
// to the class with the largest bias.
func (m *Model) Predict(filename string) string {
	features := m.vec.transform(filename)

	best := 0
	bestScore := m.score(0, features)
	for i := 1; i < len(m.classes); i++ {
		if score := m.score(i, features); score > bestScore {
			best, bestScore = i, score
		}
	}
	return m.classes[best].Label
}

// Classify implements service.Classifier. It never returns an error.
func (m *Model) Classify(_ context.Context, filename string) (string, error) {
	return m.Predict(filename), nil
}

func (m *Model) score(class int, features map[string]float64) float64 {
	c := m.classes[class]
	score := c.Bias
	for term, value := range features {
		score += c.Weights[term] * value
	}
	return score
}
