package classifier

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"resumeiq/internal/domain"
)

// Artifact filenames expected inside the configured artifact directory.
const (
	vectorizerFile = "vectorizer.json"
	modelFile      = "model.json"
	labelsFile     = "labels.json"
)

// Bundle is the pretrained vectorizer + model + label-decoder triple. It is
// loaded once at startup and read-only afterward, so it is safe for unlimited
// concurrent use. Availability is all-or-nothing: if any artifact is missing
// or invalid the whole bundle is unavailable.
type Bundle struct {
	vectorizer *Vectorizer
	model      *LinearModel
	labels     []string
	loaded     bool
}

// Load reads the three model artifacts from dir. On any failure it returns
// an unavailable bundle alongside the error, so callers can keep serving the
// endpoints that do not depend on the classifier.
func Load(dir string) (*Bundle, error) {
	var vec Vectorizer
	if err := readArtifact(filepath.Join(dir, vectorizerFile), &vec); err != nil {
		return Unavailable(), err
	}
	if err := vec.validate(); err != nil {
		return Unavailable(), fmt.Errorf("invalid vectorizer artifact: %w", err)
	}

	var model LinearModel
	if err := readArtifact(filepath.Join(dir, modelFile), &model); err != nil {
		return Unavailable(), err
	}
	if err := model.validate(len(vec.IDF)); err != nil {
		return Unavailable(), fmt.Errorf("invalid model artifact: %w", err)
	}

	var labels []string
	if err := readArtifact(filepath.Join(dir, labelsFile), &labels); err != nil {
		return Unavailable(), err
	}
	if len(labels) != len(model.Coefficients) {
		return Unavailable(), fmt.Errorf("%d labels for %d model classes", len(labels), len(model.Coefficients))
	}

	log.Printf("classifier.Load: model bundle loaded (%d terms, %d roles)", len(vec.Vocabulary), len(labels))
	return &Bundle{vectorizer: &vec, model: &model, labels: labels, loaded: true}, nil
}

// Unavailable returns a bundle in the explicit unavailable state. Predict on
// it always fails with domain.ErrClassifierUnavailable.
func Unavailable() *Bundle {
	return &Bundle{}
}

// Available reports whether the model artifacts loaded successfully.
func (b *Bundle) Available() bool {
	return b.loaded
}

// Predict classifies normalized resume text into a job role. Confidence is
// the maximum class probability scaled to a percentage.
func (b *Bundle) Predict(normalizedText string) (domain.RolePrediction, error) {
	if !b.loaded {
		return domain.RolePrediction{}, domain.ErrClassifierUnavailable
	}

	features := b.vectorizer.Transform(normalizedText)
	class, prob, err := b.model.PredictProba(features)
	if err != nil {
		return domain.RolePrediction{}, fmt.Errorf("predicting role: %w", err)
	}
	if class < 0 || class >= len(b.labels) {
		return domain.RolePrediction{}, fmt.Errorf("predicted class %d outside label range %d", class, len(b.labels))
	}

	return domain.RolePrediction{
		RoleLabel:  b.labels[class],
		Confidence: prob * 100,
	}, nil
}

func readArtifact(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading model artifact: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return nil
}
