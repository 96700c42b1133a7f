package classifier

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeiq/internal/domain"
)

// writeTestArtifacts writes a tiny two-role model: "python data" leans hard
// toward Data Scientist, "server deploy" toward Backend Engineer.
func writeTestArtifacts(t *testing.T, dir string) {
	t.Helper()

	vec := Vectorizer{
		Vocabulary: map[string]int{"python": 0, "data": 1, "server": 2, "deploy": 3},
		IDF:        []float64{1.2, 1.1, 1.3, 1.4},
	}
	model := LinearModel{
		Coefficients: [][]float64{
			{2.0, 1.5, -1.0, -1.2},
			{-1.0, -1.1, 2.2, 1.8},
		},
		Intercepts: []float64{0.1, -0.1},
	}
	labels := []string{"Data Scientist", "Backend Engineer"}

	for name, v := range map[string]any{
		vectorizerFile: vec,
		modelFile:      model,
		labelsFile:     labels,
	} {
		data, err := json.Marshal(v)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}
}

func TestLoad_Success(t *testing.T) {
	dir := t.TempDir()
	writeTestArtifacts(t, dir)

	bundle, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, bundle.Available())
}

func TestLoad_MissingArtifactIsAllOrNothing(t *testing.T) {
	dir := t.TempDir()
	writeTestArtifacts(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, labelsFile)))

	bundle, err := Load(dir)
	assert.Error(t, err)
	require.NotNil(t, bundle)
	assert.False(t, bundle.Available())

	_, err = bundle.Predict("python data")
	assert.True(t, errors.Is(err, domain.ErrClassifierUnavailable))
}

func TestLoad_LabelCountMismatch(t *testing.T) {
	dir := t.TempDir()
	writeTestArtifacts(t, dir)
	data, err := json.Marshal([]string{"Only One Role"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, labelsFile), data, 0o644))

	bundle, err := Load(dir)
	assert.Error(t, err)
	assert.False(t, bundle.Available())
}

func TestPredict_ArgMaxClassAndConfidence(t *testing.T) {
	dir := t.TempDir()
	writeTestArtifacts(t, dir)
	bundle, err := Load(dir)
	require.NoError(t, err)

	pred, err := bundle.Predict("python data python")
	require.NoError(t, err)
	assert.Equal(t, "Data Scientist", pred.RoleLabel)
	assert.Greater(t, pred.Confidence, 50.0)
	assert.LessOrEqual(t, pred.Confidence, 100.0)

	pred, err = bundle.Predict("server deploy")
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", pred.RoleLabel)
}

func TestPredict_UnknownTermsOnly(t *testing.T) {
	dir := t.TempDir()
	writeTestArtifacts(t, dir)
	bundle, err := Load(dir)
	require.NoError(t, err)

	// No vocabulary hits: the decision falls back to the intercepts.
	pred, err := bundle.Predict("gardening watercolor")
	require.NoError(t, err)
	assert.Equal(t, "Data Scientist", pred.RoleLabel)
}

func TestPredict_ConfidencePercentFormat(t *testing.T) {
	p := domain.RolePrediction{RoleLabel: "Data Scientist", Confidence: 78.5}
	assert.Equal(t, "78.50%", p.ConfidencePercent())
}
