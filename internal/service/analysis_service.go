package service

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"resumeiq/internal/classifier"
	"resumeiq/internal/config"
	"resumeiq/internal/domain"
	"resumeiq/internal/insight"
	"resumeiq/internal/port"
)

// ReviewAnalysis is the merged /upload_resume response.
type ReviewAnalysis struct {
	Filename        string         `json:"filename"`
	Analysis        map[string]any `json:"analysis"`
	ProjectAnalysis map[string]any `json:"project_analysis"`
}

// TrainedModelPrediction is the local-classifier half of a role prediction.
type TrainedModelPrediction struct {
	JobRole    string `json:"job_role"`
	Confidence string `json:"confidence"`
	ModelType  string `json:"model_type"`
}

// RolePredictionResult is the merged /predict_job_role response, keeping the
// ML-model and LLM branches under separate keys.
type RolePredictionResult struct {
	TrainedModel     TrainedModelPrediction `json:"trained_model"`
	GeminiPrediction map[string]any         `json:"gemini_prediction"`
}

// AnalysisService orchestrates resume analysis: input validation, text
// extraction, then isolated classifier and insight branches merged into one
// response.
type AnalysisService interface {
	ReviewResume(ctx context.Context, doc *domain.UploadedDocument) (*ReviewAnalysis, error)
	PredictJobRole(ctx context.Context, doc *domain.UploadedDocument) (*RolePredictionResult, error)
	AnalyzeSkills(ctx context.Context, doc *domain.UploadedDocument) (map[string]any, error)
	ClassifierAvailable() bool
}

type analysisService struct {
	extractor  port.TextExtractor
	classifier port.RoleClassifier
	generator  port.InsightGenerator
	history    port.AnalysisRepository // nil when history is disabled
	limits     config.LimitsConfig
}

// NewAnalysisService creates an AnalysisService. history may be nil, in which
// case completed analyses are not recorded.
func NewAnalysisService(
	extractor port.TextExtractor,
	roleClassifier port.RoleClassifier,
	generator port.InsightGenerator,
	history port.AnalysisRepository,
	limits config.LimitsConfig,
) AnalysisService {
	return &analysisService{
		extractor:  extractor,
		classifier: roleClassifier,
		generator:  generator,
		history:    history,
		limits:     limits,
	}
}

func (s *analysisService) ClassifierAvailable() bool {
	return s.classifier.Available()
}

// ReviewResume runs the 5-category review and the project-quality analysis as
// isolated branches over the extracted text. A generator transport failure
// degrades that branch to an empty object; unparsable generator output
// degrades to the branch's schema defaults.
func (s *analysisService) ReviewResume(ctx context.Context, doc *domain.UploadedDocument) (*ReviewAnalysis, error) {
	if !doc.Format.Supported() {
		return nil, domain.ErrUnsupportedFormat
	}

	text, err := s.extractor.Extract(doc)
	if err != nil {
		return nil, err
	}
	text = insight.Truncate(text, s.limits.ReviewTruncateChars)

	var (
		wg       sync.WaitGroup
		review   map[string]any
		projects map[string]any
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		review = s.insightBranch(ctx, "review", insight.BuildReviewPrompt(text), insight.ReviewSchema(), branchEmptyOnFailure)
	}()
	go func() {
		defer wg.Done()
		projects = s.insightBranch(ctx, "projects", insight.BuildProjectsPrompt(text), insight.ProjectsSchema(), branchEmptyOnFailure)
	}()
	wg.Wait()

	result := &ReviewAnalysis{
		Filename:        doc.Filename,
		Analysis:        review,
		ProjectAnalysis: projects,
	}

	s.record(ctx, &domain.AnalysisRecord{
		Filename:    doc.Filename,
		Kind:        domain.AnalysisKindReview,
		ReviewScore: intField(review, "score"),
	})
	return result, nil
}

// PredictJobRole runs the local classifier and the Gemini suitability
// judgment concurrently and merges them under namespaced keys. The classifier
// bundle must be available; a per-input prediction failure degrades to the
// "Prediction Error" placeholder without touching the sibling branch.
func (s *analysisService) PredictJobRole(ctx context.Context, doc *domain.UploadedDocument) (*RolePredictionResult, error) {
	if !s.classifier.Available() {
		return nil, domain.ErrClassifierUnavailable
	}
	if maxBytes := s.limits.MaxPredictUploadMB * 1024 * 1024; maxBytes > 0 && doc.Size > maxBytes {
		return nil, domain.ErrPayloadTooLarge
	}
	if !doc.Format.Supported() {
		return nil, domain.ErrUnsupportedFormat
	}

	text, err := s.extractor.Extract(doc)
	if err != nil {
		return nil, err
	}

	var (
		wg         sync.WaitGroup
		prediction domain.RolePrediction
		suitable   map[string]any
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		prediction = s.classifierBranch(doc.Filename, text)
	}()
	go func() {
		defer wg.Done()
		prompt := insight.BuildSuitabilityPrompt(insight.Truncate(text, s.limits.PredictTruncateChars))
		suitable = s.insightBranch(ctx, "suitability", prompt, insight.SuitabilitySchema(), branchDefaultsOnFailure)
	}()
	wg.Wait()

	suitable["model_type"] = domain.ModelTypeGemini

	result := &RolePredictionResult{
		TrainedModel: TrainedModelPrediction{
			JobRole:    prediction.RoleLabel,
			Confidence: prediction.ConfidencePercent(),
			ModelType:  domain.ModelTypeML,
		},
		GeminiPrediction: suitable,
	}

	s.record(ctx, &domain.AnalysisRecord{
		Filename:      doc.Filename,
		Kind:          domain.AnalysisKindPredict,
		PredictedRole: prediction.RoleLabel,
		MLConfidence:  prediction.ConfidencePercent(),
		GeminiRole:    stringField(suitable, "job_role"),
	})
	return result, nil
}

// AnalyzeSkills extracts the skills inventory. Any generator failure degrades
// to the skills schema defaults.
func (s *analysisService) AnalyzeSkills(ctx context.Context, doc *domain.UploadedDocument) (map[string]any, error) {
	if !doc.Format.Supported() {
		return nil, domain.ErrUnsupportedFormat
	}

	text, err := s.extractor.Extract(doc)
	if err != nil {
		return nil, err
	}

	result := s.insightBranch(ctx, "skills", insight.BuildSkillsPrompt(text), insight.SkillsSchema(), branchDefaultsOnFailure)

	s.record(ctx, &domain.AnalysisRecord{
		Filename: doc.Filename,
		Kind:     domain.AnalysisKindSkills,
	})
	return result, nil
}

// branchFailurePolicy decides what an insight branch yields when the
// generator call itself fails (as opposed to returning unparsable text).
type branchFailurePolicy int

const (
	// branchEmptyOnFailure: the branch contributes an empty object.
	branchEmptyOnFailure branchFailurePolicy = iota
	// branchDefaultsOnFailure: the branch contributes its schema defaults.
	branchDefaultsOnFailure
)

// insightBranch runs one generator call and normalizes its output. It never
// returns an error: all generator unpredictability becomes a value.
func (s *analysisService) insightBranch(ctx context.Context, name, prompt string, schema insight.Schema, policy branchFailurePolicy) map[string]any {
	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("analysisService: %s branch degraded: %v", name, err)
		if policy == branchEmptyOnFailure {
			return map[string]any{}
		}
		return schema.Defaults()
	}

	result := insight.Normalize(raw, schema)
	if result.Outcome != insight.OutcomeParsed {
		log.Printf("analysisService: %s branch %s (defaulted keys: %v)", name, result.Outcome, result.DefaultedKeys)
	}
	return result.Fields
}

// classifierBranch normalizes the text and predicts a role, absorbing any
// prediction failure into the neutral placeholder.
func (s *analysisService) classifierBranch(filename, text string) domain.RolePrediction {
	prediction, err := s.classifier.Predict(classifier.NormalizeText(text))
	if err != nil {
		log.Printf("analysisService: ML prediction failed for %s: %v", filename, err)
		return domain.RolePrediction{RoleLabel: "Prediction Error", Confidence: 0}
	}
	return prediction
}

// record persists an analysis summary best-effort; storage failures are
// logged and never surfaced to the caller.
func (s *analysisService) record(ctx context.Context, rec *domain.AnalysisRecord) {
	if s.history == nil {
		return
	}
	rec.ID = uuid.New()
	if err := s.history.Create(ctx, rec); err != nil {
		log.Printf("analysisService: recording analysis for %s failed: %v", rec.Filename, err)
	}
}

func intField(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
