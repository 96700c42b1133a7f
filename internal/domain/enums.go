package domain

// DocumentFormat is the declared format of an uploaded resume, derived from
// the file extension.
type DocumentFormat string

const (
	FormatPDF   DocumentFormat = "pdf"
	FormatDOCX  DocumentFormat = "docx"
	FormatOther DocumentFormat = "other"
)

// FormatFromExtension maps a lowercase file extension (without dot) to a
// DocumentFormat. Anything but pdf/docx is FormatOther.
func FormatFromExtension(ext string) DocumentFormat {
	switch ext {
	case "pdf":
		return FormatPDF
	case "docx":
		return FormatDOCX
	default:
		return FormatOther
	}
}

// Supported reports whether the format can be handled by the text extractor.
func (f DocumentFormat) Supported() bool {
	return f == FormatPDF || f == FormatDOCX
}

// Model type labels used to namespace merged prediction results.
const (
	ModelTypeML     = "ML Model"
	ModelTypeGemini = "Gemini AI"
)

// AnalysisKind identifies which endpoint produced an analysis record.
type AnalysisKind string

const (
	AnalysisKindReview  AnalysisKind = "review"
	AnalysisKindPredict AnalysisKind = "predict"
	AnalysisKindSkills  AnalysisKind = "skills"
)
