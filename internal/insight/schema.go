package insight

// Field is one contractually required key of an endpoint's insight schema,
// paired with the documented placeholder used when the model omits or
// corrupts it.
type Field struct {
	Name    string
	Default any
}

// Schema is the ordered set of required fields for one endpoint. Order only
// matters for deterministic iteration; lookups go through the name.
type Schema []Field

// Defaults returns a fresh all-defaults result for the schema.
func (s Schema) Defaults() map[string]any {
	out := make(map[string]any, len(s))
	for _, f := range s {
		out[f.Name] = f.Default
	}
	return out
}

// ReviewSchema is the 5-category resume review produced by /upload_resume.
func ReviewSchema() Schema {
	return Schema{
		{Name: "score", Default: 0},
		{Name: "content_score", Default: 0},
		{Name: "format_score", Default: 0},
		{Name: "sections_score", Default: 0},
		{Name: "skills_score", Default: 0},
		{Name: "ats_parse_rate", Default: 0},
		{Name: "analysis", Default: []any{}},
	}
}

// SuitabilitySchema is the job-role suitability judgment merged into
// /predict_job_role responses.
func SuitabilitySchema() Schema {
	return Schema{
		{Name: "job_role", Default: "Unable to predict"},
		{Name: "confidence", Default: "0.00%"},
		{Name: "missing_skills", Default: []any{}},
		{Name: "recommended_skills", Default: []any{}},
	}
}

// SkillsSchema is the skills inventory produced by /analyze_skills.
func SkillsSchema() Schema {
	return Schema{
		{Name: "top_skills", Default: []any{map[string]any{"name": "None Identified", "frequency": 0}}},
		{Name: "skill_categories", Default: map[string]any{"General": []any{"None"}}},
		{Name: "recommended_skills", Default: []any{"Add relevant skills"}},
		{Name: "missing_industry_skills", Default: []any{"Unable to determine"}},
	}
}

// ProjectsSchema is the project-quality analysis merged into /upload_resume
// responses.
func ProjectsSchema() Schema {
	return Schema{
		{Name: "projects_found", Default: 0},
		{Name: "project_quality_score", Default: 0},
		{Name: "project_impact", Default: []any{}},
		{Name: "improvement_suggestions", Default: []any{"Add project details to strengthen resume"}},
		{Name: "missing_elements", Default: []any{"No projects detected"}},
	}
}
