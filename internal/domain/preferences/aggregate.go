package preferences

import (
	"math"

	"github.com/datifyy/datifyy-api/internal/pkg/validation"
)

const maxRecommendations = 5

// Summary condenses one aggregate validation pass
type Summary struct {
	TotalErrors           int      `json:"totalErrors"`
	TotalWarnings         int      `json:"totalWarnings"`
	CriticalErrors        int      `json:"criticalErrors"`
	CompletionScore       int      `json:"completionScore"`
	MissingRequiredFields []string `json:"missingRequiredFields"`
	Recommendations       []string `json:"recommendations"`
}

// Result is the outcome of validating a full preference record
type Result struct {
	IsValid     bool                         `json:"isValid"`
	Errors      []*validation.Error          `json:"errors"`
	Warnings    []*validation.Error          `json:"warnings"`
	FieldErrors map[string]*validation.Error `json:"fieldErrors"`
	Summary     *Summary                     `json:"summary"`
}

// Engine runs the full validation pass: per-field checks over the form
// config, then cross-field rules, then business rules. Each engine owns its
// field-result cache; build one per form session.
type Engine struct {
	fields *FieldValidator
}

// NewEngine creates a validation engine with a fresh cache
func NewEngine() *Engine {
	return &Engine{fields: NewFieldValidator()}
}

// Validate runs every check and aggregates the results
func (e *Engine) Validate(in *PreferencesInput) *Result {
	var results []*validation.Error

	config := FormConfig()
	filled := 0
	var missingRequired []string

	for _, f := range config {
		value := in.fieldValue(f.Name)
		if !isEmpty(value) {
			filled++
		} else if f.Required {
			missingRequired = append(missingRequired, f.Name)
		}
		if res := e.fields.ValidateField(f.Name, value); res != nil {
			results = append(results, res)
		}
	}

	results = append(results, ValidateCrossFields(in)...)
	results = append(results, ValidateBusinessRules(in)...)

	errs, warnings := validation.Partition(results)

	// Error-wins per field: a warning never displaces an error, and the
	// first error sticks.
	fieldErrors := make(map[string]*validation.Error)
	for _, res := range results {
		existing, ok := fieldErrors[res.Field]
		if !ok || (existing.Type == validation.TypeWarning && res.Type == validation.TypeError) {
			fieldErrors[res.Field] = res
		}
	}

	critical := 0
	for _, err := range errs {
		if err.Priority == validation.PriorityHigh {
			critical++
		}
	}

	score := int(math.Round(float64(filled) / float64(len(config)) * 100))

	return &Result{
		IsValid:     len(errs) == 0,
		Errors:      errs,
		Warnings:    warnings,
		FieldErrors: fieldErrors,
		Summary: &Summary{
			TotalErrors:           len(errs),
			TotalWarnings:         len(warnings),
			CriticalErrors:        critical,
			CompletionScore:       score,
			MissingRequiredFields: missingRequired,
			Recommendations:       buildRecommendations(in, warnings),
		},
	}
}

// buildRecommendations walks a fixed priority-ordered rule list and keeps
// the first maxRecommendations that apply.
func buildRecommendations(in *PreferencesInput, warnings []*validation.Error) []string {
	var recs []string

	if len(in.Hobbies) < 3 {
		recs = append(recs, "Add at least 3 hobbies to help us find your kind of people")
	}
	if len(in.Interests) < 3 {
		recs = append(recs, "Add more interests to improve your matches")
	}
	if len(in.PersonalityTraits) < 3 {
		recs = append(recs, "Pick a few personality traits you value in a partner")
	}
	if isEmpty(strValue(in.RelationshipGoals)) {
		recs = append(recs, "Set your relationship goals so matches know what you're looking for")
	}
	if isEmpty(strValue(in.WhatOtherPersonShouldKnow)) {
		recs = append(recs, "Tell potential matches something about yourself")
	}
	for _, w := range warnings {
		if w.Code == "AGE_RANGE_TOO_WIDE" {
			recs = append(recs, "Consider narrowing your age range for better matches")
			break
		}
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
