package schemalens

import (
	"fmt"
	"strings"
	"unicode"
)

// validJoinTypes lists the join types accepted in view specifications.
var validJoinTypes = map[string]struct{}{
	"INNER": {},
	"LEFT":  {},
	"RIGHT": {},
	"FULL":  {},
	"CROSS": {},
}

// JoinSpec represents a single join in a view's query specification.
type JoinSpec struct {
	Type  string `json:"type" yaml:"type"`
	Table string `json:"table" yaml:"table"` // table name with optional alias
	On    string `json:"on" yaml:"on"`
}

// Normalize upper-cases the join type and rejects unknown types.
// An empty type defaults to INNER.
func (j *JoinSpec) Normalize() error {
	joinType := strings.ToUpper(strings.TrimSpace(j.Type))
	if joinType == "" {
		joinType = "INNER"
	}

	if _, ok := validJoinTypes[joinType]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidJoinType, j.Type)
	}

	j.Type = joinType

	return nil
}

// QuerySpec represents the structured query of a candidate view.
type QuerySpec struct {
	Select  []string   `json:"select" yaml:"select"`
	From    string     `json:"from" yaml:"from"` // base table with optional alias
	Joins   []JoinSpec `json:"joins" yaml:"joins"`
	Where   []string   `json:"where" yaml:"where"`       // AND combined
	GroupBy []string   `json:"group_by" yaml:"group_by"`
	Having  []string   `json:"having" yaml:"having"` // AND combined
	OrderBy []string   `json:"order_by" yaml:"order_by"`
}

// ViewDefinition is a complete candidate view produced by an external
// generator. It is an immutable input to validation once normalized.
type ViewDefinition struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Query       QuerySpec      `json:"query" yaml:"query"`
	Metadata    map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// SanitizeViewName normalizes a view name: lower-cased, spaces and hyphens
// replaced with underscores, all other non-alphanumeric characters stripped.
// A name that is empty after sanitization is a construction error.
func SanitizeViewName(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")

	var b strings.Builder

	for _, r := range name {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return "", ErrEmptyViewName
	}

	return b.String(), nil
}

// Normalize sanitizes the view name and normalizes all join types.
// Any failure is a construction error: the view must not be validated.
func (v *ViewDefinition) Normalize() error {
	name, err := SanitizeViewName(v.Name)
	if err != nil {
		return fmt.Errorf("view %q: %w", v.Name, err)
	}

	v.Name = name

	for i := range v.Query.Joins {
		if err := v.Query.Joins[i].Normalize(); err != nil {
			return fmt.Errorf("view %q: %w", v.Name, err)
		}
	}

	return nil
}

// ValidationResult is the verdict for a single view specification.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	ViewName string   `json:"view_name"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	SQL      string   `json:"sql,omitempty"` // set only when valid
}
