package dictweaver

import (
	"fmt"
	"regexp"
)

// Validator is an extra per-entry rule run during load, beyond the built-in
// checklist. Validators only report; they never decide whether an entry is
// kept.
type Validator interface {
	// Validate checks one candidate entry. line is the 1-based input line.
	Validate(key, value string, line int) []Issue
}

// KeyPatternValidator flags entries whose key does not match a pattern.
type KeyPatternValidator struct {
	Pattern     *regexp.Regexp
	Description string // human-readable statement of what the pattern expects
}

// Validate implements the Validator interface.
func (v *KeyPatternValidator) Validate(key, _ string, line int) []Issue {
	if v.Pattern.MatchString(key) {
		return nil
	}
	return []Issue{{
		Rule:    CustomRule,
		Line:    line,
		Text:    key,
		Message: fmt.Sprintf("key %q does not match expected format: %s", key, v.Description),
	}}
}

// FuncValidator adapts a plain function into a Validator.
type FuncValidator struct {
	ValidateFunc func(key, value string, line int) []Issue
}

// Validate implements the Validator interface.
func (v *FuncValidator) Validate(key, value string, line int) []Issue {
	return v.ValidateFunc(key, value, line)
}

// ValidatorRegistry holds the extra rules a caller wants applied to every
// entry during load.
type ValidatorRegistry struct {
	validators []Validator
}

// NewValidatorRegistry creates an empty registry.
func NewValidatorRegistry() *ValidatorRegistry {
	return &ValidatorRegistry{}
}

// Register adds a validator. Nil validators are ignored.
func (r *ValidatorRegistry) Register(v Validator) {
	if v == nil {
		return
	}
	r.validators = append(r.validators, v)
}

// RegisterKeyPattern compiles pattern and registers a KeyPatternValidator.
func (r *ValidatorRegistry) RegisterKeyPattern(pattern, description string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid key pattern %q: %w", pattern, err)
	}
	r.Register(&KeyPatternValidator{Pattern: re, Description: description})
	return nil
}

// RegisterFunc registers a FuncValidator.
func (r *ValidatorRegistry) RegisterFunc(f func(key, value string, line int) []Issue) {
	r.Register(&FuncValidator{ValidateFunc: f})
}

// ValidateEntry runs every registered validator against one entry, in
// registration order.
func (r *ValidatorRegistry) ValidateEntry(key, value string, line int) []Issue {
	var issues []Issue
	for _, v := range r.validators {
		issues = append(issues, v.Validate(key, value, line)...)
	}
	return issues
}
