// Package lint validates structural-metadata documents by resolving
// every property declaration into a property view and collecting the
// failures.
package lint

import (
	"fmt"
	"sort"
	"time"

	"github.com/tilemeta/structmeta/pkg/log"
	"github.com/tilemeta/structmeta/pkg/propview"
	"github.com/tilemeta/structmeta/pkg/schema"
)

// Issue represents a single validation finding.
type Issue struct {
	Code     string
	Context  string
	Class    string
	Property string
	Status   propview.Status
	Message  string
}

func (i Issue) Error() string {
	where := i.Context
	if i.Class != "" {
		where += "/" + i.Class
	}
	if i.Property != "" {
		where += "/" + i.Property
	}
	return fmt.Sprintf("%s: %s: %s", where, i.Code, i.Message)
}

// Result contains the findings of a document validation.
type Result struct {
	// Valid is true if the document passed all checks.
	Valid bool

	// Errors contains all validation errors.
	Errors []Issue

	// Warnings contains non-fatal issues.
	Warnings []Issue
}

// AddError adds a validation error.
func (r *Result) AddError(issue Issue) {
	r.Errors = append(r.Errors, issue)
	r.Valid = false
}

// AddWarning adds a validation warning.
func (r *Result) AddWarning(issue Issue) {
	r.Warnings = append(r.Warnings, issue)
}

// Validator checks documents against the property view rules.
type Validator struct {
	// Strict reproduces the upstream max/min acceptance rule that
	// requires a resolved scale.
	Strict bool

	// Logger receives a run event per finding. Nil disables logging.
	Logger log.Logger

	// RunID tags the emitted events. Empty is allowed.
	RunID string

	// Source names the document in emitted events.
	Source string
}

// NewValidator creates a validator with default settings.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate resolves every property declaration in the document and
// returns the collected findings.
func (v *Validator) Validate(doc *schema.Document) *Result {
	result := &Result{Valid: true}

	if doc.Schema == nil {
		result.AddError(Issue{
			Code:    "SCHEMA",
			Context: "document",
			Message: "document has no schema",
		})
		v.emit(result)
		return result
	}

	v.checkClasses(doc.Schema, result)
	v.checkTables(doc, result)
	v.checkTextures(doc, result)

	v.emit(result)
	return result
}

func (v *Validator) options() []propview.Option {
	if v.Strict {
		return []propview.Option{propview.RequireScaleForRange()}
	}
	return nil
}

func (v *Validator) checkClasses(s *schema.Schema, result *Result) {
	for _, classID := range sortedKeys(s.Classes) {
		class := s.Classes[classID]
		for _, propID := range sortedKeys(class.Properties) {
			cp := class.Properties[propID]
			v.checkClassProperty(classID, propID, cp, result)
		}
	}
}

func (v *Validator) checkClassProperty(classID, propID string, cp *schema.ClassProperty, result *Result) {
	if propview.PropertyTypeFromString(cp.Type) == propview.TypeEnum {
		if cp.EnumType == "" {
			result.AddError(Issue{
				Code:    "ENUM",
				Context: "schema",
				Class:   classID, Property: propID,
				Message: "ENUM property without enumType",
			})
		} else {
			result.AddWarning(Issue{
				Code:    "ENUM",
				Context: "schema",
				Class:   classID, Property: propID,
				Message: "ENUM property skipped (symbol resolution not performed)",
			})
		}
		return
	}

	shape, ok := propview.ShapeOf(cp)
	if !ok {
		result.AddError(Issue{
			Code:    "SHAPE",
			Context: "schema",
			Class:   classID, Property: propID,
			Message: fmt.Sprintf("declaration %q/%q has no viewable shape", cp.Type, cp.ComponentType),
		})
		return
	}

	if cp.Count > 0 && !cp.Array {
		result.AddWarning(Issue{
			Code:    "COUNT",
			Context: "schema",
			Class:   classID, Property: propID,
			Message: "count declared on a non-array property",
		})
	}

	view := propview.View(shape, cp, v.options()...)
	if !view.Status().IsValid() {
		result.AddError(Issue{
			Code:    "VIEW",
			Context: "schema",
			Class:   classID, Property: propID,
			Status:  view.Status(),
			Message: fmt.Sprintf("property view construction failed: %v", view.Status()),
		})
	}
}

func (v *Validator) checkTables(doc *schema.Document, result *Result) {
	for i, table := range doc.PropertyTables {
		ctx := fmt.Sprintf("propertyTables[%d]", i)
		v.checkInstance(doc.Schema, ctx, table.Class, overrideProps(table.Properties), result)
	}
}

func (v *Validator) checkTextures(doc *schema.Document, result *Result) {
	for i, texture := range doc.PropertyTextures {
		ctx := fmt.Sprintf("propertyTextures[%d]", i)
		v.checkInstance(doc.Schema, ctx, texture.Class, overrideTextureProps(texture.Properties), result)
	}
}

// checkInstance resolves each instance property against its class
// declaration, applying the instance's offset/scale/max/min override.
func (v *Validator) checkInstance(s *schema.Schema, ctx, classID string, props map[string]schema.Override, result *Result) {
	class, ok := s.Classes[classID]
	if !ok {
		result.AddError(Issue{
			Code:    "CLASS",
			Context: ctx,
			Class:   classID,
			Message: fmt.Sprintf("class %q is not defined in the schema", classID),
		})
		return
	}

	for _, propID := range sortedKeys(props) {
		cp, ok := class.Properties[propID]
		if !ok {
			result.AddError(Issue{
				Code:    "PROPERTY",
				Context: ctx,
				Class:   classID, Property: propID,
				Message: fmt.Sprintf("property %q is not declared by class %q", propID, classID),
			})
			continue
		}

		if propview.PropertyTypeFromString(cp.Type) == propview.TypeEnum {
			continue
		}

		shape, ok := propview.ShapeOf(cp)
		if !ok {
			// Already reported against the class declaration.
			continue
		}

		view := propview.ViewWithOverride(shape, cp, props[propID], v.options()...)
		if !view.Status().IsValid() {
			result.AddError(Issue{
				Code:    "VIEW",
				Context: ctx,
				Class:   classID, Property: propID,
				Status:  view.Status(),
				Message: fmt.Sprintf("property view construction failed: %v", view.Status()),
			})
		}
	}
}

// emit sends the findings to the configured logger.
func (v *Validator) emit(result *Result) {
	if v.Logger == nil {
		return
	}

	for _, issue := range result.Warnings {
		v.Logger.Log(v.event(issue, log.SeverityWarning))
	}
	for _, issue := range result.Errors {
		v.Logger.Log(v.event(issue, log.SeverityError))
	}

	summary := log.Event{
		Timestamp: time.Now(),
		RunID:     v.RunID,
		Stage:     log.StageRun,
		Severity:  log.SeverityInfo,
		Source:    v.Source,
		Message:   fmt.Sprintf("validation finished: %d errors, %d warnings", len(result.Errors), len(result.Warnings)),
	}
	if !result.Valid {
		summary.Severity = log.SeverityError
	}
	v.Logger.Log(summary)
}

func (v *Validator) event(issue Issue, severity log.Severity) log.Event {
	return log.Event{
		Timestamp:  time.Now(),
		RunID:      v.RunID,
		Stage:      log.StageResolve,
		Severity:   severity,
		Source:     v.Source,
		Class:      issue.Class,
		Property:   issue.Property,
		Context:    issue.Context,
		StatusCode: int32(issue.Status),
		Message:    issue.Message,
	}
}

func overrideProps(props map[string]*schema.PropertyTableProperty) map[string]schema.Override {
	out := make(map[string]schema.Override, len(props))
	for id, p := range props {
		out[id] = p
	}
	return out
}

func overrideTextureProps(props map[string]*schema.PropertyTextureProperty) map[string]schema.Override {
	out := make(map[string]schema.Override, len(props))
	for id, p := range props {
		out[id] = p
	}
	return out
}

// sortedKeys keeps finding order deterministic across runs.
func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
