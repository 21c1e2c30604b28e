package validate

// Severity grades a violation. Errors make a document invalid; warnings are
// style advice carried over into the result for the author to act on.
type Severity string

// Severity values.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Code classifies a violation for machine consumers.
type Code string

// Violation codes.
const (
	CodeMissingRequired Code = "missing_required"
	CodeUnexpectedField Code = "unexpected_field"
	CodeWrongType       Code = "wrong_type"
	CodeInvalidEnum     Code = "invalid_enum"
	CodeInvalidValue    Code = "invalid_value"
	CodeStyle           Code = "style"
)

// Violation is a single mismatch between a document and the recipe schema.
// Path addresses the offending field (e.g. "ingredients[2].unit"); it is
// empty when the document as a whole is at fault. Line and Column point at
// the YAML source when known.
type Violation struct {
	Path     string   `json:"path,omitempty"`
	Code     Code     `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Line     int      `json:"line,omitempty"`
	Column   int      `json:"column,omitempty"`
}

// Result holds every violation found in one document, in the order the
// checks encountered them. Validation never stops at the first failure.
type Result struct {
	Violations []Violation `json:"violations"`
}

// Valid reports whether the document satisfies the schema. Warnings do not
// make a document invalid.
func (r *Result) Valid() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Counts returns the number of error and warning violations.
func (r *Result) Counts() (errors, warnings int) {
	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			errors++
		} else {
			warnings++
		}
	}
	return errors, warnings
}

func (r *Result) add(v Violation) {
	r.Violations = append(r.Violations, v)
}
