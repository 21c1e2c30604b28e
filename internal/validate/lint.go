package validate

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/barcart/barcart/internal/models"
)

// lint applies the content rules that sit beyond the structural schema:
// positive version/yield/quantity (errors) and length advice on the prose
// fields (warnings). Rules skip absent fields; ozzo already skips empty
// values for length checks.
func lint(rec *models.Recipe, res *Result) {
	lintWarn(res, "title", validation.Validate(rec.Title, validation.Length(4, 30)))
	lintWarn(res, "description", validation.Validate(rec.Description, validation.Length(40, 0)))
	lintWarn(res, "author", validation.Validate(rec.Author, validation.Length(8, 100)))
	lintWarn(res, "source", validation.Validate(rec.Source, validation.Length(10, 120)))
	lintWarn(res, "notes", validation.Validate(rec.Notes, validation.Length(10, 0)))

	if rec.Version != 0 {
		lintErr(res, "version", validation.Validate(rec.Version, validation.Min(1.0)))
	}
	if rec.Yield != 0 {
		lintErr(res, "yield", validation.Validate(rec.Yield, validation.Min(1.0)))
	}

	for i, ing := range rec.Ingredients {
		if ing.Quantity != 0 {
			path := fmt.Sprintf("ingredients[%d].quantity", i)
			lintErr(res, path, validation.Validate(ing.Quantity, validation.Min(0.0).Exclusive()))
		}
	}
}

func lintWarn(res *Result, path string, err error) {
	if err == nil {
		return
	}
	res.add(Violation{
		Path:     path,
		Code:     CodeStyle,
		Severity: SeverityWarning,
		Message:  err.Error(),
	})
}

func lintErr(res *Result, path string, err error) {
	if err == nil {
		return
	}
	res.add(Violation{
		Path:     path,
		Code:     CodeInvalidValue,
		Severity: SeverityError,
		Message:  err.Error(),
	})
}
