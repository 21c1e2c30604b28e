package validate

import "testing"

func TestShortTitleWarns(t *testing.T) {
	doc := "title: Gin\nversion: 1\ningredients: []\ninstructions: []\n"
	res := mustValidate(t, doc)
	if !res.Valid() {
		t.Errorf("warnings must not invalidate the document: %+v", res.Violations)
	}
	if !hasViolation(res, "title", CodeStyle) {
		t.Errorf("expected a style warning on title, got %+v", res.Violations)
	}
	if _, warnings := res.Counts(); warnings != 1 {
		t.Errorf("warnings = %d, want 1", warnings)
	}
}

func TestShortDescriptionWarns(t *testing.T) {
	res := mustValidate(t, margarita+"description: Tart and salty.\n")
	if !hasViolation(res, "description", CodeStyle) {
		t.Errorf("expected a style warning on description, got %+v", res.Violations)
	}
	if !res.Valid() {
		t.Error("description warning must not invalidate the document")
	}
}

func TestLongProseAccepted(t *testing.T) {
	doc := margarita +
		"description: A bright and citrusy classic that balances tequila against lime.\n" +
		"author: Jane Barfly\n" +
		"source: Death and Co (2014), page 112\n" +
		"notes: Salt half the rim so the drinker can choose.\n"
	res := mustValidate(t, doc)
	if len(res.Violations) != 0 {
		t.Errorf("expected no violations, got %+v", res.Violations)
	}
}

func TestNegativeVersion(t *testing.T) {
	doc := "title: Test Drink\nversion: -1\ningredients: []\ninstructions: []\n"
	res := mustValidate(t, doc)
	if !hasViolation(res, "version", CodeInvalidValue) {
		t.Errorf("expected invalid_value on version, got %+v", res.Violations)
	}
	if res.Valid() {
		t.Error("negative version should invalidate the document")
	}
}

func TestNegativeYield(t *testing.T) {
	doc := "title: Test Drink\nversion: 1\nyield: -2\ningredients: []\ninstructions: []\n"
	res := mustValidate(t, doc)
	if !hasViolation(res, "yield", CodeInvalidValue) {
		t.Errorf("expected invalid_value on yield, got %+v", res.Violations)
	}
}

func TestNegativeQuantity(t *testing.T) {
	doc := `title: Test Drink
version: 1
ingredients:
  - ingredient: gin
    quantity: -2
instructions: []
`
	res := mustValidate(t, doc)
	if !hasViolation(res, "ingredients[0].quantity", CodeInvalidValue) {
		t.Errorf("expected invalid_value on quantity, got %+v", res.Violations)
	}
	if res.Valid() {
		t.Error("negative quantity should invalidate the document")
	}
}

func TestLintsSkippedWhenStructureBroken(t *testing.T) {
	// Title has the wrong type. The decode still succeeds because yaml
	// coerces the integer into the string field, so the lints must be held
	// back by the structural error, not by the decode.
	doc := "title: 99\nversion: 1\ningredients: []\ninstructions: []\n"
	res := mustValidate(t, doc)
	if len(res.Violations) != 1 {
		t.Errorf("expected only the structural violation, got %+v", res.Violations)
	}
	if !hasViolation(res, "title", CodeWrongType) {
		t.Errorf("expected wrong_type on title, got %+v", res.Violations)
	}
}

func TestLintsSkippedOnAnyStructuralError(t *testing.T) {
	// The unexpected field is the only structural problem, but it still
	// suppresses the short-title warning: lints on a broken document are
	// noise until the structure is fixed.
	doc := "title: Gin\nversion: 1\ncolour: green\ningredients: []\ninstructions: []\n"
	res := mustValidate(t, doc)
	if len(res.Violations) != 1 {
		t.Errorf("expected only the structural violation, got %+v", res.Violations)
	}
	if !hasViolation(res, "colour", CodeUnexpectedField) {
		t.Errorf("expected unexpected_field on colour, got %+v", res.Violations)
	}
}
