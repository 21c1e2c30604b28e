// Package schema produces the machine-readable recipe contract that is
// published alongside the data files, so authoring tools can offer inline
// validation and autocomplete.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/barcart/barcart/internal/models"
)

// ID is the canonical identifier of the published recipe schema.
const ID = "https://barcart.dev/recipe.schema.json"

// Generate reflects the recipe model into a JSON Schema document. Required
// fields and defaults come from the struct tags on models.Recipe, and object
// shapes are closed (additionalProperties: false).
func Generate() ([]byte, error) {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
	}

	s := r.Reflect(&models.Recipe{})
	s.ID = ID
	s.Title = "Cocktail Recipe"
	s.Description = "A single cocktail or prepared-ingredient recipe."

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema: marshal: %w", err)
	}
	return append(out, '\n'), nil
}
