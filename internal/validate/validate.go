// Package validate checks recipe documents against the recipe schema. The
// validator is a pure, stateless, single-pass structural check: it
// accumulates every violation it finds instead of stopping at the first, so
// the author gets complete feedback in one run.
package validate

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/barcart/barcart/internal/models"
	"github.com/barcart/barcart/internal/parser"
)

var recipeFields = map[string]struct{}{
	"title": {}, "version": {}, "description": {}, "author": {}, "source": {},
	"yield": {}, "preparation": {}, "served": {}, "glass": {},
	"ingredients": {}, "instructions": {}, "notes": {},
}

// Required top-level keys, in reporting order.
var requiredRecipeFields = []string{"title", "version", "ingredients", "instructions"}

var ingredientFields = map[string]struct{}{
	"ingredient": {}, "quantity": {}, "unit": {}, "examples": {},
	"suggested": {}, "notes": {},
}

// Document validates one recipe document. The returned error is non-nil only
// when data is not well-formed YAML (a *parser.ParseError); schema
// violations are reported through the Result, never as an error.
func Document(data []byte) (*Result, error) {
	doc, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	// Violations marshal as [] rather than null when the document is clean.
	res := &Result{Violations: []Violation{}}

	root := doc.Root()
	if root == nil {
		res.add(Violation{
			Code:     CodeWrongType,
			Severity: SeverityError,
			Message:  "document is empty, expected a recipe mapping",
		})
		return res, nil
	}
	root = resolve(root)
	if root.Kind != yaml.MappingNode {
		res.add(Violation{
			Code:     CodeWrongType,
			Severity: SeverityError,
			Message:  "document is not a mapping",
			Line:     root.Line,
			Column:   root.Column,
		})
		return res, nil
	}

	checkRecipe(root, res)

	// Content lints run on the typed view only when the structural pass was
	// clean. Decoding alone is not a safe gate: yaml coerces scalars across
	// types, so a document that already failed a type check can still decode
	// and would pick up lints on the coerced values.
	if errs, _ := res.Counts(); errs == 0 {
		var rec models.Recipe
		if err := doc.Decode(&rec); err == nil {
			lint(&rec, res)
		}
	}

	return res, nil
}

// checkRecipe walks the top-level mapping in document order, then reports
// any required keys that never appeared.
func checkRecipe(root *yaml.Node, res *Result) {
	seen := make(map[string]bool, len(root.Content)/2)

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		val := resolve(root.Content[i+1])
		name := key.Value

		if _, ok := recipeFields[name]; !ok {
			res.add(Violation{
				Path:     name,
				Code:     CodeUnexpectedField,
				Severity: SeverityError,
				Message:  fmt.Sprintf("unexpected field %q", name),
				Line:     key.Line,
				Column:   key.Column,
			})
			continue
		}
		seen[name] = true
		checkRecipeField(name, val, res)
	}

	for _, name := range requiredRecipeFields {
		if !seen[name] {
			res.add(Violation{
				Path:     name,
				Code:     CodeMissingRequired,
				Severity: SeverityError,
				Message:  fmt.Sprintf("missing required field %q", name),
				Line:     root.Line,
				Column:   root.Column,
			})
		}
	}
}

func checkRecipeField(name string, val *yaml.Node, res *Result) {
	switch name {
	case "title", "description", "author", "source", "notes":
		requireString(name, val, res)

	case "version", "yield":
		requireNumber(name, val, res)

	case "preparation":
		checkEnum(name, val, res, func(s string) bool { return models.Preparation(s).Valid() }, nameList(models.Preparations))

	case "served":
		checkEnum(name, val, res, func(s string) bool { return models.Served(s).Valid() }, nameList(models.Serveds))

	case "glass":
		checkEnum(name, val, res, func(s string) bool { return models.Glass(s).Valid() }, nameList(models.Glasses))

	case "ingredients":
		if !requireSequence(name, val, res) {
			return
		}
		for i, elem := range val.Content {
			checkIngredient(fmt.Sprintf("ingredients[%d]", i), resolve(elem), res)
		}

	case "instructions":
		if !requireSequence(name, val, res) {
			return
		}
		for i, elem := range val.Content {
			requireString(fmt.Sprintf("instructions[%d]", i), resolve(elem), res)
		}
	}
}

// checkIngredient validates one element of the ingredients sequence against
// the closed six-key ingredient shape.
func checkIngredient(path string, n *yaml.Node, res *Result) {
	if n.Kind != yaml.MappingNode {
		res.add(Violation{
			Path:     path,
			Code:     CodeWrongType,
			Severity: SeverityError,
			Message:  "expected a mapping",
			Line:     n.Line,
			Column:   n.Column,
		})
		return
	}

	hasName := false
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		val := resolve(n.Content[i+1])
		name := key.Value
		fieldPath := path + "." + name

		if _, ok := ingredientFields[name]; !ok {
			res.add(Violation{
				Path:     fieldPath,
				Code:     CodeUnexpectedField,
				Severity: SeverityError,
				Message:  fmt.Sprintf("unexpected field %q", name),
				Line:     key.Line,
				Column:   key.Column,
			})
			continue
		}

		switch name {
		case "ingredient":
			hasName = true
			requireString(fieldPath, val, res)
		case "quantity":
			requireNumber(fieldPath, val, res)
		case "unit":
			checkEnum(fieldPath, val, res, func(s string) bool { return models.Unit(s).Valid() }, nameList(models.Units))
		case "suggested", "notes":
			requireString(fieldPath, val, res)
		case "examples":
			if !requireSequence(fieldPath, val, res) {
				continue
			}
			for j, elem := range val.Content {
				requireString(fmt.Sprintf("%s[%d]", fieldPath, j), resolve(elem), res)
			}
		}
	}

	if !hasName {
		res.add(Violation{
			Path:     path + ".ingredient",
			Code:     CodeMissingRequired,
			Severity: SeverityError,
			Message:  `missing required field "ingredient"`,
			Line:     n.Line,
			Column:   n.Column,
		})
	}
}

func checkEnum(path string, n *yaml.Node, res *Result, valid func(string) bool, allowed string) {
	if !requireString(path, n, res) {
		return
	}
	if !valid(n.Value) {
		res.add(Violation{
			Path:     path,
			Code:     CodeInvalidEnum,
			Severity: SeverityError,
			Message:  fmt.Sprintf("%q is not one of: %s", n.Value, allowed),
			Line:     n.Line,
			Column:   n.Column,
		})
	}
}

func requireString(path string, n *yaml.Node, res *Result) bool {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" {
		return true
	}
	res.add(wrongType(path, n, "expected a string"))
	return false
}

func requireNumber(path string, n *yaml.Node, res *Result) bool {
	if n.Kind == yaml.ScalarNode && (n.Tag == "!!int" || n.Tag == "!!float") {
		return true
	}
	res.add(wrongType(path, n, "expected a number"))
	return false
}

func requireSequence(path string, n *yaml.Node, res *Result) bool {
	if n.Kind == yaml.SequenceNode {
		return true
	}
	res.add(wrongType(path, n, "expected a sequence"))
	return false
}

func wrongType(path string, n *yaml.Node, msg string) Violation {
	return Violation{
		Path:     path,
		Code:     CodeWrongType,
		Severity: SeverityError,
		Message:  msg,
		Line:     n.Line,
		Column:   n.Column,
	}
}

// resolve follows alias nodes so anchored values are checked in place.
func resolve(n *yaml.Node) *yaml.Node {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}

func nameList[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
