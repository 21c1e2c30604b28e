package mcpserver

// RecipeFormatContract describes the canonical recipe file format that
// LLM consumers should follow when drafting or reviewing recipes.
const RecipeFormatContract = `# Barcart Recipe Format Contract

Every recipe stored in the library is one YAML file describing one cocktail
or prepared ingredient.

## Structure

` + "```" + `yaml
title: Margarita                    # REQUIRED - display name
version: 1                          # REQUIRED - revision number, starts at 1
description: Bright, citrusy, salty # optional prose
author: Jane Doe                    # optional
source: Death & Co (2014)           # optional
yield: 1                            # optional - servings unscaled, default 1
preparation: shaken                 # optional - blended|built|shaken|stirred
served: straight up                 # optional - neat|on a rock|on crushed ice|on the rocks|straight up
glass: coupe                        # optional - collins|coupe|fishbowl|highball|hurricane|lowball|martini|mug|shot|tiki|toddy|wine
ingredients:                        # REQUIRED - order is the writer's intent
  - ingredient: tequila             # REQUIRED per entry - generic name
    quantity: 2                     # optional number, default 1
    unit: ounce                     # optional - barspoon|cup|dash|drop|gram|ounce|rinse|splash|spritz|teaspoon|tablespoon|twist; omitted means "each"
    examples:                       # optional - specific bottles that work
      - Espolon Blanco
    suggested: Fortaleza Blanco     # optional - preferred brand
    notes: 100% agave only          # optional
instructions:                       # REQUIRED - ordered steps, each a string
  - Shake all ingredients with ice.
  - Strain into the glass.
notes: Salt half the rim.           # optional
` + "```" + `

## Rules

1. **Required keys** are title, version, ingredients, and instructions.
   The two sequences may be empty but the keys must be present.
2. **No extra keys.** Recipes accept only the keys above; ingredient
   entries accept only their six named keys.
3. **Enumerated fields** (preparation, served, glass, unit) take only the
   listed values, spelled exactly as shown, lowercase.
4. **Order matters.** Ingredients are listed in the order they are added;
   instructions are numbered steps.
5. **Numbers are plain YAML numbers** - no quoting, no units inside the
   quantity value.
6. **File names** end with .yaml (or .yml) and use forward slashes.

Fetch the machine-readable JSON Schema from the barcart://schema resource.
`
