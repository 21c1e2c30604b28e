// Package models defines the domain types for barcart: the recipe and
// ingredient shapes shared by the validator, the schema artifact, and the
// library service.
package models

import "time"

// Preparation is the method used to combine a drink.
type Preparation string

// Preparation values.
const (
	PrepBlended Preparation = "blended"
	PrepBuilt   Preparation = "built"
	PrepShaken  Preparation = "shaken"
	PrepStirred Preparation = "stirred"
)

// Preparations is the closed set of valid preparation methods.
var Preparations = []Preparation{PrepBlended, PrepBuilt, PrepShaken, PrepStirred}

// Valid reports whether p is a member of the closed set.
func (p Preparation) Valid() bool {
	for _, v := range Preparations {
		if p == v {
			return true
		}
	}
	return false
}

// Served describes how a finished drink reaches the glass.
type Served string

// Served values.
const (
	ServedNeat         Served = "neat"
	ServedOnARock      Served = "on a rock"
	ServedOnCrushedIce Served = "on crushed ice"
	ServedOnTheRocks   Served = "on the rocks"
	ServedStraightUp   Served = "straight up"
)

// Serveds is the closed set of valid served styles.
var Serveds = []Served{ServedNeat, ServedOnARock, ServedOnCrushedIce, ServedOnTheRocks, ServedStraightUp}

// Valid reports whether s is a member of the closed set.
func (s Served) Valid() bool {
	for _, v := range Serveds {
		if s == v {
			return true
		}
	}
	return false
}

// Glass names the vessel a drink is served in.
type Glass string

// Glass values.
const (
	GlassCollins   Glass = "collins"
	GlassCoupe     Glass = "coupe"
	GlassFishbowl  Glass = "fishbowl"
	GlassHighball  Glass = "highball"
	GlassHurricane Glass = "hurricane"
	GlassLowball   Glass = "lowball"
	GlassMartini   Glass = "martini"
	GlassMug       Glass = "mug"
	GlassShot      Glass = "shot"
	GlassTiki      Glass = "tiki"
	GlassToddy     Glass = "toddy"
	GlassWine      Glass = "wine"
)

// Glasses is the closed set of valid vessels.
var Glasses = []Glass{
	GlassCollins, GlassCoupe, GlassFishbowl, GlassHighball, GlassHurricane,
	GlassLowball, GlassMartini, GlassMug, GlassShot, GlassTiki, GlassToddy,
	GlassWine,
}

// Valid reports whether g is a member of the closed set.
func (g Glass) Valid() bool {
	for _, v := range Glasses {
		if g == v {
			return true
		}
	}
	return false
}

// Unit is the measure attached to an ingredient quantity. An ingredient
// without a unit is counted "each" (e.g. 1 egg white).
type Unit string

// Unit values.
const (
	UnitBarspoon   Unit = "barspoon"
	UnitCup        Unit = "cup"
	UnitDash       Unit = "dash"
	UnitDrop       Unit = "drop"
	UnitGram       Unit = "gram"
	UnitOunce      Unit = "ounce"
	UnitRinse      Unit = "rinse"
	UnitSplash     Unit = "splash"
	UnitSpritz     Unit = "spritz"
	UnitTeaspoon   Unit = "teaspoon"
	UnitTablespoon Unit = "tablespoon"
	UnitTwist      Unit = "twist"
)

// Units is the closed set of valid units.
var Units = []Unit{
	UnitBarspoon, UnitCup, UnitDash, UnitDrop, UnitGram, UnitOunce,
	UnitRinse, UnitSplash, UnitSpritz, UnitTeaspoon, UnitTablespoon,
	UnitTwist,
}

// Valid reports whether u is a member of the closed set.
func (u Unit) Valid() bool {
	for _, v := range Units {
		if u == v {
			return true
		}
	}
	return false
}

// Ingredient is one component of a recipe. It has no identity outside its
// parent recipe; listing order is the recipe writer's intent and must be
// preserved.
type Ingredient struct {
	Ingredient string   `yaml:"ingredient" json:"ingredient" jsonschema:"required,description=Generic name of the ingredient"`
	Quantity   float64  `yaml:"quantity,omitempty" json:"quantity,omitempty" jsonschema:"default=1,description=Amount of the ingredient in the given unit"`
	Unit       Unit     `yaml:"unit,omitempty" json:"unit,omitempty" jsonschema:"enum=barspoon,enum=cup,enum=dash,enum=drop,enum=gram,enum=ounce,enum=rinse,enum=splash,enum=spritz,enum=teaspoon,enum=tablespoon,enum=twist,description=Unit of measure; omitted means each"`
	Examples   []string `yaml:"examples,omitempty" json:"examples,omitempty" jsonschema:"description=Alternative specific ingredients that work well"`
	Suggested  string   `yaml:"suggested,omitempty" json:"suggested,omitempty" jsonschema:"description=Preferred brand or bottling"`
	Notes      string   `yaml:"notes,omitempty" json:"notes,omitempty" jsonschema:"description=Free-form notes about this ingredient"`
}

// Recipe is one cocktail or prepared-ingredient document. Ingredient and
// instruction order is meaningful.
type Recipe struct {
	Title        string       `yaml:"title" json:"title" jsonschema:"required,description=Display name of the recipe"`
	Version      float64      `yaml:"version" json:"version" jsonschema:"required,default=1,description=Revision number of the recipe"`
	Description  string       `yaml:"description,omitempty" json:"description,omitempty" jsonschema:"description=Short prose describing the drink"`
	Author       string       `yaml:"author,omitempty" json:"author,omitempty" jsonschema:"description=Who wrote the recipe"`
	Source       string       `yaml:"source,omitempty" json:"source,omitempty" jsonschema:"description=Where the recipe came from"`
	Yield        float64      `yaml:"yield,omitempty" json:"yield,omitempty" jsonschema:"default=1,description=Number of servings produced unscaled"`
	Preparation  Preparation  `yaml:"preparation,omitempty" json:"preparation,omitempty" jsonschema:"enum=blended,enum=built,enum=shaken,enum=stirred,description=How the drink is combined"`
	Served       Served       `yaml:"served,omitempty" json:"served,omitempty" jsonschema:"enum=neat,enum=on a rock,enum=on crushed ice,enum=on the rocks,enum=straight up,description=How the drink is served"`
	Glass        Glass        `yaml:"glass,omitempty" json:"glass,omitempty" jsonschema:"enum=collins,enum=coupe,enum=fishbowl,enum=highball,enum=hurricane,enum=lowball,enum=martini,enum=mug,enum=shot,enum=tiki,enum=toddy,enum=wine,description=Vessel the drink is served in"`
	Ingredients  []Ingredient `yaml:"ingredients" json:"ingredients" jsonschema:"required,description=Ordered components of the recipe"`
	Instructions []string     `yaml:"instructions" json:"instructions" jsonschema:"required,description=Ordered preparation steps"`
	Notes        string       `yaml:"notes,omitempty" json:"notes,omitempty" jsonschema:"description=Free-form notes about the recipe"`
}

// RecipeMetadata is a lightweight representation returned by list operations.
type RecipeMetadata struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}
