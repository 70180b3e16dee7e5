package lookup

// Config tunes name resolution and recipe expansion.
type Config struct {
	// FuzzyThreshold is the minimum similarity accepted as a name match.
	FuzzyThreshold float64 `mapstructure:"fuzzy_threshold" default:"0.6"`
	// Suggestions is how many near matches are reported on failure.
	Suggestions int `mapstructure:"suggestions" default:"5"`
	// Scorer selects the similarity function: levenshtein or token.
	Scorer string `mapstructure:"scorer" default:"levenshtein"`
	// RecipeMaxDepth bounds recursive recipe expansion.
	RecipeMaxDepth int `mapstructure:"recipe_max_depth" default:"8"`
	// RecipeConcurrency bounds concurrent ingredient lookups per recipe level.
	RecipeConcurrency int `mapstructure:"recipe_concurrency" default:"4"`
	// HydrateConcurrency bounds concurrent remote fetches during hydrate.
	HydrateConcurrency int `mapstructure:"hydrate_concurrency" default:"4"`
}
