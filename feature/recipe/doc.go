// Package recipe expands crafting recipes into ingredient trees.
//
// Every ingredient is resolved like a top-level item, so ingredients missing from
// the cache are fetched and written back. For a node needing N items with a recipe
// yielding Y per craft, ceil(N/Y) crafts are made and each ingredient is needed
// quantity * crafts times.
//
// With self-reliance off the tree stops at the direct ingredients. With it on,
// craftable ingredients are expanded recursively. Expansion keeps the chain of
// ancestors for every branch: revisiting one of them, or going deeper than the
// configured limit, fails with a *CycleError (ErrCyclicRecipe) instead of looping.
//
// Tree.Materials flattens the leaves into totals, crystals last.
//
// # HTTP Endpoints
//
//   - GET /recipes?q=&full=&amount= : resolve and expand.
package recipe
