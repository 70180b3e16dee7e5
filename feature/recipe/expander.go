package recipe

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"tataru/core/models"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultMaxDepth    = 8
	DefaultConcurrency = 4
)

// ItemResolver returns an item by ID, fetching it when it is not cached.
type ItemResolver interface {
	ResolveID(ctx context.Context, id int) (models.Item, error)
}

// Options control a single expansion.
type Options struct {
	// MaxDepth bounds how deep craftable ingredients are expanded.
	MaxDepth int
	// SelfReliance expands craftable ingredients into their own ingredients.
	// Without it the tree stops at the direct ingredients.
	SelfReliance bool
	// Amount is how many of the root item are wanted.
	Amount int
}

// Validate rejects amounts above MaxAmount. Non-positive amounts mean one.
func (o Options) Validate() error {
	if o.Amount > MaxAmount {
		return fmt.Errorf("%w, got %d", ErrInvalidAmount, o.Amount)
	}
	return nil
}

// Node is one item in an ingredient tree.
type Node struct {
	Item models.Item `json:"item"`
	// Quantity is how many of the item are needed.
	Quantity int `json:"quantity"`
	// Crafts and Yield are set on expanded nodes.
	Crafts   int     `json:"crafts,omitempty"`
	Yield    int     `json:"yield,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Tree is an expanded recipe.
type Tree struct {
	Root    *Node   `json:"root"`
	Options Options `json:"options"`
}

// Material is an aggregated leaf of a tree.
type Material struct {
	Item     models.Item `json:"item"`
	Quantity int         `json:"quantity"`
}

// Expander builds ingredient trees, resolving every ingredient like a top-level item.
type Expander struct {
	items       ItemResolver
	maxDepth    int
	concurrency int
}

// NewExpander creates an Expander. Non-positive limits select the defaults.
func NewExpander(items ItemResolver, maxDepth, concurrency int) *Expander {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Expander{items: items, maxDepth: maxDepth, concurrency: concurrency}
}

// Expand builds the ingredient tree of an item.
func (e *Expander) Expand(ctx context.Context, itemID int, opts Options) (*Tree, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = e.maxDepth
	}
	if opts.Amount <= 0 {
		opts.Amount = 1
	}

	root, err := e.items.ResolveID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !root.Craftable() {
		return nil, fmt.Errorf("%w: %s", ErrNoRecipe, root.Name)
	}

	node, err := e.expand(ctx, root, opts.Amount, nil, opts)
	if err != nil {
		return nil, err
	}
	return &Tree{Root: node, Options: opts}, nil
}

// expand resolves item's ingredients. path holds the ancestors of item.
func (e *Expander) expand(ctx context.Context, item models.Item, need int, path []int, opts Options) (*Node, error) {
	node := &Node{Item: item, Quantity: need}
	depth := len(path)
	if !item.Craftable() || (depth > 0 && !opts.SelfReliance) {
		return node, nil
	}

	here := append(slices.Clone(path), item.ID)
	if slices.Contains(path, item.ID) {
		return nil, &CycleError{Path: here}
	}
	if depth >= opts.MaxDepth {
		return nil, &CycleError{Path: here, DepthExceeded: true, MaxDepth: opts.MaxDepth}
	}

	node.Crafts = item.Recipe.CraftsFor(need)
	node.Yield = item.Recipe.YieldOrOne()
	node.Children = make([]*Node, len(item.Recipe.Ingredients))

	for _, ing := range item.Recipe.Ingredients {
		if ing.Quantity > 0 && node.Crafts > maxQuantity/ing.Quantity {
			return nil, fmt.Errorf("%w: %d x %d of item %d", ErrQuantityTooLarge, node.Crafts, ing.Quantity, ing.ItemID)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, ing := range item.Recipe.Ingredients {
		g.Go(func() error {
			child, err := e.items.ResolveID(gctx, ing.ItemID)
			if err != nil {
				return fmt.Errorf("ingredient %d of %s: %w", ing.ItemID, item.Name, err)
			}
			n, err := e.expand(gctx, child, ing.Quantity*node.Crafts, here, opts)
			if err != nil {
				return err
			}
			node.Children[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return node, nil
}

// Depth returns the number of levels below the root.
func (t *Tree) Depth() int {
	var walk func(n *Node) int
	walk = func(n *Node) int {
		d := 0
		for _, c := range n.Children {
			if cd := walk(c) + 1; cd > d {
				d = cd
			}
		}
		return d
	}
	return walk(t.Root)
}

// Materials sums the leaves of the tree. Crystals are listed after every
// other material, each group ordered by item ID.
func (t *Tree) Materials() []Material {
	totals := map[int]*Material{}
	var walk func(n *Node)
	walk = func(n *Node) {
		if len(n.Children) == 0 {
			m, ok := totals[n.Item.ID]
			if !ok {
				m = &Material{Item: n.Item}
				totals[n.Item.ID] = m
			}
			m.Quantity += n.Quantity
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, c := range t.Root.Children {
		walk(c)
	}

	out := make([]Material, 0, len(totals))
	for _, m := range totals {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		ci, cj := out[i].Item.IsCrystal(), out[j].Item.IsCrystal()
		if ci != cj {
			return !ci
		}
		return out[i].Item.ID < out[j].Item.ID
	})
	return out
}
