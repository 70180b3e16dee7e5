package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"tataru/core/fuzzy"
	"tataru/core/models"
	"tataru/feature/lookup"
	"tataru/feature/recipe"
)

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// withSuggestions appends the near matches of a failed resolution to err.
func withSuggestions(err error) error {
	s := fuzzy.Suggestions(err)
	if len(s) == 0 {
		return err
	}
	names := make([]string, 0, len(s))
	for _, m := range s {
		names = append(names, fmt.Sprintf("%s (%d)", m.Name, m.ID))
	}
	return fmt.Errorf("%w; did you mean: %s", err, strings.Join(names, ", "))
}

func itemLine(it models.Item) string {
	var b strings.Builder
	if it.Emoji != "" {
		fmt.Fprintf(&b, ":%s: ", it.Emoji)
	}
	fmt.Fprintf(&b, "%s [%d]", it.Name, it.ID)
	if it.Category != "" {
		fmt.Fprintf(&b, " %s", it.Category)
	}
	return b.String()
}

func printResult(w io.Writer, res *lookup.Result) {
	line := itemLine(res.Item)
	if res.Fuzzy {
		line += fmt.Sprintf(" (matched %.2f)", res.Score)
	}
	fmt.Fprintln(w, line)
	if r := res.Item.Recipe; r != nil && res.Item.Craftable() {
		fmt.Fprintf(w, "  crafted by %s, yields %d\n", r.CraftType, r.YieldOrOne())
	}
	if len(res.Related) > 0 {
		names := make([]string, 0, len(res.Related))
		for _, m := range res.Related {
			names = append(names, m.Name)
		}
		fmt.Fprintf(w, "  related: %s\n", strings.Join(names, ", "))
	}
}

func printPrice(w io.Writer, res *lookup.Result) {
	fmt.Fprintln(w, itemLine(res.Item))
	p := res.Item.Price
	if p == nil {
		return
	}
	tiers := []struct {
		label string
		tier  models.Tier
	}{{"NQ", p.NQ}, {"HQ", p.HQ}}
	for _, t := range tiers {
		if t.tier.Empty() {
			continue
		}
		fmt.Fprintf(w, "  %s:", t.label)
		scopes := []struct {
			label   string
			listing *models.Listing
		}{{"world", t.tier.World}, {"dc", t.tier.DataCenter}, {"region", t.tier.Region}}
		for _, s := range scopes {
			if s.listing == nil {
				continue
			}
			fmt.Fprintf(w, " %s %d gil", s.label, s.listing.Price)
			if s.listing.WorldName != "" {
				fmt.Fprintf(w, " (%s)", s.listing.WorldName)
			}
		}
		fmt.Fprintln(w)
	}
	if !p.OldestUpload.IsZero() {
		fmt.Fprintf(w, "  data from %s (%s)\n", p.World, p.OldestUpload.Format("2006-01-02 15:04 MST"))
	}
}

func printTree(w io.Writer, report *recipe.Report) {
	var walk func(n *recipe.Node, indent string)
	walk = func(n *recipe.Node, indent string) {
		line := fmt.Sprintf("%s%dx %s", indent, n.Quantity, itemLine(n.Item))
		if n.Crafts > 0 {
			line += fmt.Sprintf(" (%d crafts)", n.Crafts)
		}
		fmt.Fprintln(w, line)
		for _, c := range n.Children {
			walk(c, indent+"  ")
		}
	}
	walk(report.Tree.Root, "")

	fmt.Fprintln(w, "materials:")
	for _, m := range report.Materials {
		fmt.Fprintf(w, "  %dx %s\n", m.Quantity, itemLine(m.Item))
	}
}
