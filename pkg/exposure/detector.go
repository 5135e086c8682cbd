package exposure

import (
	"fmt"
	"strings"

	"github.com/matzehuels/cloudgraph/pkg/graph"
	"github.com/matzehuels/cloudgraph/pkg/props"
	"github.com/matzehuels/cloudgraph/pkg/table"
)

// InternetNode is the name of the synthetic Internet node.
const InternetNode = "Internet"

// InternetAttrs returns the attributes of the Internet node.
func InternetAttrs() graph.Attrs {
	return graph.Attrs{
		"type":  "Internet",
		"group": "Internet",
		"size":  "40",
	}
}

// Finding records one exposed resource.
type Finding struct {
	Name string // resource name
	Type string // resource type as exported
	Rule string // name of the rule that matched
}

// Result summarizes one detector pass.
type Result struct {
	Findings        []Finding
	InternetCreated bool
	Skipped         int // rows whose properties did not parse or were malformed
}

// Detector applies exposure rules to rows.
type Detector struct {
	rules []Rule
}

// New returns a detector using rules, or [DefaultRules] when none are given.
func New(rules ...Rule) *Detector {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Detector{rules: rules}
}

// Evaluate returns the rule that finds the row exposed, if any.
// ok is false when no rule applies, the properties do not parse, or the
// resource is not exposed. parsed is false when the properties do not parse
// or an applicable rule finds them malformed; such rows count as skipped.
func (d *Detector) Evaluate(r table.Row) (rule Rule, ok, parsed bool) {
	p, parsed := props.Parse(r.Properties())
	if !parsed {
		return nil, false, false
	}
	typ := strings.ToLower(r.Type())
	for _, rule := range d.rules {
		if !rule.Applies(typ) {
			continue
		}
		exposed, err := rule.Exposed(p)
		if err != nil {
			return nil, false, false
		}
		if exposed {
			return rule, true, true
		}
	}
	return nil, false, true
}

// Apply evaluates every row and links exposed resources to the Internet
// node in b. Rows without a name are never linked.
func (d *Detector) Apply(rows []table.Row, b *graph.Builder) (Result, error) {
	var res Result
	for _, r := range rows {
		rule, exposed, parsed := d.Evaluate(r)
		if !parsed {
			res.Skipped++
			continue
		}
		name := r.Name()
		if !exposed || name == "" {
			continue
		}
		if !res.InternetCreated {
			if err := b.UpsertNode(InternetNode, InternetAttrs()); err != nil {
				return res, fmt.Errorf("internet node: %w", err)
			}
			res.InternetCreated = true
		}
		if err := b.EnsureNode(name); err != nil {
			return res, fmt.Errorf("node %s: %w", name, err)
		}
		if err := b.AddEdge(InternetNode, name); err != nil {
			return res, fmt.Errorf("edge %s->%s: %w", InternetNode, name, err)
		}
		res.Findings = append(res.Findings, Finding{Name: name, Type: r.Type(), Rule: rule.Name()})
	}
	return res, nil
}
