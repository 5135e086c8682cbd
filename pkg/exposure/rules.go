package exposure

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matzehuels/cloudgraph/pkg/props"
)

// Resource types handled by the built-in rules, lowercased.
const (
	TypeNetworkSecurityGroup = "microsoft.network/networksecuritygroups"
	TypeStorageAccount       = "microsoft.storage/storageaccounts"
)

// ErrMalformed marks properties whose shape a rule cannot evaluate. The
// detector skips such rows instead of deciding exposure.
var ErrMalformed = errors.New("malformed properties")

// Rule decides exposure for one family of resource types.
type Rule interface {
	// Name identifies the rule in findings and logs.
	Name() string
	// Applies reports whether the rule handles the lowercased resource type.
	Applies(resourceType string) bool
	// Exposed reports whether the parsed properties describe a public
	// resource. It returns an error wrapping [ErrMalformed] when a field it
	// needs has the wrong shape.
	Exposed(p props.Value) (bool, error)
}

// InternetSources are source address prefixes meaning "anywhere".
var InternetSources = map[string]bool{
	"*":         true,
	"internet":  true,
	"0.0.0.0/0": true,
}

// NSGRule flags network security groups that admit inbound Internet traffic.
type NSGRule struct{}

func (NSGRule) Name() string { return "nsg-inbound-internet" }

func (NSGRule) Applies(resourceType string) bool {
	return resourceType == TypeNetworkSecurityGroup
}

// Exposed checks securityRules in order and stops at the first open rule.
// Rule fields are read from the entry's nested "properties" object, as in
// provider exports, or from the entry itself when that object is absent.
// An entry that is reached before an open rule and is not an object, or
// whose compared fields are not strings, makes the whole group malformed.
func (NSGRule) Exposed(p props.Value) (bool, error) {
	raw, present := p["securityRules"]
	if !present {
		return false, nil
	}
	entries, ok := raw.([]any)
	if !ok {
		return false, fmt.Errorf("%w: securityRules is not an array", ErrMalformed)
	}
	for i, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			return false, fmt.Errorf("%w: securityRules[%d] is not an object", ErrMalformed, i)
		}
		open, err := openInbound(props.Value(entry))
		if err != nil {
			return false, fmt.Errorf("securityRules[%d]: %w", i, err)
		}
		if open {
			return true, nil
		}
	}
	return false, nil
}

// openInbound evaluates one security rule. Fields are compared in order and
// later fields are not inspected once an earlier one rules the entry out.
func openInbound(entry props.Value) (bool, error) {
	fields := entry
	if _, nested := entry["properties"]; nested {
		var ok bool
		if fields, ok = entry.Field("properties"); !ok {
			return false, fmt.Errorf("%w: properties is not an object", ErrMalformed)
		}
	}

	checks := []struct {
		key   string
		match func(string) bool
	}{
		{"direction", func(s string) bool { return strings.EqualFold(s, "inbound") }},
		{"access", func(s string) bool { return strings.EqualFold(s, "allow") }},
		{"sourceAddressPrefix", func(s string) bool { return InternetSources[strings.ToLower(s)] }},
	}
	for _, c := range checks {
		v, ok := fields.Text(c.key)
		if !ok {
			return false, fmt.Errorf("%w: %s is not a string", ErrMalformed, c.key)
		}
		if !c.match(v) {
			return false, nil
		}
	}
	return true, nil
}

// StorageRule flags storage accounts whose firewall allows by default.
type StorageRule struct{}

func (StorageRule) Name() string { return "storage-default-allow" }

func (StorageRule) Applies(resourceType string) bool {
	return resourceType == TypeStorageAccount
}

// Exposed checks networkAcls.defaultAction. A missing block or action means
// not exposed; either one with the wrong type is malformed.
func (StorageRule) Exposed(p props.Value) (bool, error) {
	acls, ok := p.Field("networkAcls")
	if !ok {
		return false, fmt.Errorf("%w: networkAcls is not an object", ErrMalformed)
	}
	action, ok := acls.Text("defaultAction")
	if !ok {
		return false, fmt.Errorf("%w: defaultAction is not a string", ErrMalformed)
	}
	return strings.EqualFold(action, "allow"), nil
}

// DefaultRules returns the built-in rules.
func DefaultRules() []Rule {
	return []Rule{NSGRule{}, StorageRule{}}
}
