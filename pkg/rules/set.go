package rules

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"slices"
	"strconv"
	"strings"
)

// Set is an immutable, ordered collection of rules. The order decides which
// of several equally short paths a search reports; it never decides whether
// a path is found.
type Set struct {
	rules       []Rule
	index       map[string]int
	fingerprint string
}

// NewSet builds a set, rejecting duplicate or empty rule names.
func NewSet(rs ...Rule) (Set, error) {
	s := Set{
		rules: make([]Rule, 0, len(rs)),
		index: make(map[string]int, len(rs)),
	}
	h := sha256.New()
	for _, r := range rs {
		if r.Name == "" {
			return Set{}, fmt.Errorf("rule at position %d has no name", len(s.rules))
		}
		if _, dup := s.index[r.Name]; dup {
			return Set{}, fmt.Errorf("duplicate rule %q", r.Name)
		}
		s.index[r.Name] = len(s.rules)
		s.rules = append(s.rules, r)
		writeRule(h, r)
	}
	s.fingerprint = hex.EncodeToString(h.Sum(nil))[:16]
	return s, nil
}

// writeRule feeds everything that shapes a rule's reactions into h, so sets
// that share names but differ in behaviour never share a fingerprint.
func writeRule(h hash.Hash, r Rule) {
	fields := []string{
		r.Name,
		strconv.Itoa(int(r.From)),
		strconv.Itoa(int(r.To)),
		r.Requirement(),
		r.ProductCarbons(),
		strconv.Itoa(r.coefficient),
		strings.Join(r.reagents, "\x1f"),
		strings.Join(r.byproducts, "\x1f"),
		r.above,
		r.below,
	}
	for _, f := range fields {
		h.Write([]byte(f))
		h.Write([]byte{0})
	}
	h.Write([]byte{0xff})
}

// MustSet is like NewSet but panics on error.
func MustSet(rs ...Rule) Set {
	s, err := NewSet(rs...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of rules.
func (s Set) Len() int { return len(s.rules) }

// All returns the rules in order. The slice is a copy.
func (s Set) All() []Rule { return slices.Clone(s.rules) }

// At returns the i-th rule.
func (s Set) At(i int) Rule { return s.rules[i] }

// Lookup finds a rule by name.
func (s Set) Lookup(name string) (Rule, bool) {
	i, ok := s.index[name]
	if !ok {
		return Rule{}, false
	}
	return s.rules[i], true
}

// Names returns the rule names in order.
func (s Set) Names() []string {
	names := make([]string, len(s.rules))
	for i, r := range s.rules {
		names[i] = r.Name
	}
	return names
}

// Fingerprint identifies the ordered rule list. Two sets share a fingerprint
// only when their rules match in order, groups, guards, carbon maps and
// reaction text.
func (s Set) Fingerprint() string { return s.fingerprint }

func (s Set) String() string {
	return "rules[" + strings.Join(s.Names(), ",") + "]"
}
