package apidoc

import (
	"cmp"
	"slices"
	"strings"
	"sync"
)

// System decides which objects are documented and in which order.
// Custom systems are registered under a dotted name and selected with
// --system-class.
type System interface {
	// Privacy classifies a single object, ignoring its ancestors.
	Privacy(ob *Object) Privacy
	// MemberOrder returns the comparison used to sort ob's members.
	MemberOrder(ob *Object) func(a, b *Object) int
}

// DefaultSystem is the built-in system. Names with a leading underscore,
// other than dunder names, are private; privacy rules then apply, the last
// matching rule winning, exact names before patterns.
type DefaultSystem struct {
	opts Options

	mu    sync.Mutex
	cache map[string]Privacy
}

// NewDefaultSystem returns a DefaultSystem using opts.
func NewDefaultSystem(opts Options) *DefaultSystem {
	return &DefaultSystem{opts: opts, cache: make(map[string]Privacy)}
}

// Options returns the options the system was built with.
func (s *DefaultSystem) Options() Options {
	return s.opts
}

// Privacy implements System. Results are cached by full name.
func (s *DefaultSystem) Privacy(ob *Object) Privacy {
	fullName := ob.FullName()

	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.cache[fullName]; ok {
		return p
	}
	p := s.classify(ob, fullName)
	s.cache[fullName] = p
	return p
}

func (s *DefaultSystem) classify(ob *Object, fullName string) Privacy {
	if _, known := kindNames[ob.Kind]; !known {
		return PrivacyHidden
	}

	// Script entry points stay private whatever the rules say.
	if ob.Kind.IsModule() && ob.Name == "__main__" {
		return PrivacyPrivate
	}

	privacy := PrivacyPublic
	if strings.HasPrefix(ob.Name, "_") && !isDunder(ob.Name) {
		privacy = PrivacyPrivate
	}

	rules := s.opts.PrivacyRules
	for i := len(rules) - 1; i >= 0; i-- {
		if rules[i].Pattern == fullName {
			return rules[i].Privacy
		}
	}
	for i := len(rules) - 1; i >= 0; i-- {
		if rules[i].Match(fullName) {
			return rules[i].Privacy
		}
	}
	return privacy
}

func isDunder(name string) bool {
	return strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}

// MemberOrder implements System. Public members come before private ones,
// then kinds in presentation order, then name or source line depending on
// the configured order for classes and modules.
func (s *DefaultSystem) MemberOrder(ob *Object) func(a, b *Object) int {
	order := s.opts.ModuleMemberOrder
	if ob.Kind.IsClass() {
		order = s.opts.ClassMemberOrder
	}
	return func(a, b *Object) int {
		if c := cmp.Compare(s.Privacy(b), s.Privacy(a)); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Kind, a.Kind); c != 0 {
			return c
		}
		if order == OrderSource {
			if c := cmp.Compare(a.LineNumber, b.LineNumber); c != 0 {
				return c
			}
		}
		if c := cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	}
}

// PublicSystem hides everything the default system would mark private.
type PublicSystem struct {
	*DefaultSystem
}

// NewPublicSystem returns a PublicSystem using opts.
func NewPublicSystem(opts Options) *PublicSystem {
	return &PublicSystem{DefaultSystem: NewDefaultSystem(opts)}
}

// Privacy implements System.
func (s *PublicSystem) Privacy(ob *Object) Privacy {
	if p := s.DefaultSystem.Privacy(ob); p != PrivacyPublic {
		return PrivacyHidden
	}
	return PrivacyPublic
}

// MemberOrder implements System.
func (s *PublicSystem) MemberOrder(ob *Object) func(a, b *Object) int {
	return s.DefaultSystem.MemberOrder(ob)
}

// IsVisible reports whether ob is shown: neither it nor any ancestor is hidden.
func IsVisible(sys System, ob *Object) bool {
	for p := ob; p != nil; p = p.Parent {
		if sys.Privacy(p) == PrivacyHidden {
			return false
		}
	}
	return true
}

// IsPrivate reports whether ob is not part of the public API.
func IsPrivate(sys System, ob *Object) bool {
	return sys.Privacy(ob) != PrivacyPublic
}

// SortedMembers returns ob's visible members in the system's order.
func SortedMembers(sys System, ob *Object) []*Object {
	members := make([]*Object, 0, len(ob.Members))
	for _, m := range ob.Members {
		if IsVisible(sys, m) {
			members = append(members, m)
		}
	}
	slices.SortStableFunc(members, sys.MemberOrder(ob))
	return members
}
