package apidoc

import (
	"errors"
	"fmt"

	"github.com/alnah/go-apidoc/internal/hints"
)

// LoadSystem resolves dotted in reg and builds a System from it.
func LoadSystem(reg *Registry, dotted string, env *Env) (System, error) {
	return load[System](reg, dotted, "system", "apidoc.System", env)
}

// LoadWriter resolves dotted in reg and builds a Writer from it.
// env.System should already be set.
func LoadWriter(reg *Registry, dotted string, env *Env) (Writer, error) {
	return load[Writer](reg, dotted, "writer", "apidoc.Writer", env)
}

// load runs the resolution steps in order and stops at the first failure:
// name syntax, module, attribute, class, then the capability check on the
// constructed value. It never falls back to a default.
func load[T any](reg *Registry, dotted, base, iface string, env *Env) (T, error) {
	var zero T
	if reg == nil {
		reg = DefaultRegistry()
	}
	if env == nil {
		env = &Env{Options: DefaultOptions()}
	}

	fail := func(reason ResolutionReason, detail, hint string) (T, error) {
		return zero, &ClassResolutionError{Name: dotted, Base: base, Reason: reason, Detail: detail, Hint: hint}
	}

	module, name, err := splitDotted(dotted)
	if err != nil {
		var cre *ClassResolutionError
		if errors.As(err, &cre) {
			return fail(cre.Reason, cre.Detail, "")
		}
		return zero, err
	}

	sym, moduleFound, found := reg.lookup(module, name)
	if !moduleFound {
		return fail(ReasonModuleNotFound, "no module "+module, hints.ForModuleNotFound(module, reg.Modules()))
	}
	if !found {
		return fail(ReasonAttributeNotFound, fmt.Sprintf("module %s has no %s", module, name),
			hints.ForAttributeNotFound(module, reg.Symbols(module)))
	}

	class, ok := asClass(sym)
	if !ok {
		return fail(ReasonNotAClass, fmt.Sprintf("%T", sym), hints.ForNotAClass())
	}

	v, err := class.New(env)
	if err != nil {
		return zero, fmt.Errorf("constructing %s class %q: %w", base, dotted, err)
	}
	inst, ok := v.(T)
	if !ok {
		return fail(ReasonWrongBaseType, fmt.Sprintf("%T does not implement %s", v, iface), hints.ForWrongBaseType(iface))
	}

	env.logger().Debug("loaded class", "base", base, "name", dotted, "type", fmt.Sprintf("%T", v))
	return inst, nil
}
