package apidoc_test

import (
	"errors"
	"fmt"

	apidoc "github.com/alnah/go-apidoc"
)

// Example shows how a failed class load is reported.
func Example() {
	reg := apidoc.NewBuiltinRegistry()
	reg.MustRegister("mylib.pkg.NotASystem", apidoc.Class{
		New: func(*apidoc.Env) (any, error) { return struct{}{}, nil },
	})

	_, err := apidoc.LoadSystem(reg, "mylib.pkg.NotASystem", nil)

	var cre *apidoc.ClassResolutionError
	if errors.As(err, &cre) {
		fmt.Println(cre.Reason, cre.Name)
	}
	fmt.Println(errors.Is(err, apidoc.ErrConfiguration))
	// Output:
	// wrong-base-type mylib.pkg.NotASystem
	// true
}

// Example_privacyRules shows how rules override the default classification.
func Example_privacyRules() {
	project, err := apidoc.ParseProject([]byte(`
objects:
  - name: demo
    kind: package
    members:
      - name: tests
        kind: module
      - name: _impl
        kind: module
        members:
          - name: Helper
            kind: class
`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	rules, err := apidoc.ParsePrivacyRules([]string{"HIDDEN:demo.tests", "PUBLIC:demo._impl.Helper"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	opts := apidoc.DefaultOptions()
	opts.PrivacyRules = rules
	sys := apidoc.NewDefaultSystem(opts)

	for _, name := range []string{"demo.tests", "demo._impl", "demo._impl.Helper"} {
		fmt.Println(name, sys.Privacy(project.Find(name)))
	}
	// Output:
	// demo.tests HIDDEN
	// demo._impl PRIVATE
	// demo._impl.Helper PUBLIC
}

// ExampleRegistry_Entries lists the built-in symbols.
func ExampleRegistry_Entries() {
	for _, e := range apidoc.NewBuiltinRegistry().Entries() {
		fmt.Println(e.Name, e.IsClass)
	}
	// Output:
	// apidoc.system.DefaultPrivacy false
	// apidoc.system.PublicSystem true
	// apidoc.system.System true
	// apidoc.writer.TemplateWriter true
}
