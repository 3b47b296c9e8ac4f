// Package apidoc generates a browsable HTML site from the object model of
// a code base: packages, modules, classes, functions and their docstrings.
//
// # Quick Start
//
// Load a model, build the components, and write the site:
//
//	project, err := apidoc.LoadProject("model.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	lookup, err := apidoc.NewTemplateLookup("", []string{"my-templates"}, slog.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	env := &apidoc.Env{Options: apidoc.DefaultOptions(), Lookup: lookup, OutputDir: "apidocs"}
//	env.System, err = apidoc.LoadSystem(nil, apidoc.DefaultSystemClass, env)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	writer, err := apidoc.LoadWriter(nil, apidoc.DefaultWriterClass, env)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = apidoc.Build(ctx, writer, project)
//
// # Pluggable Components
//
// Two components can be swapped by dotted name, the way --system-class and
// --html-class do on the command line:
//
//   - a System classifies objects as public, private or hidden and orders
//     members on a page
//   - a Writer emits the site
//
// Custom components are registered from an init function:
//
//	func init() {
//	    apidoc.Register("mylib.pkg.StrictSystem", apidoc.Class{
//	        Doc: "Hides everything under tests.",
//	        New: func(env *apidoc.Env) (any, error) { return newStrictSystem(env.Options), nil },
//	    })
//	}
//
// Loading checks each step in turn and reports the first failure as a
// *ClassResolutionError whose Reason is one of module-not-found,
// attribute-not-found, not-a-class or wrong-base-type. A bad name never
// falls back to the built-in default.
//
// # Templates
//
// The default writer renders the templates returned by NewTemplateLookup,
// which layers override directories over a built-in theme and warns when an
// override is older than the template it replaces. A nil Env.Lookup means
// the default theme without overrides.
//
// # Error Handling
//
// Errors caused by operator input match ErrConfiguration:
//
//	if errors.Is(err, apidoc.ErrConfiguration) {
//	    // bad class name, privacy rule or option
//	}
//
// Specific steps can be checked with ErrModuleNotFound, ErrAttributeNotFound,
// ErrNotAClass and ErrWrongBaseType.
package apidoc
