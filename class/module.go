package class

import (
	"sync"

	semver "github.com/Masterminds/semver/v3"

	"github.com/orizon-lang/exceptrt/internal/xerrors"
)

// EngineVersion is the running engine's semantic version, checked
// against the constraint a module supplies to RegisterModule. Classes
// are declared in one place and defined in another (spec.md §3); when
// that "another place" is a separate Go module built against a
// different engine revision, EngineVersion/RegisterModule is the gate
// that decides whether the two are compatible before any of the
// module's classes are admitted into the shared registry.
const EngineVersion = "1.0.0"

// Descriptor names a class a module wants to contribute, by parent
// name rather than by *Class, so the module can be described (e.g. by
// watch's descriptor files) before any Go code runs.
type Descriptor struct {
	Name       string
	ParentName string
}

var moduleMu sync.Mutex

// RegisterModule validates constraint against EngineVersion and, only
// if it's satisfied, Defines every descriptor in order, resolving each
// ParentName against the same registry Lookup reads (so later
// descriptors in the same call may reference earlier ones). Registration is all-or-nothing: on any
// failure — incompatible constraint, unresolvable parent, duplicate
// name — no descriptor from this call is left registered.
func RegisterModule(name, constraint string, descriptors ...Descriptor) ([]*Class, error) {
	moduleMu.Lock()
	defer moduleMu.Unlock()

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, xerrors.Newf(xerrors.CategoryConfig, "INVALID_CONSTRAINT",
			"module %s: invalid engine version constraint %q: %v", name, constraint, err)
	}

	v, err := semver.NewVersion(EngineVersion)
	if err != nil {
		return nil, xerrors.Newf(xerrors.CategoryConfig, "INVALID_ENGINE_VERSION",
			"engine version %q does not parse as semver: %v", EngineVersion, err)
	}

	if !c.Check(v) {
		return nil, xerrors.Newf(xerrors.CategoryRegistry, "INCOMPATIBLE_MODULE",
			"module %s requires engine %s, running engine is %s", name, constraint, EngineVersion)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	defined := make([]*Class, 0, len(descriptors))

	for _, d := range descriptors {
		if _, exists := registry[d.Name]; exists {
			rollback(defined)
			return nil, xerrors.Newf(xerrors.CategoryRegistry, "DUPLICATE_CLASS",
				"module %s: class %s already defined", name, d.Name)
		}

		parent, ok := registry[d.ParentName]
		if !ok {
			rollback(defined)
			return nil, xerrors.Newf(xerrors.CategoryRegistry, "UNRESOLVED_PARENT",
				"module %s: class %s references undefined parent %s", name, d.Name, d.ParentName)
		}

		cls := &Class{name: d.Name, parent: parent}
		registry[d.Name] = cls
		defined = append(defined, cls)
	}

	return defined, nil
}

// rollback removes classes registered earlier in a failed
// RegisterModule call. Caller must hold registryMu.
func rollback(defined []*Class) {
	for _, c := range defined {
		delete(registry, c.name)
	}
}
