package ragged

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/hepvec/resolve"
	"github.com/hupe1980/hepvec/vtype"
)

// Behaviors names the vector classes ragged arrays can carry and decides
// which class the result of an operation gets. It wraps a resolve.Registry
// and is safe for concurrent use.
type Behaviors struct {
	reg *resolve.Registry
}

// NewBehaviors returns behaviors with only the built-in classes (Vector2D,
// Momentum4D, ...).
func NewBehaviors() *Behaviors {
	return &Behaviors{reg: resolve.NewRegistry()}
}

// DefaultBehaviors is NewBehaviors. Every call returns a fresh value.
func DefaultBehaviors() *Behaviors {
	return NewBehaviors()
}

// Register adds a class below parent. An empty parent means resolve.Root.
func (b *Behaviors) Register(name, parent string, c resolve.Classes) error {
	if parent == "" {
		parent = resolve.Root
	}
	return b.reg.Register(name, parent, c)
}

// Has reports whether the class name is registered.
func (b *Behaviors) Has(name string) bool { return b.reg.Has(name) }

// Names returns the registered class names, sorted.
func (b *Behaviors) Names() []string { return b.reg.Names() }

// ResultClass returns the class of op(x, y) for operands of classes x and y
// and a result of type d.
func (b *Behaviors) ResultClass(x, y string, d vtype.Descriptor) string {
	return b.reg.ResultClass(x, y, d)
}

// Projection returns the class a value of class name has after a unary
// operation producing type d.
func (b *Behaviors) Projection(name string, d vtype.Descriptor) string {
	return b.reg.Projection(name, d)
}

// Registry returns the underlying registry.
func (b *Behaviors) Registry() *resolve.Registry { return b.reg }

// builtinClass is the class an array of type d gets when none is named.
func builtinClass(d vtype.Descriptor) string {
	prefix := "Vector"
	if d.IsMomentum() {
		prefix = "Momentum"
	}
	return fmt.Sprintf("%s%dD", prefix, d.Dim())
}

// BehaviorFile is the YAML form of user classes:
//
//	classes:
//	  - name: Jet
//	    parent: Momentum4D
//	    projection2d: Jet2D
//	  - name: Jet2D
//	    parent: Momentum2D
type BehaviorFile struct {
	Classes []ClassSpec `yaml:"classes"`
}

// ClassSpec is one class of a BehaviorFile.
type ClassSpec struct {
	Name            string `yaml:"name"`
	Parent          string `yaml:"parent,omitempty"`
	resolve.Classes `yaml:",inline"`
}

// LoadBehaviors reads a BehaviorFile and registers its classes on top of
// the built-ins. Classes may be listed in any order; a class whose parent is
// never defined is an error wrapping resolve.ErrUnknownClass.
func LoadBehaviors(r io.Reader) (*Behaviors, error) {
	var file BehaviorFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse behaviors: %w", err)
	}

	b := NewBehaviors()
	if err := b.registerAll(file.Classes); err != nil {
		return nil, err
	}
	return b, nil
}

// LoadBehaviorsFile is LoadBehaviors on the named file.
func LoadBehaviorsFile(path string) (*Behaviors, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read behaviors file: %w", err)
	}
	defer f.Close()
	return LoadBehaviors(f)
}

// registerAll registers specs in dependency order.
func (b *Behaviors) registerAll(specs []ClassSpec) error {
	pending := make([]ClassSpec, 0, len(specs))
	for _, s := range specs {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("behaviors: class without a name")
		}
		pending = append(pending, s)
	}

	for len(pending) > 0 {
		var next []ClassSpec
		for _, s := range pending {
			parent := s.Parent
			if parent == "" {
				parent = resolve.Root
			}
			if !b.Has(parent) {
				next = append(next, s)
				continue
			}
			if err := b.Register(s.Name, parent, s.Classes); err != nil {
				return err
			}
		}
		if len(next) == len(pending) {
			names := make([]string, len(next))
			for i, s := range next {
				names[i] = s.Name + " (parent " + s.Parent + ")"
			}
			return fmt.Errorf("%w: %s", resolve.ErrUnknownClass, strings.Join(names, ", "))
		}
		pending = next
	}
	return nil
}
