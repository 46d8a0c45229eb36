package resolve

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/hupe1980/hepvec/vtype"
)

// Root is the name of the class every registered class descends from.
const Root = "Vector"

var (
	// ErrUnknownClass is returned for a class name that was never registered.
	ErrUnknownClass = errors.New("unknown vector class")
	// ErrClassExists is returned when a class name is registered twice.
	ErrClassExists = errors.New("vector class already registered")
)

// Classes names the classes used to build results of a given class.
// Empty fields fall back to the parent's entry.
type Classes struct {
	Projection2D string `yaml:"projection2d"`
	Projection3D string `yaml:"projection3d"`
	Projection4D string `yaml:"projection4d"`
	Momentum     string `yaml:"momentum"`
	Generic      string `yaml:"generic"`
}

func (c Classes) projection(dim int) string {
	switch dim {
	case 2:
		return c.Projection2D
	case 3:
		return c.Projection3D
	default:
		return c.Projection4D
	}
}

type class struct {
	parent  string
	classes Classes
}

// Registry maps class names to their parent and projection classes.
//
// A Registry is an ordinary value: each backend owns one and passes it to the
// collections it creates. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]class
}

// NewRegistry returns a registry seeded with the built-in classes:
//
//	Vector
//	├── Vector2D ── Momentum2D
//	├── Vector3D ── Momentum3D
//	└── Vector4D ── Momentum4D
func NewRegistry() *Registry {
	r := &Registry{classes: make(map[string]class)}
	base := Classes{
		Projection2D: "Vector2D", Projection3D: "Vector3D", Projection4D: "Vector4D",
	}
	r.classes[Root] = class{classes: base}
	for _, dim := range []string{"2D", "3D", "4D"} {
		vec, mom := "Vector"+dim, "Momentum"+dim
		r.classes[vec] = class{parent: Root, classes: Classes{
			Projection2D: "Vector2D", Projection3D: "Vector3D", Projection4D: "Vector4D",
			Momentum: mom, Generic: vec,
		}}
		r.classes[mom] = class{parent: vec, classes: Classes{
			Projection2D: "Momentum2D", Projection3D: "Momentum3D", Projection4D: "Momentum4D",
			Momentum: mom, Generic: vec,
		}}
	}
	return r
}

// Register adds a class below parent. Empty fields of c are inherited from parent.
func (r *Registry) Register(name, parent string, c Classes) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.classes[name]; ok {
		return fmt.Errorf("%w: %s", ErrClassExists, name)
	}
	p, ok := r.classes[parent]
	if !ok {
		return fmt.Errorf("%w: parent %s of %s", ErrUnknownClass, parent, name)
	}

	inherit := func(own, fromParent string) string {
		if own != "" {
			return own
		}
		return fromParent
	}
	c.Projection2D = inherit(c.Projection2D, p.classes.Projection2D)
	c.Projection3D = inherit(c.Projection3D, p.classes.Projection3D)
	c.Projection4D = inherit(c.Projection4D, p.classes.Projection4D)
	c.Momentum = inherit(c.Momentum, p.classes.Momentum)
	c.Generic = inherit(c.Generic, p.classes.Generic)

	r.classes[name] = class{parent: parent, classes: c}
	return nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.classes[name]
	return ok
}

// Names returns the registered class names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.classes))
	for n := range r.classes {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func (r *Registry) ancestry(name string) []string {
	var chain []string
	for name != "" {
		c, ok := r.classes[name]
		if !ok {
			break
		}
		chain = append(chain, name)
		name = c.parent
	}
	return chain
}

// Common returns the most specific class that a and b both descend from.
// Unrelated or unknown classes meet at Root.
func (r *Registry) Common(a, b string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.common(a, b)
}

func (r *Registry) common(a, b string) string {
	inB := make(map[string]bool)
	for _, n := range r.ancestry(b) {
		inB[n] = true
	}
	for _, n := range r.ancestry(a) {
		if inB[n] {
			return n
		}
	}
	return Root
}

// ResultClass returns the class that results of combining classes a and b
// into a value of type d are built with.
//
// The most specific common ancestor supplies the projection class for the
// result dimension; that class's Momentum or Generic variant then matches the
// result flavor.
func (r *Registry) ResultClass(a, b string, d vtype.Descriptor) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	anc := r.classes[r.common(a, b)]
	name := anc.classes.projection(d.Dim())
	if name == "" {
		return Root
	}
	target, ok := r.classes[name]
	if !ok {
		return name
	}
	if d.IsMomentum() && target.classes.Momentum != "" {
		return target.classes.Momentum
	}
	if !d.IsMomentum() && target.classes.Generic != "" {
		return target.classes.Generic
	}
	return name
}

// Projection returns the class a single value of class name becomes when
// projected to the shape of d.
func (r *Registry) Projection(name string, d vtype.Descriptor) string {
	return r.ResultClass(name, name, d)
}
