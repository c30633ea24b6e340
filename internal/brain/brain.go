package brain

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Brain is a pair of hemisphere meshes. Either side may be nil when it was
// skipped.
type Brain struct {
	Left  *ColoredMesh
	Right *ColoredMesh
}

// Meshes returns the loaded hemispheres, left first.
func (b *Brain) Meshes() []*ColoredMesh {
	var out []*ColoredMesh
	for _, m := range []*ColoredMesh{b.Left, b.Right} {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}

// HemisphereSpec names the files for one hemisphere. Names are used as given;
// the layout places them under surf/ or label/.
type HemisphereSpec struct {
	Surface string
	Data    string
	Kind    DisplayKind
}

// LoadBrain loads both hemispheres from shared stems, e.g. surface "white"
// and data "curv" become lh.white/lh.curv and rh.white/rh.curv.
func LoadBrain(base, surfaceStem, dataStem string, kind DisplayKind) (*Brain, error) {
	return NewLoader(base).LoadBrain(surfaceStem, dataStem, kind)
}

// LoadBrainNamed is LoadBrain with the display kind given by name.
func LoadBrainNamed(base, surfaceStem, dataStem, kind string) (*Brain, error) {
	k, err := ParseDisplayKind(kind)
	if err != nil {
		return nil, err
	}
	return LoadBrain(base, surfaceStem, dataStem, k)
}

// LoadBrain loads both hemispheres from shared stems using l's layout and
// options.
func (l *Loader) LoadBrain(surfaceStem, dataStem string, kind DisplayKind) (*Brain, error) {
	return l.LoadHemispheres(
		&HemisphereSpec{Surface: Left.Prefix(surfaceStem), Data: Left.Prefix(dataStem), Kind: kind},
		&HemisphereSpec{Surface: Right.Prefix(surfaceStem), Data: Right.Prefix(dataStem), Kind: kind},
	)
}

// LoadHemispheres builds the given hemispheres concurrently. A nil spec
// skips that side. Any failure fails the whole load.
func (l *Loader) LoadHemispheres(left, right *HemisphereSpec) (*Brain, error) {
	var (
		b Brain
		g errgroup.Group
	)
	load := func(h Hemisphere, spec *HemisphereSpec, dst **ColoredMesh) {
		if spec == nil {
			return
		}
		g.Go(func() error {
			m, err := l.Load(spec.Surface, spec.Data, spec.Kind)
			if err != nil {
				return fmt.Errorf("%s hemisphere: %w", h, err)
			}
			*dst = m
			return nil
		})
	}
	load(Left, left, &b.Left)
	load(Right, right, &b.Right)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if b.Left == nil && b.Right == nil {
		return nil, &ConfigurationError{Field: "hemispheres", Value: "none", Reason: "at least one hemisphere is required"}
	}
	return &b, nil
}
