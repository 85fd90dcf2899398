package modding

import (
	"fmt"
	"slices"

	"github.com/usharplibs/engine/logging"
)

// DuplicateSourceError is returned when a source with the same name is already registered
type DuplicateSourceError struct {
	Existing ModSource
	New      ModSource
}

func (e *DuplicateSourceError) Error() string {
	return fmt.Sprintf("mod source '%s' is already loaded (loaded version %s, tried version %s)", e.New.Source(), e.Existing.Version(), e.New.Version())
}

// Registry holds the loaded sources. The zero value is ready to use.
type Registry struct {
	sources map[string]ModSource
}

// Register adds src, failing if a source of the same name is loaded, whatever its version
func (r *Registry) Register(src ModSource) error {

	if r.sources == nil {
		r.sources = map[string]ModSource{}
	}

	if existing, ok := r.sources[src.Key()]; ok {
		return &DuplicateSourceError{Existing: existing, New: src}
	}

	r.sources[src.Key()] = src
	logging.Info("Registered mod source", "source", src.Source(), "version", src.Version().String())
	return nil
}

func (r *Registry) Get(name string) (ModSource, bool) {
	src, ok := r.sources[name]
	return src, ok
}

func (r *Registry) Has(src ModSource) bool {
	_, ok := r.sources[src.Key()]
	return ok
}

func (r *Registry) Len() int {
	return len(r.sources)
}

// Sources returns all sources sorted by name
func (r *Registry) Sources() []ModSource {

	out := make([]ModSource, 0, len(r.sources))
	for _, s := range r.sources {
		out = append(out, s)
	}

	slices.SortFunc(out, Compare)
	return out
}
