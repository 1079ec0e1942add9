package buildmap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/milk9111/vectorbuild/ecs"
	"github.com/milk9111/vectorbuild/ecs/component"
)

var (
	ErrMissingMetadata     = errors.New("buildmap: missing metadata")
	ErrMalformedFragment   = errors.New("buildmap: malformed fragment")
	ErrUnresolvedReference = errors.New("buildmap: unresolved reference")
	ErrCyclicDynamic       = errors.New("buildmap: dynamic group nested in a dynamic group")
)

// EntityError is one diagnostic raised while compiling a single entity.
// Kind is one of the package sentinels; Err carries the underlying cause
// when there is one.
type EntityError struct {
	Entity ecs.Entity
	Name   string
	Tag    component.Tag
	Kind   error
	Detail string
	Err    error
}

func (e *EntityError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())
	if e.Name != "" {
		fmt.Fprintf(&sb, ": %s %q", e.Tag, e.Name)
	}
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *EntityError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Fatal reports whether the entity was dropped from the output. Unresolved
// references degrade instead.
func (e *EntityError) Fatal() bool {
	return !errors.Is(e.Kind, ErrUnresolvedReference)
}

// Diagnostics collects every problem found during one compilation pass, in
// the order they were found.
type Diagnostics []*EntityError

func (d Diagnostics) Error() string {
	switch len(d) {
	case 0:
		return "buildmap: no problems"
	case 1:
		return d[0].Error()
	}
	msgs := make([]string, len(d))
	for i, e := range d {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("buildmap: %d problems:\n\t%s", len(d), strings.Join(msgs, "\n\t"))
}

func (d Diagnostics) Unwrap() []error {
	out := make([]error, len(d))
	for i, e := range d {
		out[i] = e
	}
	return out
}

// Fatal returns the diagnostics that dropped an entity.
func (d Diagnostics) Fatal() Diagnostics {
	var out Diagnostics
	for _, e := range d {
		if e.Fatal() {
			out = append(out, e)
		}
	}
	return out
}
