// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package style holds the journal style registry and template resolution.
// A registry maps template names to complete style profiles; Resolve merges
// the base defaults, an optional named template, and explicit overrides
// into one immutable profile (later sources win outright per field).
package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/paperkit/pkg/types"
)

// UnknownTemplateError is returned when a requested template name is not
// present in the registry. It carries the valid names for the error message.
type UnknownTemplateError struct {
	Name      string
	Available []string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("template %q not found. Available templates: %s",
		e.Name, strings.Join(e.Available, ", "))
}

// Registry resolves template names to style profiles.
type Registry struct {
	templates map[string]types.Profile
	// order preserves listing order: builtins first, then custom names
	// sorted alphabetically.
	order []string
}

// NewRegistry returns a registry holding the builtin journal templates.
func NewRegistry() *Registry {
	r := &Registry{templates: make(map[string]types.Profile)}
	for _, name := range builtinOrder {
		r.templates[name] = builtinTemplates[name]
		r.order = append(r.order, name)
	}
	return r
}

// Names returns the registered template names in listing order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Get returns the named template. The lookup is case-insensitive.
func (r *Registry) Get(name string) (types.Profile, error) {
	key := strings.ToLower(name)
	p, ok := r.templates[key]
	if !ok {
		return types.Profile{}, &UnknownTemplateError{Name: name, Available: r.Names()}
	}
	return p, nil
}

// Add registers or replaces a template under a lowercased name.
func (r *Registry) Add(name string, p types.Profile) {
	key := strings.ToLower(name)
	if _, exists := r.templates[key]; !exists {
		r.order = append(r.order, key)
		// Keep custom names after the builtins, alphabetically.
		custom := r.order[len(builtinOrder):]
		sort.Strings(custom)
	}
	r.templates[key] = p
}

// Resolve produces the effective profile for an invocation. Precedence is
// defaults, then the named template, then explicit overrides; each later
// source replaces fields wholesale. An empty template name skips the
// template step. A non-empty name absent from the registry fails with
// UnknownTemplateError.
func (r *Registry) Resolve(templateName string, ov types.Overrides) (types.Profile, error) {
	p := Default()
	if templateName != "" {
		t, err := r.Get(templateName)
		if err != nil {
			return types.Profile{}, err
		}
		p = t
	}
	return ov.Apply(p), nil
}

// Default returns the base profile used when no template is named. It
// matches the "default" journal template.
func Default() types.Profile {
	return builtinTemplates["default"]
}
