// Package dashboard drives the sectioned list view of the HMS front end.
// Exactly one section is visible at a time; switching sections re-renders
// every list so freshly created records are always visible.
package dashboard

import (
	"context"
	"fmt"
	"io"

	"github.com/hms/hms/internal/render"
)

// Loader fetches the current records for one section.
type Loader func(ctx context.Context) ([]render.Record, error)

// Section is one navigable view: a label, the field descriptor used to
// render its list, and a loader that reads the backing collection.
type Section struct {
	ID     string
	Label  string
	Fields []render.Field
	Load   Loader
}

// Dashboard holds the section set and the single active section.
type Dashboard struct {
	sections []Section
	active   string
	rendered map[string]string
}

// New constructs a dashboard; the first section is the initial active view.
func New(sections ...Section) (*Dashboard, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("dashboard requires at least one section")
	}
	seen := make(map[string]bool, len(sections))
	for _, s := range sections {
		if seen[s.ID] {
			return nil, fmt.Errorf("duplicate section id %q", s.ID)
		}
		seen[s.ID] = true
	}
	return &Dashboard{
		sections: sections,
		active:   sections[0].ID,
		rendered: make(map[string]string),
	}, nil
}

// ActiveID returns the id of the currently visible section.
func (d *Dashboard) ActiveID() string {
	return d.active
}

// SectionIDs returns the section ids in display order.
func (d *Dashboard) SectionIDs() []string {
	ids := make([]string, len(d.sections))
	for i, s := range d.sections {
		ids[i] = s.ID
	}
	return ids
}

// ShowSection makes the named section the only visible one and re-renders
// every list. An unknown id is an error and leaves the state untouched.
func (d *Dashboard) ShowSection(ctx context.Context, id string) error {
	found := false
	for _, s := range d.sections {
		if s.ID == id {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown section %q", id)
	}

	if err := d.Refresh(ctx); err != nil {
		return err
	}
	d.active = id
	return nil
}

// Refresh re-renders every section's list from its loader.
func (d *Dashboard) Refresh(ctx context.Context) error {
	for _, s := range d.sections {
		records, err := s.Load(ctx)
		if err != nil {
			return fmt.Errorf("loading %s: %w", s.ID, err)
		}
		d.rendered[s.ID] = render.List(records, s.Fields, s.Label)
	}
	return nil
}

// Markup returns the rendered list markup for a section, or an empty string
// if it has not been rendered yet.
func (d *Dashboard) Markup(id string) string {
	return d.rendered[id]
}

// Render writes the active section's heading and list to w.
func (d *Dashboard) Render(w io.Writer) error {
	for _, s := range d.sections {
		if s.ID != d.active {
			continue
		}
		_, err := fmt.Fprintf(w, "== %s ==\n%s\n", s.Label, d.rendered[s.ID])
		return err
	}
	return fmt.Errorf("active section %q missing", d.active)
}

// RenderAll writes every section in order, marking the active one. Used by
// the CLI's full-dashboard output.
func (d *Dashboard) RenderAll(w io.Writer) error {
	for _, s := range d.sections {
		marker := "  "
		if s.ID == d.active {
			marker = "* "
		}
		if _, err := fmt.Fprintf(w, "%s%s\n%s\n", marker, s.Label, d.rendered[s.ID]); err != nil {
			return err
		}
	}
	return nil
}
