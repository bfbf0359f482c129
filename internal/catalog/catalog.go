package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// PageMarker is the reserved entry name identifying an application's page. Selecting it switches the
// active application.
const PageMarker = "page.jsx"

// PathSeparator is used to build folder ids and may not appear in catalog ids.
const PathSeparator = "/"

// Mock ids of the shared chrome drawn by the browser. These do not exist in the tree.
const (
	MockHeader       = "header"
	MockFooter       = "footer"
	MockNavigation   = "navigation"
	MockSharedButton = "shared-button"
)

var (
	ErrInvalidCatalog = errors.New("invalid catalog")
	errEmptyCatalog   = errors.New("catalog has no applications")
	errDuplicateID    = errors.New("duplicate entry id")
	errReservedID     = errors.New("entry id contains path separator")
	errEmptyID        = errors.New("entry id is empty")
	errPageEntry      = errors.New("application must have exactly one page entry")
	errHighlightGroup = errors.New("highlight group does not contain its own id")
)

type Kind string

const (
	KindNone   Kind = ""
	KindLayout Kind = "layout"
	KindUI     Kind = "ui"
)

// Entry is a single component file shown as a leaf in the tree.
type Entry struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Kind  Kind   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Style string `json:"style" yaml:"style"`
}

func (e Entry) IsPage() bool {
	return e.Name == PageMarker
}

type Application struct {
	Name    string  `json:"name" yaml:"name"`
	Color   string  `json:"color" yaml:"color"`
	Route   string  `json:"route" yaml:"route"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// PageEntry returns the entry carrying the reserved page marker.
func (a Application) PageEntry() (Entry, bool) {
	for _, entry := range a.Entries {
		if entry.IsPage() {
			return entry, true
		}
	}

	return Entry{}, false
}

func (a Application) Contains(entryID string) bool {
	return slices.ContainsFunc(a.Entries, func(e Entry) bool { return e.ID == entryID })
}

// Catalog is the immutable sample data everything else is derived from.
type Catalog struct {
	Shared []Entry        `json:"shared" yaml:"shared"`
	Apps   []Application `json:"apps" yaml:"apps"`
	// Highlights maps a tree node id to the full group of ids pulsed when it is hovered. Ids missing
	// from the table highlight only themselves.
	Highlights map[string][]string `json:"highlights" yaml:"highlights"`
}

// OwnerOf returns the application whose entries include entryID.
func (c Catalog) OwnerOf(entryID string) (Application, bool) {
	for _, app := range c.Apps {
		if app.Contains(entryID) {
			return app, true
		}
	}

	return Application{}, false
}

func (c Catalog) AppByName(name string) (Application, bool) {
	for _, app := range c.Apps {
		if app.Name == name {
			return app, true
		}
	}

	return Application{}, false
}

// HighlightGroup returns the ids pulsed together with id. The returned slice is a copy.
func (c Catalog) HighlightGroup(id string) []string {
	group, found := c.Highlights[id]
	if !found {
		return []string{id}
	}

	return slices.Clone(group)
}

// Validate checks the invariants the rest of the program relies on. A failure here is a programming
// error in the catalog literal, not a runtime condition.
func (c Catalog) Validate() error {
	var errs []error

	if len(c.Apps) == 0 {
		errs = append(errs, errEmptyCatalog)
	}

	seen := map[string]bool{}
	check := func(entry Entry) {
		switch {
		case entry.ID == "":
			errs = append(errs, fmt.Errorf("%w: %q", errEmptyID, entry.Name))
		case strings.Contains(entry.ID, PathSeparator):
			errs = append(errs, fmt.Errorf("%w: %s", errReservedID, entry.ID))
		case seen[entry.ID]:
			errs = append(errs, fmt.Errorf("%w: %s", errDuplicateID, entry.ID))
		}
		seen[entry.ID] = true
	}

	for _, entry := range c.Shared {
		check(entry)
	}

	for _, app := range c.Apps {
		pages := 0
		for _, entry := range app.Entries {
			check(entry)
			if entry.IsPage() {
				pages++
			}
		}

		if pages != 1 {
			errs = append(errs, fmt.Errorf("%w: %s has %d", errPageEntry, app.Name, pages))
		}
	}

	for id, group := range c.Highlights {
		if !slices.Contains(group, id) {
			errs = append(errs, fmt.Errorf("%w: %s", errHighlightGroup, id))
		}
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidCatalog}, errs...)...)
	}

	return nil
}
