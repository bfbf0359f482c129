package state

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/leighmacdonald/mfe-tui/internal/catalog"
	"github.com/leighmacdonald/mfe-tui/internal/tree"
)

// Store owns the session: the tree with its open/closed flags and the current selection. It is only
// touched from the ui event loop so it carries no locking.
//
// The highlight set is always replaced, never modified in place, so handing out the tree or a copy of
// the store never exposes later changes.
type Store struct {
	catalog   catalog.Catalog
	nodes     []tree.Node
	active    catalog.Application
	highlight map[string]struct{}
	page      Page
}

// New creates a store in its initial state: the first application active, nothing highlighted and the
// home page shown. The catalog must have passed Validate.
func New(cat catalog.Catalog, open bool) *Store {
	return &Store{
		catalog:   cat,
		nodes:     tree.Build(cat, open),
		active:    cat.Apps[0],
		highlight: map[string]struct{}{},
		page:      PageHome,
	}
}

func (s *Store) Catalog() catalog.Catalog {
	return s.catalog
}

func (s *Store) Tree() []tree.Node {
	return s.nodes
}

func (s *Store) Visible() []tree.Row {
	return tree.Visible(s.nodes)
}

func (s *Store) ActiveApp() catalog.Application {
	return s.active
}

func (s *Store) Page() Page {
	return s.page
}

// Highlights returns the current highlight set in sorted order.
func (s *Store) Highlights() []string {
	return slices.Sorted(maps.Keys(s.highlight))
}

func (s *Store) Highlighted(id string) bool {
	_, found := s.highlight[id]

	return found
}

// Toggle flips the folder with the given id. It reports whether the tree changed, which is never the
// case for files or unknown ids.
func (s *Store) Toggle(id string) bool {
	node, found := tree.Find(s.nodes, id)
	if !found || !node.IsFolder() {
		return false
	}

	s.nodes = tree.Toggle(s.nodes, id)
	slog.Debug("Toggled folder", slog.String("id", id))

	return true
}

// SelectHover computes the highlight set for the hovered node, nil clearing it. Hovering an
// application's page entry also makes that application active.
func (s *Store) SelectHover(node *tree.Node) {
	if node == nil {
		s.setHighlight()

		return
	}

	if node.Name == catalog.PageMarker {
		if app, found := s.catalog.OwnerOf(node.ID); found {
			s.activate(app)
		} else {
			slog.Warn("Page entry without owning application", slog.String("id", node.ID))
		}

		s.setHighlight(node.ID)

		return
	}

	s.setHighlight(s.catalog.HighlightGroup(node.ID)...)
}

// Navigate activates the application a clicked node belongs to: either the app folder of that name or
// the app whose entries contain the node. It reports whether an owner was found.
func (s *Store) Navigate(node tree.Node) bool {
	app, found := s.catalog.AppByName(node.Name)
	if !found {
		app, found = s.catalog.OwnerOf(node.ID)
	}

	if !found {
		return false
	}

	s.activate(app)

	return true
}

// SelectApp activates an application by name as done by the mock browser's navigation buttons.
func (s *Store) SelectApp(name string) bool {
	app, found := s.catalog.AppByName(name)
	if !found {
		return false
	}

	s.activate(app)

	return true
}

// SelectPage switches the mock page shown inside the active application. Invalid pages are ignored.
func (s *Store) SelectPage(page Page) {
	if !page.Valid() {
		return
	}

	s.page = page
	slog.Debug("Selected page", slog.String("page", page.String()))
}

func (s *Store) activate(app catalog.Application) {
	if app.Name == s.active.Name {
		return
	}

	s.active = app
	s.page = PageHome
	slog.Debug("Activated application", slog.String("app", app.Name))
}

func (s *Store) setHighlight(ids ...string) {
	highlight := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		highlight[id] = struct{}{}
	}

	s.highlight = highlight
}
