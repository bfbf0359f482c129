// Package tree builds the navigator's folder/file tree from the catalog and implements the pure operations
// over it. Nodes are treated as immutable values: every update returns a new root slice that shares all
// untouched subtrees with its input.
package tree

import (
	"path"
	"slices"

	"github.com/leighmacdonald/mfe-tui/internal/catalog"
)

const (
	PackagesID = "packages"
	AppsID     = "apps"

	componentsName = "components"
)

type Kind int

const (
	File Kind = iota
	Folder
)

type Node struct {
	ID     string
	Name   string
	Style  string
	Kind   Kind
	IsOpen bool
	// Children is only meaningful for folders. A folder may have no children.
	Children []Node
}

func (n Node) IsFolder() bool {
	return n.Kind == Folder
}

// SharedComponentsID is the id of the folder holding the shared entries.
func SharedComponentsID() string {
	return path.Join(PackagesID, componentsName)
}

// AppID is the id of the folder for the named application.
func AppID(name string) string {
	return path.Join(AppsID, name)
}

func AppComponentsID(name string) string {
	return path.Join(AppsID, name, componentsName)
}

// Build converts the catalog into the two root folders "packages" and "apps". Folder ids are derived from
// their path which keeps them apart from catalog ids, as those may not contain a separator.
func Build(cat catalog.Catalog, open bool) []Node {
	apps := make([]Node, 0, len(cat.Apps))
	for _, app := range cat.Apps {
		apps = append(apps, Node{
			ID:     AppID(app.Name),
			Name:   app.Name,
			Style:  app.Color + "-950",
			Kind:   Folder,
			IsOpen: open,
			Children: []Node{
				{
					ID:       AppComponentsID(app.Name),
					Name:     componentsName,
					Kind:     Folder,
					IsOpen:   open,
					Children: leaves(app.Entries),
				},
			},
		})
	}

	return []Node{
		{
			ID:     PackagesID,
			Name:   PackagesID,
			Kind:   Folder,
			IsOpen: open,
			Children: []Node{
				{
					ID:       SharedComponentsID(),
					Name:     componentsName,
					Kind:     Folder,
					IsOpen:   open,
					Children: leaves(cat.Shared),
				},
			},
		},
		{
			ID:       AppsID,
			Name:     AppsID,
			Kind:     Folder,
			IsOpen:   open,
			Children: apps,
		},
	}
}

func leaves(entries []catalog.Entry) []Node {
	nodes := make([]Node, 0, len(entries))
	for _, entry := range entries {
		nodes = append(nodes, Node{ID: entry.ID, Name: entry.Name, Style: entry.Style, Kind: File})
	}

	return nodes
}

// Toggle flips IsOpen on the folder with the given id. The slices along the path from the root to the
// folder are copied, everything else is shared with nodes. Unknown ids and files leave the tree as is
// and the input slice is returned.
func Toggle(nodes []Node, id string) []Node {
	updated, changed := toggle(nodes, id)
	if !changed {
		return nodes
	}

	return updated
}

func toggle(nodes []Node, id string) ([]Node, bool) {
	for idx, node := range nodes {
		if node.ID == id {
			if !node.IsFolder() {
				return nodes, false
			}

			out := slices.Clone(nodes)
			out[idx].IsOpen = !node.IsOpen

			return out, true
		}

		if !node.IsFolder() {
			continue
		}

		children, changed := toggle(node.Children, id)
		if changed {
			out := slices.Clone(nodes)
			out[idx].Children = children

			return out, true
		}
	}

	return nodes, false
}

// Find searches depth first for the node with the given id.
func Find(nodes []Node, id string) (Node, bool) {
	var (
		found  Node
		exists bool
	)

	Walk(nodes, func(node Node, _ int) bool {
		if node.ID == id {
			found, exists = node, true

			return false
		}

		return true
	})

	return found, exists
}

// Walk visits every node depth first, open or not. Returning false from fn stops the walk.
func Walk(nodes []Node, fn func(node Node, depth int) bool) {
	walk(nodes, 0, fn)
}

func walk(nodes []Node, depth int, fn func(node Node, depth int) bool) bool {
	for _, node := range nodes {
		if !fn(node, depth) {
			return false
		}

		if node.IsFolder() && !walk(node.Children, depth+1, fn) {
			return false
		}
	}

	return true
}

// Row is a single line of the rendered tree.
type Row struct {
	Node  Node
	Depth int
}

// Visible flattens the rows a renderer shows: children of a folder are listed only while it is open.
func Visible(nodes []Node) []Row {
	var rows []Row
	visible(nodes, 0, &rows)

	return rows
}

func visible(nodes []Node, depth int, rows *[]Row) {
	for _, node := range nodes {
		*rows = append(*rows, Row{Node: node, Depth: depth})
		if node.IsFolder() && node.IsOpen {
			visible(node.Children, depth+1, rows)
		}
	}
}
