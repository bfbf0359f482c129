package tree_test

import (
	"testing"

	"github.com/leighmacdonald/mfe-tui/internal/catalog"
	"github.com/leighmacdonald/mfe-tui/internal/tree"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func allIDs(nodes []tree.Node) []string {
	var ids []string
	tree.Walk(nodes, func(node tree.Node, _ int) bool {
		ids = append(ids, node.ID)

		return true
	})

	return ids
}

func TestBuild(t *testing.T) {
	cat := catalog.Default()
	nodes := tree.Build(cat, true)

	require.Len(t, nodes, 2)
	require.Equal(t, tree.PackagesID, nodes[0].ID)
	require.Equal(t, tree.AppsID, nodes[1].ID)

	shared := nodes[0].Children
	require.Len(t, shared, 1)
	require.Equal(t, tree.SharedComponentsID(), shared[0].ID)
	require.Len(t, shared[0].Children, len(cat.Shared))

	require.Len(t, nodes[1].Children, len(cat.Apps))
	for idx, app := range cat.Apps {
		folder := nodes[1].Children[idx]
		require.Equal(t, tree.AppID(app.Name), folder.ID)
		require.Equal(t, app.Name, folder.Name)
		require.Len(t, folder.Children, 1)
		require.Equal(t, tree.AppComponentsID(app.Name), folder.Children[0].ID)
		for leafIdx, entry := range app.Entries {
			leaf := folder.Children[0].Children[leafIdx]
			require.Equal(t, entry.ID, leaf.ID)
			require.False(t, leaf.IsFolder())
			require.Nil(t, leaf.Children)
		}
	}
}

func TestBuildUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, id := range allIDs(tree.Build(catalog.Default(), false)) {
		require.False(t, seen[id], id)
		seen[id] = true
	}
}

func TestBuildDefaultState(t *testing.T) {
	for _, open := range []bool{true, false} {
		tree.Walk(tree.Build(catalog.Default(), open), func(node tree.Node, _ int) bool {
			if node.IsFolder() {
				require.Equal(t, open, node.IsOpen, node.ID)
			}

			return true
		})
	}
}

func TestToggle(t *testing.T) {
	nodes := tree.Build(catalog.Default(), true)

	closed := tree.Toggle(nodes, tree.AppComponentsID("Dashboard"))
	node, found := tree.Find(closed, tree.AppComponentsID("Dashboard"))
	require.True(t, found)
	require.False(t, node.IsOpen)

	// The input is never modified.
	node, _ = tree.Find(nodes, tree.AppComponentsID("Dashboard"))
	require.True(t, node.IsOpen)

	// Untouched subtrees are shared.
	require.Same(t, &nodes[0].Children[0], &closed[0].Children[0])
	require.Same(t, &nodes[1].Children[0].Children[0], &closed[1].Children[0].Children[0])
}

func TestToggleNoop(t *testing.T) {
	nodes := tree.Build(catalog.Default(), true)

	require.Equal(t, nodes, tree.Toggle(nodes, "p1"))
	require.Equal(t, nodes, tree.Toggle(nodes, "db5"))
	require.Equal(t, nodes, tree.Toggle(nodes, "does-not-exist"))
	require.Equal(t, nodes, tree.Toggle(nodes, ""))
}

func TestToggleInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		open := rapid.Bool().Draw(t, "open")
		nodes := tree.Build(catalog.Default(), open)
		ids := append(allIDs(nodes), "unknown")

		// Apply a random prefix first so the property holds from any reachable state.
		for _, id := range rapid.SliceOfN(rapid.SampledFrom(ids), 0, 8).Draw(t, "prefix") {
			nodes = tree.Toggle(nodes, id)
		}

		id := rapid.SampledFrom(ids).Draw(t, "id")
		require.Equal(t, nodes, tree.Toggle(tree.Toggle(nodes, id), id))
	})
}

func TestVisible(t *testing.T) {
	nodes := tree.Build(catalog.Default(), true)
	rows := tree.Visible(nodes)

	// 2 roots, shared components + 6 leaves, 3 apps with a components folder and 5 leaves each.
	require.Len(t, rows, 2+1+6+3*(1+1+5))
	require.Equal(t, tree.PackagesID, rows[0].Node.ID)
	require.Equal(t, 0, rows[0].Depth)
	require.Equal(t, "p1", rows[2].Node.ID)
	require.Equal(t, 2, rows[2].Depth)

	collapsed := tree.Visible(tree.Toggle(nodes, tree.AppsID))
	require.Len(t, collapsed, 2+1+6)
	require.Equal(t, tree.AppsID, collapsed[len(collapsed)-1].Node.ID)

	require.Len(t, tree.Visible(tree.Build(catalog.Default(), false)), 2)
}

func TestFind(t *testing.T) {
	nodes := tree.Build(catalog.Default(), false)

	node, found := tree.Find(nodes, "m3")
	require.True(t, found, "closed folders are still searched")
	require.Equal(t, "Testimonials.jsx", node.Name)

	_, found = tree.Find(nodes, "missing")
	require.False(t, found)
}
