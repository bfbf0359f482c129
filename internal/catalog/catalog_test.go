package catalog_test

import (
	"testing"

	"github.com/leighmacdonald/mfe-tui/internal/catalog"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, catalog.Default().Validate())
}

func TestDefaultIsACopy(t *testing.T) {
	first := catalog.Default()
	first.Apps[0].Name = "changed"
	first.Highlights["p4"][0] = "changed"

	second := catalog.Default()
	require.Equal(t, "Marketing", second.Apps[0].Name)
	require.Equal(t, "p4", second.Highlights["p4"][0])
}

func TestOwnerOf(t *testing.T) {
	cat := catalog.Default()

	app, found := cat.OwnerOf("d5")
	require.True(t, found)
	require.Equal(t, "Documentation", app.Name)

	_, found = cat.OwnerOf("p1")
	require.False(t, found, "shared entries have no owner")

	_, found = cat.OwnerOf("nope")
	require.False(t, found)
}

func TestPageEntry(t *testing.T) {
	cat := catalog.Default()
	for _, app := range cat.Apps {
		entry, found := app.PageEntry()
		require.True(t, found, app.Name)
		require.Equal(t, catalog.PageMarker, entry.Name)
		require.True(t, app.Contains(entry.ID))
	}
}

func TestHighlightGroup(t *testing.T) {
	cat := catalog.Default()

	require.Equal(t, []string{"p4", "m3", "d3", "db3", catalog.MockSharedButton}, cat.HighlightGroup("p4"))
	require.Equal(t, []string{"p1", catalog.MockHeader}, cat.HighlightGroup("p1"))
	require.Equal(t, []string{"m1"}, cat.HighlightGroup("m1"))

	group := cat.HighlightGroup("p2")
	group[0] = "mutated"
	require.Equal(t, "p2", cat.HighlightGroup("p2")[0])
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *catalog.Catalog)
	}{
		{"empty", func(c *catalog.Catalog) { c.Apps = nil }},
		{"duplicate", func(c *catalog.Catalog) { c.Apps[1].Entries[0].ID = "m1" }},
		{"separator", func(c *catalog.Catalog) { c.Shared[0].ID = "apps/p1" }},
		{"empty id", func(c *catalog.Catalog) { c.Shared[0].ID = "" }},
		{"no page", func(c *catalog.Catalog) { c.Apps[2].Entries = c.Apps[2].Entries[:4] }},
		{"two pages", func(c *catalog.Catalog) { c.Apps[0].Entries[0].Name = catalog.PageMarker }},
		{"bad group", func(c *catalog.Catalog) { c.Highlights["p5"] = []string{"header"} }},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			cat := catalog.Default()
			testCase.mutate(&cat)
			require.ErrorIs(t, cat.Validate(), catalog.ErrInvalidCatalog)
		})
	}
}
