package catalog

// Default returns the built-in sample catalog. Each call returns a fresh copy so callers can never
// alter the data seen by anyone else.
func Default() Catalog {
	return Catalog{
		Shared: []Entry{
			{ID: "p1", Name: "Header.jsx", Kind: KindLayout, Style: "gray-700"},
			{ID: "p2", Name: "Footer.jsx", Kind: KindLayout, Style: "gray-600"},
			{ID: "p3", Name: "Navigation.jsx", Kind: KindLayout, Style: "gray-500"},
			{ID: "p4", Name: "Button.jsx", Kind: KindUI, Style: "gray-400"},
			{ID: "p5", Name: "Input.jsx", Kind: KindUI, Style: "gray-300"},
			{ID: "p6", Name: "Card.jsx", Kind: KindUI, Style: "gray-200"},
		},
		Apps: []Application{
			{
				Name:  "Marketing",
				Color: "purple",
				Route: "/",
				Entries: []Entry{
					{ID: "m1", Name: "Hero.jsx", Style: "purple-900"},
					{ID: "m2", Name: "Features.jsx", Style: "purple-800"},
					{ID: "m3", Name: "Testimonials.jsx", Style: "purple-700"},
					{ID: "m4", Name: "Pricing.jsx", Style: "purple-600"},
					{ID: "m5", Name: PageMarker, Style: "purple-500"},
				},
			},
			{
				Name:  "Documentation",
				Color: "green",
				Route: "/docs",
				Entries: []Entry{
					{ID: "d1", Name: "Sidebar.jsx", Style: "green-900"},
					{ID: "d2", Name: "ArticleContent.jsx", Style: "green-800"},
					{ID: "d3", Name: "SearchBar.jsx", Style: "green-700"},
					{ID: "d4", Name: "TableOfContents.jsx", Style: "green-600"},
					{ID: "d5", Name: PageMarker, Style: "green-500"},
				},
			},
			{
				Name:  "Dashboard",
				Color: "blue",
				Route: "/dashboard",
				Entries: []Entry{
					{ID: "db1", Name: "Overview.jsx", Style: "blue-900"},
					{ID: "db2", Name: "Analytics.jsx", Style: "blue-800"},
					{ID: "db3", Name: "UserProfile.jsx", Style: "blue-700"},
					{ID: "db4", Name: "Settings.jsx", Style: "blue-600"},
					{ID: "db5", Name: PageMarker, Style: "blue-500"},
				},
			},
		},
		Highlights: map[string][]string{
			// The shared button is drawn inside one block of every app plus the navigation bar.
			"p4": {"p4", "m3", "d3", "db3", MockSharedButton},
			"p1": {"p1", MockHeader},
			"p2": {"p2", MockFooter},
			"p3": {"p3", MockNavigation},
		},
	}
}
