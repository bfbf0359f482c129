package component

import "fmt"

const (
	siteOrigin   = "https://microfrontend-demo.com"
	siteTitle    = "Microfront Demo"
	siteCopy     = "© 2023 Microfrontend Demo"
	productCount = 6
)

var footerLinks = []string{"Privacy Policy", "Terms of Service", "Contact Us"} //nolint:gochecknoglobals

// block is one card of an application's home page. The id is matched against the highlight set.
type block struct {
	id      string
	title   string
	heading string
	lines   []string
	bullets []string
	// button is drawn with the shared button component.
	button string
	input  string
	style  string
}

// layout decides how an application arranges its home page blocks.
type layout int

const (
	layoutStack layout = iota
	layoutSidebar
	layoutGrid
)

type homePage struct {
	layout layout
	blocks []block
}

// homePages holds the home content of every application in the default catalog, keyed by application name.
var homePages = map[string]homePage{ //nolint:gochecknoglobals
	"Marketing": {
		layout: layoutStack,
		blocks: []block{
			{
				id:      "m1",
				title:   "Hero Section",
				heading: "Welcome to Our Product",
				lines:   []string{"Discover the amazing features that will revolutionize your workflow."},
				button:  "Get Started",
				style:   "purple-900",
			},
			{
				id:      "m2",
				title:   "Features",
				bullets: []string{"Intuitive Interface", "Powerful Analytics", "Seamless Integration"},
				style:   "purple-800",
			},
			{
				id:    "m3",
				title: "Testimonials",
				lines: []string{`"This product has transformed our business!" - Happy Customer`},
				style: "purple-700",
			},
		},
	},
	"Documentation": {
		layout: layoutSidebar,
		blocks: []block{
			{
				id:      "d1",
				title:   "Sidebar",
				bullets: []string{"Getting Started", "Core Concepts", "Advanced Topics"},
				style:   "green-900",
			},
			{
				id:    "d3",
				input: "Search documentation...",
				style: "green-700",
			},
			{
				id:      "d2",
				title:   "Article Content",
				heading: "Getting Started",
				lines:   []string{"Learn how to set up and use our product in just a few simple steps."},
				style:   "green-800",
			},
		},
	},
	"Dashboard": {
		layout: layoutGrid,
		blocks: []block{
			{
				id:    "db1",
				title: "Overview",
				lines: []string{"Welcome back! Here's a summary of your account activity."},
				style: "blue-900",
			},
			{
				id:    "db2",
				title: "Analytics",
				lines: []string{"Your performance metrics and data visualizations."},
				style: "blue-800",
			},
			{
				id:     "db3",
				title:  "User Profile",
				lines:  []string{"Manage your account settings and preferences."},
				button: "Edit Profile",
				style:  "blue-700",
			},
		},
	},
}

// genericHome is shown for applications that have no dedicated home content.
func genericHome(name string, color string) homePage {
	return homePage{
		layout: layoutStack,
		blocks: []block{{
			title:   "Home",
			heading: "Welcome to " + name,
			lines:   []string{fmt.Sprintf("This is the home page of the %s microfrontend.", name)},
			style:   color + "-900",
		}},
	}
}

func homeFor(name string, color string) homePage {
	if page, found := homePages[name]; found {
		return page
	}

	return genericHome(name, color)
}

const (
	aboutTitle = "About Us"
	aboutText  = "We are a microfrontend-based application showcasing the power of modular architecture."
)

var contactFields = []string{"Your Name", "Your Email"} //nolint:gochecknoglobals

const (
	contactTitle   = "Contact Us"
	contactMessage = "Your Message"
	contactSend    = "Send Message"
	productsTitle  = "Products"
	productsButton = "Add to Cart"
)
