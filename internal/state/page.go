package state

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPage = errors.New("unknown page")

// Page is one of the fixed mock pages the browser can show for the active application.
type Page int

const (
	PageHome Page = iota
	PageProducts
	PageAbout
	PageContact
)

// Pages lists every page in navigation order.
var Pages = []Page{PageHome, PageProducts, PageAbout, PageContact} //nolint:gochecknoglobals

func (p Page) String() string {
	switch p {
	case PageHome:
		return "Home"
	case PageProducts:
		return "Products"
	case PageAbout:
		return "About"
	case PageContact:
		return "Contact"
	default:
		return fmt.Sprintf("Page(%d)", int(p))
	}
}

func (p Page) Valid() bool {
	return p >= PageHome && p <= PageContact
}

// Next returns the following page, wrapping around.
func (p Page) Next() Page {
	return (p + 1) % Page(len(Pages))
}

// Prev returns the preceding page, wrapping around.
func (p Page) Prev() Page {
	return (p + Page(len(Pages)) - 1) % Page(len(Pages))
}

func ParsePage(label string) (Page, error) {
	for _, page := range Pages {
		if strings.EqualFold(page.String(), label) {
			return page, nil
		}
	}

	return PageHome, fmt.Errorf("%w: %s", ErrUnknownPage, label)
}
