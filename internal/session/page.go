package session

// Page identifies one of the dashboard's four pages. Pages are ordered
// cyclically; Next and Prev wrap around.
type Page int

const (
	PageProxy Page = iota
	PageLog
	PageSettings
	PageConfig

	pageCount = 4
)

func (p Page) Title() string {
	switch p {
	case PageProxy:
		return "Proxy"
	case PageLog:
		return "Log"
	case PageSettings:
		return "Settings"
	default:
		return "Config"
	}
}

func (p Page) Index() int { return int(p) }

// PageFromIndex wraps modulo the page count, so any non-negative index maps
// to a valid page.
func PageFromIndex(i int) Page {
	return Page(i % pageCount)
}

func (p Page) Next() Page {
	return PageFromIndex(p.Index() + 1)
}

func (p Page) Prev() Page {
	return PageFromIndex(p.Index() + pageCount - 1)
}
