package pagination

import (
	"github.com/MKhiriev/go-time-diary/models"
)

// Chain is the text of one page together with its ordered sub-pages.
//
// Sub-pages appended by the engine have no id until the caller stores them
// and calls [Chain.AssignIDs].
type Chain struct {
	PageID   string
	Content  string
	SubPages []models.DiarySubPage
}

// NewChain builds the chain of page from subPages. Sub-pages missing from
// subPages are skipped.
func NewChain(page models.DiaryPage, subPages map[string]models.DiarySubPage) *Chain {
	chain := &Chain{PageID: page.ID, Content: page.Content}
	for _, id := range page.SubPageIDs {
		if sp, ok := subPages[id]; ok {
			chain.SubPages = append(chain.SubPages, sp)
		}
	}
	return chain
}

// Start returns the offset the i-th sub-page starts at: the end of the
// previous sub-page, or 0 for the first one. The result never exceeds the
// content length.
func (c *Chain) Start(i int) int {
	if i <= 0 || i > len(c.SubPages) {
		return 0
	}
	return min(c.SubPages[i-1].ContentEndIndex, len(c.Content))
}

// Text returns the slice of content the i-th sub-page currently shows.
func (c *Chain) Text(i int) string {
	if i < 0 || i >= len(c.SubPages) {
		return ""
	}
	start := c.Start(i)
	end := max(start, min(c.SubPages[i].ContentEndIndex, len(c.Content)))
	return c.Content[start:end]
}

// Index returns the position of the sub-page with id or -1.
func (c *Chain) Index(id string) int {
	for i, sp := range c.SubPages {
		if sp.ID == id {
			return i
		}
	}
	return -1
}

// AssignIDs gives ids, in order, to the sub-pages that have none yet.
func (c *Chain) AssignIDs(ids ...string) {
	for i := range c.SubPages {
		if len(ids) == 0 {
			return
		}
		if c.SubPages[i].ID == "" {
			c.SubPages[i].ID = ids[0]
			ids = ids[1:]
		}
	}
}

// Settled reports whether every sub-page is settled.
func (c *Chain) Settled() bool {
	for _, sp := range c.SubPages {
		if sp.Phase != models.PhaseSettled {
			return false
		}
	}
	return true
}

// IDs returns the ids of the sub-pages in chain order.
func (c *Chain) IDs() []string {
	ids := make([]string, 0, len(c.SubPages))
	for _, sp := range c.SubPages {
		ids = append(ids, sp.ID)
	}
	return ids
}
