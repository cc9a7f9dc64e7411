package viewstate

import (
	"encoding/json"

	"github.com/MKhiriev/go-time-diary/internal/pagination"
	"github.com/MKhiriev/go-time-diary/models"
)

// DiaryState is the diary reader. The entity maps are kept as loaded;
// everything ordered is derived from the id lists of the parents.
type DiaryState struct {
	Diary    models.Diary                   `json:"diary"`
	Pages    map[string]models.DiaryPage    `json:"pages"`
	SubPages map[string]models.DiarySubPage `json:"subPages"`
	Images   map[string]models.DiaryImage   `json:"images"`

	PagerIndex int `json:"pagerIndex"`
}

// Spread is one screen of the reader: a sub-page of a page. A page
// without sub-pages is a single spread with an empty SubPageID.
type Spread struct {
	PageID     string `json:"pageId"`
	PageNumber int    `json:"pageNumber"`
	SubPageID  string `json:"subPageId,omitempty"`
	Text       string `json:"text"`
}

func (s DiaryState) OrderedPages() []models.DiaryPage {
	pages := make([]models.DiaryPage, 0, len(s.Diary.PageIDs))
	for _, id := range s.Diary.PageIDs {
		if p, ok := s.Pages[id]; ok {
			pages = append(pages, p)
		}
	}
	return pages
}

func (s DiaryState) SubPagesOf(pageID string) []models.DiarySubPage {
	page, ok := s.Pages[pageID]
	if !ok {
		return nil
	}
	subPages := make([]models.DiarySubPage, 0, len(page.SubPageIDs))
	for _, id := range page.SubPageIDs {
		if sp, ok := s.SubPages[id]; ok {
			subPages = append(subPages, sp)
		}
	}
	return subPages
}

// Chain returns the pagination chain of pageID.
func (s DiaryState) Chain(pageID string) *pagination.Chain {
	return pagination.NewChain(s.Pages[pageID], s.SubPages)
}

func (s DiaryState) Spreads() []Spread {
	var spreads []Spread
	for _, page := range s.OrderedPages() {
		chain := pagination.NewChain(page, s.SubPages)
		if len(chain.SubPages) == 0 {
			spreads = append(spreads, Spread{PageID: page.ID, PageNumber: page.PageNumber, Text: page.Content})
			continue
		}
		for i, sp := range chain.SubPages {
			spreads = append(spreads, Spread{
				PageID:     page.ID,
				PageNumber: page.PageNumber,
				SubPageID:  sp.ID,
				Text:       chain.Text(i),
			})
		}
	}
	return spreads
}

// PagePosition returns the spread under the pager.
func (s DiaryState) PagePosition() (Spread, bool) {
	spreads := s.Spreads()
	if s.PagerIndex < 0 || s.PagerIndex >= len(spreads) {
		return Spread{}, false
	}
	return spreads[s.PagerIndex], true
}

func (s DiaryState) ImagesOf(subPageID string) []models.DiaryImage {
	sp, ok := s.SubPages[subPageID]
	if !ok {
		return nil
	}
	images := make([]models.DiaryImage, 0, len(sp.ImageIDs))
	for _, id := range sp.ImageIDs {
		if img, ok := s.Images[id]; ok {
			images = append(images, img)
		}
	}
	return images
}

// LatestPage returns the last page of the diary.
func (s DiaryState) LatestPage() (models.DiaryPage, bool) {
	pages := s.OrderedPages()
	if len(pages) == 0 {
		return models.DiaryPage{}, false
	}
	return pages[len(pages)-1], true
}

// Clone returns a copy whose maps can be modified without touching s.
func (s DiaryState) Clone() DiaryState {
	c := s
	c.Pages = cloneMap(s.Pages)
	c.SubPages = cloneMap(s.SubPages)
	c.Images = cloneMap(s.Images)
	return c
}

func (s DiaryState) MarshalJSON() ([]byte, error) {
	type plain DiaryState
	return json.Marshal(struct {
		plain
		Spreads []Spread `json:"spreads"`
	}{plain(s), s.Spreads()})
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	c := make(map[K]V, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
