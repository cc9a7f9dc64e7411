package viewstate

import (
	"encoding/json"

	"github.com/MKhiriev/go-time-diary/models"
)

// DiaryListState is the home screen: a looping carousel over the user's
// diaries.
type DiaryListState struct {
	Diaries map[string]models.Diary `json:"diaries"`
	// Order is the user's diary id list restricted to loaded diaries.
	Order  []string                     `json:"order"`
	Covers map[string]models.DiaryImage `json:"covers"`

	// PagerPosition grows without bound while the user scrolls; it is
	// mapped onto the diaries by CurrentIndex.
	PagerPosition int  `json:"pagerPosition"`
	DialogVisible bool `json:"dialogVisible"`
}

// NewDiaryListState builds the home screen of user from the loaded diaries
// and covers.
func NewDiaryListState(user models.User, diaries []models.Diary, covers map[string]models.DiaryImage, position int) DiaryListState {
	s := DiaryListState{
		Diaries:       make(map[string]models.Diary, len(diaries)),
		Order:         make([]string, 0, len(diaries)),
		Covers:        covers,
		PagerPosition: position,
	}
	if s.Covers == nil {
		s.Covers = make(map[string]models.DiaryImage)
	}
	for _, d := range diaries {
		s.Diaries[d.ID] = d
	}
	for _, id := range user.DiaryIDs {
		if _, ok := s.Diaries[id]; ok {
			s.Order = append(s.Order, id)
		}
	}
	return s
}

// CurrentIndex maps the pager position onto Order, wrapping around in both
// directions. It is -1 when there are no diaries.
func (s DiaryListState) CurrentIndex() int {
	n := len(s.Order)
	if n == 0 {
		return -1
	}
	return ((s.PagerPosition % n) + n) % n
}

func (s DiaryListState) Current() (models.Diary, bool) {
	i := s.CurrentIndex()
	if i < 0 {
		return models.Diary{}, false
	}
	d, ok := s.Diaries[s.Order[i]]
	return d, ok
}

// CoverOf returns the cover image of a diary, if it has one.
func (s DiaryListState) CoverOf(diaryID string) (models.DiaryImage, bool) {
	d, ok := s.Diaries[diaryID]
	if !ok || d.CoverID == "" {
		return models.DiaryImage{}, false
	}
	img, ok := s.Covers[d.CoverID]
	return img, ok
}

func (s DiaryListState) MarshalJSON() ([]byte, error) {
	type plain DiaryListState
	return json.Marshal(struct {
		plain
		CurrentIndex int `json:"currentIndex"`
	}{plain(s), s.CurrentIndex()})
}
