// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Diary is the aggregate root of the Diary -> Page -> SubPage -> Image tree.
// PageIDs only grows by appending, except on explicit page deletion.
type Diary struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CoverID     string    `json:"coverId"`
	PageIDs     []string  `json:"pageIds"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DiaryPage is one day of a diary. Its Content is split for display into
// the ordered chain of sub-pages listed in SubPageIDs.
type DiaryPage struct {
	ID         string   `json:"id"`
	DiaryID    string   `json:"diaryId"`
	PageNumber int      `json:"pageNumber"`
	Content    string   `json:"content"`
	SubPageIDs []string `json:"subPageIds"`

	// CreatedAt is the zero time for a page whose timestamp was never set.
	CreatedAt time.Time `json:"createdAt"`
}

// IsEmpty reports whether the page holds no text.
func (p DiaryPage) IsEmpty() bool {
	return p.Content == ""
}

// DiarySubPage is a contiguous slice of its page's content sized to fit one
// screen. The slice starts at the previous sub-page's ContentEndIndex (or 0
// for the first sub-page) and ends, exclusively, at ContentEndIndex.
//
// Iteration and Phase are layout working fields. They travel over the API
// but are dropped before the sub-page is written to the document store.
type DiarySubPage struct {
	ID              string        `json:"id"`
	PageID          string        `json:"pageId"`
	ContentEndIndex int           `json:"contentEndIndex"`
	Iteration       int           `json:"iteration"`
	Phase           OverflowPhase `json:"phase"`
	ImageIDs        []string      `json:"imageIds"`
}

// HasImages reports whether any image is attached to the sub-page.
func (s DiarySubPage) HasImages() bool {
	return len(s.ImageIDs) > 0
}
