// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pagination

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-time-diary/models"
)

// Effects lists the sub-pages a step changed in a way that must be stored.
//
// Created sub-pages are already part of the chain, without an id. Phase and
// iteration changes alone are not effects: they are never stored.
type Effects struct {
	Updated []models.DiarySubPage
	Created []models.DiarySubPage
	Deleted []string
}

// Empty reports whether nothing needs to be stored.
func (e Effects) Empty() bool {
	return len(e.Updated) == 0 && len(e.Created) == 0 && len(e.Deleted) == 0
}

// Engine advances sub-page chains. It holds no state of its own; the
// chain passed to every call is modified in place.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Active returns the index of the only sub-page allowed to progress: the
// first one that is not settled. It returns -1 when the chain is settled.
func (e *Engine) Active(chain *Chain) int {
	for i, sp := range chain.SubPages {
		if sp.Phase != models.PhaseSettled {
			return i
		}
	}
	return -1
}

// Prepare returns the render request of the active sub-page.
//
// A resetting sub-page is stretched to the end of the content, its iteration
// is bumped and it starts measuring. A sub-page that is already measuring
// gets its outstanding request again. When the chain is settled the request
// has Settled set.
func (e *Engine) Prepare(chain *Chain) (models.RenderRequest, Effects, error) {
	if len(chain.SubPages) == 0 {
		return models.RenderRequest{}, Effects{}, ErrEmptyChain
	}

	idx := e.Active(chain)
	if idx < 0 {
		return models.RenderRequest{PageID: chain.PageID, Settled: true}, Effects{}, nil
	}

	var effects Effects
	sp := &chain.SubPages[idx]
	if sp.Phase != models.PhaseMeasuring {
		sp.Iteration++
		sp.Phase = models.PhaseMeasuring
		if end := len(chain.Content); sp.ContentEndIndex != end {
			sp.ContentEndIndex = end
			effects.Updated = append(effects.Updated, *sp)
		}
	}

	return e.request(chain, idx), effects, nil
}

func (e *Engine) request(chain *Chain, idx int) models.RenderRequest {
	sp := chain.SubPages[idx]
	start := chain.Start(idx)
	end := max(start, min(sp.ContentEndIndex, len(chain.Content)))

	return models.RenderRequest{
		PageID:    chain.PageID,
		SubPageID: sp.ID,
		Start:     start,
		End:       end,
		Iteration: sp.Iteration,
		Text:      chain.Content[start:end],
	}
}

// Report applies the overflow offset measured for the active sub-page.
//
// The sub-page ends at start+offset, clamped to the content. Then exactly
// one of the following happens: the next sub-page is reset so the chain is
// measured forward, a new sub-page is appended for the text that did not
// fit, or, for a later sub-page without images and nothing left to show,
// the sub-page is removed. The sub-page then settles.
func (e *Engine) Report(chain *Chain, report models.LayoutReport) (Effects, error) {
	if report.Offset < 0 {
		return Effects{}, ErrNegativeOffset
	}

	idx := e.Active(chain)
	if idx < 0 {
		return Effects{}, ErrChainSettled
	}

	sp := &chain.SubPages[idx]
	if sp.ID != report.SubPageID || sp.Phase != models.PhaseMeasuring || sp.Iteration != report.Iteration {
		return Effects{}, fmt.Errorf("%w: sub-page %q iteration %d, active %q iteration %d (%s)",
			ErrStaleMeasurement, report.SubPageID, report.Iteration, sp.ID, sp.Iteration, sp.Phase)
	}

	sp.Phase = models.PhaseApplying
	return e.apply(chain, idx, report.Offset), nil
}

func (e *Engine) apply(chain *Chain, idx, offset int) Effects {
	var effects Effects
	content := chain.Content
	start := chain.Start(idx)
	sp := &chain.SubPages[idx]

	if offset <= 1 && idx > 0 && !sp.HasImages() && strings.TrimSpace(content[start:]) == "" {
		effects.Deleted = append(effects.Deleted, sp.ID)
		chain.SubPages = slices.Delete(chain.SubPages, idx, idx+1)
		if idx < len(chain.SubPages) {
			chain.SubPages[idx].Phase = models.PhaseResetting
		}
		return effects
	}

	end := boundary(content, start, offset)
	// blank text after the fitted part does not get a sub-page of its own
	if strings.TrimSpace(content[end:]) == "" {
		end = len(content)
	}
	if sp.ContentEndIndex != end {
		sp.ContentEndIndex = end
		effects.Updated = append(effects.Updated, *sp)
	}
	sp.Phase = models.PhaseSettled

	switch {
	case idx+1 < len(chain.SubPages):
		chain.SubPages[idx+1].Phase = models.PhaseResetting
	case end < len(content):
		created := models.DiarySubPage{PageID: chain.PageID, Phase: models.PhaseResetting}
		chain.SubPages = append(chain.SubPages, created)
		effects.Created = append(effects.Created, created)
	}

	return effects
}

// boundary returns min(start+offset, len(content)) moved back to a rune
// boundary. While text remains it advances at least one rune so a chain
// can always make progress.
func boundary(content string, start, offset int) int {
	end := min(start+offset, len(content))
	for end > start && end < len(content) && !utf8.RuneStart(content[end]) {
		end--
	}
	if end == start && start < len(content) {
		_, size := utf8.DecodeRuneInString(content[start:])
		end = start + size
	}
	return end
}

// Reset puts the sub-page at index back to resetting. A content edit
// resets the first sub-page; the rest follows through forward resets.
func (e *Engine) Reset(chain *Chain, index int) error {
	if index < 0 || index >= len(chain.SubPages) {
		return fmt.Errorf("%w: %d of %d", ErrSubPageOutOfRange, index, len(chain.SubPages))
	}
	chain.SubPages[index].Phase = models.PhaseResetting
	return nil
}

// ResetAll resets every sub-page, for example after the viewport changed.
func (e *Engine) ResetAll(chain *Chain) {
	for i := range chain.SubPages {
		chain.SubPages[i].Phase = models.PhaseResetting
	}
}

// Run drives prepare, measure and report until the chain settles and
// returns the number of passes it took. Effects are not collected: the
// chain itself is the result.
func (e *Engine) Run(chain *Chain, measurer Measurer, maxPasses int) (int, error) {
	for pass := 0; pass < maxPasses; pass++ {
		req, _, err := e.Prepare(chain)
		if err != nil {
			return pass, err
		}
		if req.Settled {
			return pass, nil
		}

		report := models.LayoutReport{
			SubPageID: req.SubPageID,
			Iteration: req.Iteration,
			Offset:    measurer.Measure(req.Text),
		}
		if _, err = e.Report(chain, report); err != nil {
			return pass, err
		}
	}

	if chain.Settled() {
		return maxPasses, nil
	}
	return maxPasses, fmt.Errorf("%w after %d passes", ErrNotConverged, maxPasses)
}
