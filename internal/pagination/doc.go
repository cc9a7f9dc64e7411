// Package pagination splits the text of a diary page into a chain of
// sub-pages, each holding as much text as fits on one screen.
//
// The split is driven by feedback from whoever renders the text. Every
// sub-page cycles through four phases:
//
//   - [models.PhaseResetting]: the sub-page is asked to render all the text
//     that remains on the page.
//   - [models.PhaseMeasuring]: a render request is outstanding and the
//     engine waits for the renderer to report where the text overflowed.
//   - [models.PhaseApplying]: the reported offset becomes the sub-page's
//     boundary. The next sub-page is reset, appended or the sub-page itself
//     is dropped.
//   - [models.PhaseSettled]: nothing happens until the sub-page is reset.
//
// Only the first sub-page that is not settled may progress, so the chain
// stabilizes from left to right. Offsets are byte offsets into the page
// content and always fall on rune boundaries.
package pagination
