package store

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-time-diary/models"
)

func TestEncode_DropsID(t *testing.T) {
	diary := models.Diary{ID: "d1", UserID: "u1", Title: "Travel", PageIDs: []string{"p1"}}

	doc, err := encode(CollectionDiaries, diary)
	require.NoError(t, err)

	assert.NotContains(t, doc, "id")
	assert.Equal(t, "u1", doc["userId"])
	assert.Equal(t, "Travel", doc["title"])
	assert.Equal(t, []any{"p1"}, doc["pageIds"])
}

func TestEncode_DropsSubPageWorkingFields(t *testing.T) {
	subPage := models.DiarySubPage{ID: "s1", PageID: "p1", ContentEndIndex: 200, Iteration: 3, Phase: models.PhaseApplying}

	doc, err := encode(CollectionSubPages, subPage)
	require.NoError(t, err)

	assert.NotContains(t, doc, "phase")
	assert.NotContains(t, doc, "iteration")
	assert.EqualValues(t, 200, doc["contentEndIndex"])
}

func TestEncode_ImageBitmapIsNeverStored(t *testing.T) {
	img := models.DiaryImage{SubPageID: "s1", Scale: 1, Bitmap: image.NewRGBA(image.Rect(0, 0, 2, 2))}

	doc, err := encode(CollectionDiaryImages, img)
	require.NoError(t, err)

	assert.NotContains(t, doc, "bitmap")
	assert.NotContains(t, doc, "Bitmap")
}

func TestDecode_ThreadsIDBack(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	page := models.DiaryPage{DiaryID: "d1", PageNumber: 2, Content: "hello", SubPageIDs: []string{"s1", "s2"}, CreatedAt: created}

	doc, err := encode(CollectionPages, page)
	require.NoError(t, err)

	var got models.DiaryPage
	require.NoError(t, decode("p9", doc, &got))

	page.ID = "p9"
	assert.Equal(t, page, got)
}

func TestDecode_SubPageComesBackResetting(t *testing.T) {
	doc := Document{"pageId": "p1", "contentEndIndex": 400.0}

	var got models.DiarySubPage
	require.NoError(t, decode("s1", doc, &got))

	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, 400, got.ContentEndIndex)
	assert.Equal(t, models.PhaseResetting, got.Phase)
	assert.Zero(t, got.Iteration)
}

func TestDecode_MismatchedDocument(t *testing.T) {
	doc := Document{"pageNumber": "not a number"}

	var got models.DiaryPage
	err := decode("p1", doc, &got)

	assert.ErrorIs(t, err, ErrDecodingDocument)
}
