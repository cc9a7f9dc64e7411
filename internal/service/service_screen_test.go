package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/pagination"
	"github.com/MKhiriev/go-time-diary/internal/viewstate"
	"github.com/MKhiriev/go-time-diary/models"
)

func newTestScreenService(f *diaryFixture) *screenService {
	svc := NewScreenService(
		f.storages.UserStorage,
		f.storages.DiaryStorage,
		f.storages.TimeCapsuleStorage,
		f.diaries,
		f.sessions,
		logger.Nop(),
	).(*screenService)
	svc.now = fixedClock(testNow)
	return svc
}

// ─────────────────────────────────────────────
// Home
// ─────────────────────────────────────────────

func TestScreenService_Home_Carousel(t *testing.T) {
	ctx := context.Background()
	f := newDiaryFixture(t)
	svc := newTestScreenService(f)

	first, _ := f.createDiary(t)
	second, _ := f.createDiary(t)
	cover, err := f.diaries.SetCover(ctx, f.user.ID, second.ID, imageUpload("cover"))
	require.NoError(t, err)

	state := svc.Home(ctx, f.user.ID, 3)

	require.Equal(t, viewstate.StatusSuccess, state.Status())
	home, ok := state.Data()
	require.True(t, ok)
	assert.Equal(t, []string{first.ID, second.ID}, home.Order)
	assert.Equal(t, 1, home.CurrentIndex())

	current, ok := home.Current()
	require.True(t, ok)
	assert.Equal(t, second.ID, current.ID)
	gotCover, ok := home.CoverOf(second.ID)
	require.True(t, ok)
	assert.Equal(t, cover.ID, gotCover.ID)
}

func TestScreenService_Home_UnknownUser(t *testing.T) {
	f := newDiaryFixture(t)
	svc := newTestScreenService(f)

	state := svc.Home(context.Background(), "ghost", 0)

	assert.Equal(t, viewstate.StatusError, state.Status())
	assert.Contains(t, state.Err(), "not found")
}

// ─────────────────────────────────────────────
// Diary
// ─────────────────────────────────────────────

func TestScreenService_Diary_RunsDayCheck(t *testing.T) {
	f := newDiaryFixture(t)
	svc := newTestScreenService(f)
	diary, page := f.createDiary(t)
	f.writePage(t, page.ID, "yesterday's entry")
	f.diaries.now = fixedClock(testNow.Add(24 * time.Hour))

	state := svc.Diary(context.Background(), f.user.ID, diary.ID, 0)

	data, ok := state.Data()
	require.True(t, ok)
	pages := data.OrderedPages()
	require.Len(t, pages, 2)
	assert.Equal(t, "yesterday's entry", pages[0].Content)
	assert.True(t, pages[1].IsEmpty())
	assert.Len(t, data.Spreads(), 2)
}

func TestScreenService_Diary_KeepsLayoutPhases(t *testing.T) {
	ctx := context.Background()
	f := newDiaryFixture(t)
	svc := newTestScreenService(f)
	diary, page := f.createDiary(t)
	f.writePage(t, page.ID, strings.Repeat("y", 500))
	layoutUntilSettled(t, f.pagination, f.user.ID, page.ID, pagination.FixedMeasurer{Runes: 200})

	state := svc.Diary(ctx, f.user.ID, diary.ID, 2)

	data, ok := state.Data()
	require.True(t, ok)
	assert.Equal(t, 2, data.PagerIndex)
	spreads := data.Spreads()
	require.Len(t, spreads, 3)
	assert.Len(t, spreads[2].Text, 100)

	req, err := f.pagination.NextRender(ctx, f.user.ID, page.ID)
	require.NoError(t, err)
	assert.True(t, req.Settled)
}

func TestScreenService_Diary_ForeignDiary(t *testing.T) {
	f := newDiaryFixture(t)
	svc := newTestScreenService(f)
	diary, _ := f.createDiary(t)
	stranger := newTestUser(t, f.storages.UserStorage, "stranger@example.com", "stranger")

	state := svc.Diary(context.Background(), stranger.ID, diary.ID, 0)

	assert.Equal(t, viewstate.StatusError, state.Status())
	assert.Contains(t, state.Err(), ErrForbidden.Error())
}

// ─────────────────────────────────────────────
// Capsules
// ─────────────────────────────────────────────

func TestScreenService_Capsules_Tabs(t *testing.T) {
	ctx := context.Background()
	f := newDiaryFixture(t)
	svc := newTestScreenService(f)
	friend := newTestUser(t, f.storages.UserStorage, "friend@example.com", "friend")

	capsules := NewTimeCapsuleService(f.storages.TimeCapsuleStorage, f.storages.UserStorage, logger.Nop()).(*timeCapsuleService)
	capsules.now = fixedClock(testNow.Add(-72 * time.Hour))
	opened, err := capsules.Create(ctx, f.user.ID, models.CapsuleRequest{
		Title: "opened", Content: "c", Deadline: testNow.Add(-time.Hour), ReceiverIDs: []string{friend.ID},
	})
	require.NoError(t, err)
	sealed, err := capsules.Create(ctx, f.user.ID, models.CapsuleRequest{
		Title: "sealed", Content: "c", Deadline: testNow.Add(time.Hour), ReceiverIDs: []string{friend.ID},
	})
	require.NoError(t, err)

	mine, ok := svc.Capsules(ctx, f.user.ID, models.CapsuleTabScheduled).Data()
	require.True(t, ok)
	require.Len(t, mine.Visible(), 1)
	assert.Equal(t, sealed.ID, mine.Visible()[0].ID)
	require.Len(t, mine.Sent(), 1)
	assert.Equal(t, opened.ID, mine.Sent()[0].ID)
	assert.Contains(t, mine.Users, friend.ID)

	theirs, ok := svc.Capsules(ctx, friend.ID, models.CapsuleTabReceived).Data()
	require.True(t, ok)
	require.Len(t, theirs.Visible(), 1)
	assert.Equal(t, opened.ID, theirs.Visible()[0].ID)
	assert.Empty(t, theirs.Scheduled())
}
