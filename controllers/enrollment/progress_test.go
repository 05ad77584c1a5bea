package enrollmentController

import (
	"fjao/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnrollment(chapterCount int) *models.Enrollment {
	chapters := make([]models.EnrollmentChapter, chapterCount)
	for i := range chapters {
		chapters[i] = models.EnrollmentChapter{Title: "Chapter"}
	}
	return &models.Enrollment{
		ID:            models.NewObjectID(),
		Chapters:      chapters,
		TotalChapters: chapterCount,
	}
}

func TestCompleteChapter_WalksToCompletion(t *testing.T) {
	e := newEnrollment(3)
	now := time.Now()

	require.NoError(t, CompleteChapter(e, now))
	assert.Equal(t, 1, e.CurrentChapterIndex)
	assert.Equal(t, 1, e.CompletedChapters)
	assert.True(t, e.Chapters[0].Completed)
	assert.Nil(t, e.CompletedAt)

	require.NoError(t, CompleteChapter(e, now))
	assert.Equal(t, 2, e.CurrentChapterIndex)
	assert.Equal(t, 2, e.CompletedChapters)
	assert.Nil(t, e.CompletedAt)

	require.NoError(t, CompleteChapter(e, now))
	assert.Equal(t, 3, e.CurrentChapterIndex)
	assert.Equal(t, 3, e.CompletedChapters)
	require.NotNil(t, e.CompletedAt)
	assert.Equal(t, now, *e.CompletedAt)
}

func TestCompleteChapter_FailsWhenAllDone(t *testing.T) {
	e := newEnrollment(3)
	now := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, CompleteChapter(e, now))
	}

	err := CompleteChapter(e, now.Add(time.Hour))
	assert.ErrorIs(t, err, ErrAlreadyComplete)

	// record unchanged by the failed call
	assert.Equal(t, 3, e.CurrentChapterIndex)
	assert.Equal(t, 3, e.CompletedChapters)
	assert.Equal(t, now, *e.CompletedAt)
}

func TestCompleteChapter_ZeroChapters(t *testing.T) {
	e := newEnrollment(0)

	err := CompleteChapter(e, time.Now())
	assert.ErrorIs(t, err, ErrAlreadyComplete)
}

func TestCompleteChapter_RecountsAfterRewind(t *testing.T) {
	e := newEnrollment(3)
	now := time.Now()

	require.NoError(t, CompleteChapter(e, now)) // chapter 0 done, cursor 1
	require.NoError(t, SetChapter(e, 0))        // rewind
	require.NoError(t, CompleteChapter(e, now)) // chapter 0 again

	// completion is counted, not incremented, so redoing a chapter
	// does not inflate the counter
	assert.Equal(t, 1, e.CompletedChapters)
	assert.Equal(t, 1, e.CurrentChapterIndex)
	assert.True(t, e.Chapters[0].Completed)
	assert.False(t, e.Chapters[1].Completed)
}

func TestCompleteChapter_CompletedAtIsStable(t *testing.T) {
	e := newEnrollment(2)
	first := time.Now()

	require.NoError(t, CompleteChapter(e, first))
	require.NoError(t, CompleteChapter(e, first))
	require.NotNil(t, e.CompletedAt)
	stamp := *e.CompletedAt

	// rewind and complete the last chapter again; the original stamp
	// must survive
	require.NoError(t, SetChapter(e, 1))
	require.NoError(t, CompleteChapter(e, first.Add(time.Hour)))
	assert.Equal(t, stamp, *e.CompletedAt)
}

func TestSetChapter_Bounds(t *testing.T) {
	e := newEnrollment(3)

	assert.ErrorIs(t, SetChapter(e, -1), ErrInvalidIndex)
	assert.Equal(t, 0, e.CurrentChapterIndex)

	// index == totalChapters is rejected even though completeChapter
	// parks the cursor there
	assert.ErrorIs(t, SetChapter(e, 3), ErrInvalidIndex)
	assert.Equal(t, 0, e.CurrentChapterIndex)

	assert.ErrorIs(t, SetChapter(e, 7), ErrInvalidIndex)
	assert.Equal(t, 0, e.CurrentChapterIndex)
}

func TestSetChapter_MovesCursorOnly(t *testing.T) {
	e := newEnrollment(3)

	require.NoError(t, SetChapter(e, 2))
	assert.Equal(t, 2, e.CurrentChapterIndex)
	assert.Equal(t, 0, e.CompletedChapters)
	for _, ch := range e.Chapters {
		assert.False(t, ch.Completed)
	}
}

func TestProgress_InvariantsHoldUnderMixedSequence(t *testing.T) {
	e := newEnrollment(4)
	now := time.Now()

	steps := []func() error{
		func() error { return CompleteChapter(e, now) },
		func() error { return SetChapter(e, 3) },
		func() error { return CompleteChapter(e, now) },
		func() error { return SetChapter(e, 1) },
		func() error { return CompleteChapter(e, now) },
		func() error { return CompleteChapter(e, now) },
	}

	for _, step := range steps {
		_ = step()

		assert.GreaterOrEqual(t, e.CurrentChapterIndex, 0)
		assert.LessOrEqual(t, e.CurrentChapterIndex, e.TotalChapters)

		completed := 0
		for _, ch := range e.Chapters {
			if ch.Completed {
				completed++
			}
		}
		assert.Equal(t, completed, e.CompletedChapters)
		assert.LessOrEqual(t, e.CompletedChapters, e.TotalChapters)
	}
}
