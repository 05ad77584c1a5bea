package enrollmentController

import (
	"errors"
	"fjao/models"
	"time"
)

var (
	// ErrAlreadyComplete is returned when completeChapter is called
	// with no chapters left to advance.
	ErrAlreadyComplete = errors.New("all chapters already completed")

	// ErrInvalidIndex is returned when setChapter gets an index
	// outside [0, totalChapters).
	ErrInvalidIndex = errors.New("invalid chapter index")
)

// totalChapters falls back to the chapter slice length for records
// created before the counter existed.
func totalChapters(e *models.Enrollment) int {
	if e.TotalChapters > 0 {
		return e.TotalChapters
	}
	return len(e.Chapters)
}

// CompleteChapter marks the current chapter completed and advances the
// cursor. completedChapters is recomputed by counting rather than
// incremented, so chapters completed out of order after a setChapter
// rewind stay counted once. The cursor is capped at totalChapters;
// completedAt is stamped the first time the count reaches the total
// and never moved afterwards. The record is untouched on failure.
func CompleteChapter(e *models.Enrollment, now time.Time) error {
	total := totalChapters(e)
	curr := e.CurrentChapterIndex
	if curr >= total {
		return ErrAlreadyComplete
	}

	if curr < len(e.Chapters) {
		e.Chapters[curr].Completed = true
	}

	completed := 0
	for _, ch := range e.Chapters {
		if ch.Completed {
			completed++
		}
	}
	e.CompletedChapters = completed

	if curr+1 < total {
		e.CurrentChapterIndex = curr + 1
	} else {
		e.CurrentChapterIndex = total
	}

	if e.CompletedChapters >= total && e.CompletedAt == nil {
		stamp := now
		e.CompletedAt = &stamp
	}

	return nil
}

// SetChapter moves the cursor to an explicit 0-based index. An index
// equal to totalChapters is rejected even though CompleteChapter can
// park the cursor there; that boundary comes from the original API and
// is kept for compatibility. Completion flags and counters are not
// touched.
func SetChapter(e *models.Enrollment, index int) error {
	total := totalChapters(e)
	if index < 0 || index >= total {
		return ErrInvalidIndex
	}
	e.CurrentChapterIndex = index
	return nil
}
