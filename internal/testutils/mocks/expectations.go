// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"fmt"
	"time"

	"go.uber.org/mock/gomock"

	mockclock "github.com/KirkDiggler/tabletop-inventory/internal/pkg/clock/mock"
	idgenmock "github.com/KirkDiggler/tabletop-inventory/internal/pkg/idgen/mock"
)

// ExpectNow makes the clock return now for any number of calls
func ExpectNow(mockClock *mockclock.MockClock, now time.Time) *gomock.Call {
	return mockClock.EXPECT().
		Now().
		Return(now).
		AnyTimes()
}

// ExpectTicks makes the clock advance by step on every call, starting at start
func ExpectTicks(mockClock *mockclock.MockClock, start time.Time, step time.Duration) *gomock.Call {
	next := start
	return mockClock.EXPECT().
		Now().
		DoAndReturn(func() time.Time {
			now := next
			next = next.Add(step)
			return now
		}).
		AnyTimes()
}

// ExpectIDs makes the generator return ids in order, once each
func ExpectIDs(mockGen *idgenmock.MockGenerator, ids ...string) {
	calls := make([]any, 0, len(ids))
	for _, id := range ids {
		calls = append(calls, mockGen.EXPECT().Generate().Return(id))
	}
	gomock.InOrder(calls...)
}

// ExpectSequentialIDs makes the generator return prefix-1, prefix-2, ... for any number of calls
func ExpectSequentialIDs(mockGen *idgenmock.MockGenerator, prefix string) *gomock.Call {
	n := 0
	return mockGen.EXPECT().
		Generate().
		DoAndReturn(func() string {
			n++
			return fmt.Sprintf("%s-%d", prefix, n)
		}).
		AnyTimes()
}
