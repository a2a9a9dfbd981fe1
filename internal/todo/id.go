package todo

import (
	"math"
	"time"

	"github.com/oklog/ulid/v2"
)

var timeNow = func() time.Time { return time.Now().UTC() }

// NewID returns an id for a task created now: the creation time in Unix
// milliseconds. When the clock has not moved past the newest id already in
// l, the id is bumped so ids stay unique and increasing in creation order.
// If the newest id is already math.MaxInt64 there is nothing above it, and
// the smallest unused positive id is returned instead.
func (l List) NewID() int64 {
	id := int64(ulid.Timestamp(timeNow()))
	newest := l.maxID()
	if id > newest {
		return id
	}
	if newest == math.MaxInt64 {
		return l.firstFreeID()
	}
	return newest + 1
}

func (l List) maxID() int64 {
	var newest int64
	for _, t := range l {
		if t.ID > newest {
			newest = t.ID
		}
	}
	return newest
}

func (l List) firstFreeID() int64 {
	used := make(map[int64]struct{}, len(l))
	for _, t := range l {
		used[t.ID] = struct{}{}
	}
	id := int64(1)
	for {
		if _, ok := used[id]; !ok {
			return id
		}
		id++
	}
}
