// statistics.go provides allocation counters of an Arena.

package nativemem

import (
	"go.uber.org/atomic"
)

type StatisticsItem struct {
	Count uint64 `json:",omitempty"`
	Bytes uint64 `json:",omitempty"`
}

type Statistics struct {
	Allocated StatisticsItem
	Freed     StatisticsItem
	Failed    StatisticsItem
}

// InUse is what was allocated and not freed, yet.
func (s Statistics) InUse() StatisticsItem {
	return StatisticsItem{
		Count: s.Allocated.Count - s.Freed.Count,
		Bytes: s.Allocated.Bytes - s.Freed.Bytes,
	}
}

type CountersItem struct {
	Count atomic.Uint64
	Bytes atomic.Uint64
}

func (c *CountersItem) Increment(size uintptr) {
	c.Count.Inc()
	c.Bytes.Add(uint64(size))
}

func (c *CountersItem) ToStats() StatisticsItem {
	return StatisticsItem{
		Count: c.Count.Load(),
		Bytes: c.Bytes.Load(),
	}
}

type Counters struct {
	Allocated CountersItem
	Freed     CountersItem
	Failed    CountersItem
}

func (c *Counters) ToStats() Statistics {
	return Statistics{
		Allocated: c.Allocated.ToStats(),
		Freed:     c.Freed.ToStats(),
		Failed:    c.Failed.ToStats(),
	}
}
