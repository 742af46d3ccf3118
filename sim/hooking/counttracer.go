package hooking

import (
	"sort"
	"sync"
)

// Tagged is implemented by hook items that carry extra tags worth counting,
// for example "tlb-hit" or "eviction".
type Tagged interface {
	Tags() []string
}

// CountTracer counts how many times each tag is reported. The name of the
// hook position is always counted; the tags of Tagged items are counted too.
type CountTracer struct {
	lock     sync.Mutex
	tagNames []string
	tagCount map[string]uint64
}

// NewCountTracer creates a new CountTracer.
func NewCountTracer() *CountTracer {
	return &CountTracer{
		tagCount: make(map[string]uint64),
	}
}

// Func counts the position and the tags of the item.
func (t *CountTracer) Func(ctx HookCtx) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if ctx.Pos != nil {
		t.countTag(ctx.Pos.Name)
	}

	if tagged, ok := ctx.Item.(Tagged); ok {
		for _, tag := range tagged.Tags() {
			t.countTag(tag)
		}
	}
}

func (t *CountTracer) countTag(tag string) {
	_, ok := t.tagCount[tag]
	if !ok {
		t.tagNames = append(t.tagNames, tag)
	}

	t.tagCount[tag]++
}

// GetTagNames returns all the tag names collected, in the order they were
// first seen.
func (t *CountTracer) GetTagNames() []string {
	t.lock.Lock()
	defer t.lock.Unlock()

	names := make([]string, len(t.tagNames))
	copy(names, t.tagNames)

	return names
}

// GetTagCount returns the number of times a tag has been reported.
func (t *CountTracer) GetTagCount(tag string) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.tagCount[tag]
}

// Counts returns a copy of all the counters.
func (t *CountTracer) Counts() map[string]uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	counts := make(map[string]uint64, len(t.tagCount))
	for k, v := range t.tagCount {
		counts[k] = v
	}

	return counts
}

// SortedTagNames returns the tag names in alphabetical order.
func (t *CountTracer) SortedTagNames() []string {
	names := t.GetTagNames()
	sort.Strings(names)

	return names
}
