package hooking

import (
	"sync"

	"github.com/sarchlab/vmsim/datarecording"
	"github.com/tebeka/atexit"
)

// Recordable is implemented by hook items that can be stored as a row. The
// entry must be a flat struct, as required by the DataRecorder.
type Recordable interface {
	Record() (table string, entry any)
}

// DBTracer stores the Recordable items it sees into a DataRecorder. A table
// is created the first time an item names it.
type DBTracer struct {
	lock     sync.Mutex
	recorder datarecording.DataRecorder
	tables   map[string]bool
}

// NewDBTracer creates a new DBTracer. The recorder is flushed when the
// program exits through atexit.
func NewDBTracer(recorder datarecording.DataRecorder) *DBTracer {
	t := &DBTracer{
		recorder: recorder,
		tables:   make(map[string]bool),
	}

	atexit.Register(func() { t.Terminate() })

	return t
}

// Func records the item if it is Recordable.
func (t *DBTracer) Func(ctx HookCtx) {
	item, ok := ctx.Item.(Recordable)
	if !ok {
		return
	}

	table, entry := item.Record()

	t.lock.Lock()
	defer t.lock.Unlock()

	if !t.tables[table] {
		t.recorder.CreateTable(table, entry)
		t.tables[table] = true
	}

	t.recorder.InsertData(table, entry)
}

// Terminate flushes the buffered rows.
func (t *DBTracer) Terminate() {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.recorder.Flush()
}
