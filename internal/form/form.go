// Package form holds the state of a sum form: an ordered list of text entries
// and an optional total that is only present after Calculate and is cleared by
// any edit to the list.
//
// A Form is owned by a single caller (the UI event loop) and is not safe for
// concurrent use.
package form

import (
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const initialEntries = 2

// Form is one independent sum form instance.
type Form struct {
	instanceID string
	entries    []Entry
	sum        *float64
	ids        IDSource
	mode       ParseMode
	log        *zap.Logger
}

// Option configures a Form at construction.
type Option func(*Form)

// WithParseMode sets how entry text is parsed by Calculate.
func WithParseMode(mode ParseMode) Option {
	return func(f *Form) { f.mode = mode }
}

// WithIDSource replaces the default Counter.
func WithIDSource(src IDSource) Option {
	return func(f *Form) {
		if src != nil {
			f.ids = src
		}
	}
}

// WithLogger attaches a logger; operations are logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.log = l
		}
	}
}

// New returns a form with two empty entries and no sum.
func New(opts ...Option) *Form {
	f := &Form{
		instanceID: uuid.NewString(),
		ids:        &Counter{},
		mode:       Lenient,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.log = f.log.With(zap.String("form", f.instanceID))

	f.entries = make([]Entry, 0, initialEntries)
	for range initialEntries {
		f.entries = append(f.entries, Entry{ID: f.nextID()})
	}
	f.log.Debug("form initialized", zap.Stringer("parse_mode", f.mode))
	return f
}

// nextID skips any ID already live so a misbehaving IDSource cannot produce
// duplicates within the list.
func (f *Form) nextID() EntryID {
	for {
		id := f.ids.Next()
		if f.Index(id) < 0 {
			return id
		}
	}
}

func (f *Form) InstanceID() string { return f.instanceID }

func (f *Form) ParseMode() ParseMode { return f.mode }

// Entries returns a copy of the entries in display order.
func (f *Form) Entries() []Entry {
	return slices.Clone(f.entries)
}

func (f *Form) Len() int { return len(f.entries) }

// CanRemove reports whether a row may be removed. The last row never can.
func (f *Form) CanRemove() bool { return len(f.entries) > 1 }

// Index returns the position of id, or -1.
func (f *Form) Index(id EntryID) int {
	return slices.IndexFunc(f.entries, func(e Entry) bool { return e.ID == id })
}

// Value returns the text of id and whether it exists.
func (f *Form) Value(id EntryID) (string, bool) {
	i := f.Index(id)
	if i < 0 {
		return "", false
	}
	return f.entries[i].Value, true
}

// Sum returns the last calculated total and whether one is present.
func (f *Form) Sum() (float64, bool) {
	if f.sum == nil {
		return 0, false
	}
	return *f.sum, true
}

// Add appends an empty entry and clears the sum.
func (f *Form) Add() Entry {
	e := Entry{ID: f.nextID()}
	f.entries = append(f.entries, e)
	f.invalidate()
	f.log.Debug("entry added", zap.Uint64("id", uint64(e.ID)), zap.Int("len", len(f.entries)))
	return e
}

// Remove deletes the entry with id, keeping the order of the rest, and clears
// the sum. It reports false and changes nothing when id is unknown or when it
// is the only entry left.
func (f *Form) Remove(id EntryID) bool {
	i := f.Index(id)
	if i < 0 {
		return false
	}
	if !f.CanRemove() {
		f.log.Debug("refusing to remove last entry", zap.Uint64("id", uint64(id)))
		return false
	}
	f.entries = slices.Delete(f.entries, i, i+1)
	f.invalidate()
	f.log.Debug("entry removed", zap.Uint64("id", uint64(id)), zap.Int("len", len(f.entries)))
	return true
}

// UpdateValue replaces the text of id and clears the sum. Unknown ids are
// ignored.
func (f *Form) UpdateValue(id EntryID, text string) bool {
	i := f.Index(id)
	if i < 0 {
		return false
	}
	f.entries[i].Value = text
	f.invalidate()
	return true
}

// Calculate totals every entry, counting unparseable text as 0, and stores the
// result as the current sum.
func (f *Form) Calculate() float64 {
	var total float64
	for _, e := range f.entries {
		total += ParseValue(e.Value, f.mode)
	}
	f.sum = &total
	f.log.Debug("sum calculated", zap.Float64("sum", total), zap.Int("entries", len(f.entries)))
	return total
}

func (f *Form) invalidate() {
	f.sum = nil
}

// FromValues builds a form whose entries hold values in order. The two initial
// entries are reused and further rows are added as needed.
func FromValues(values []string, opts ...Option) *Form {
	f := New(opts...)
	for i, v := range values {
		if i >= f.Len() {
			f.Add()
		}
		f.entries[i].Value = v
	}
	return f
}
