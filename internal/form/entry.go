package form

// EntryID identifies an entry for the lifetime of a Form. IDs are never reused.
type EntryID uint64

// Entry is one input row. Value is the raw text as typed; "" means no input yet.
type Entry struct {
	ID    EntryID
	Value string
}

// IDSource hands out entry identifiers.
type IDSource interface {
	Next() EntryID
}

// Counter is a monotonic IDSource starting at 1. The zero value is ready to use.
type Counter struct {
	last uint64
}

func (c *Counter) Next() EntryID {
	c.last++
	return EntryID(c.last)
}
