package stats

// Entry pairs a header name with the statistics of its column.
//
// Data is nil for a column that did not qualify as numeric. Such entries are
// never written to the output document.
type Entry struct {
	Name string
	Data *Summary
}

// NewEntry creates an entry for a numeric column.
func NewEntry(name string, data *Summary) Entry {
	return Entry{Name: name, Data: data}
}

// HasData reports whether the entry carries statistics.
func (e Entry) HasData() bool {
	return e.Data != nil
}
