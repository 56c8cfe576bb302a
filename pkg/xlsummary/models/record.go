package models

// SheetRecord is one Summary row: a sheet name and its unit cost.
type SheetRecord struct {
	// Name is the worksheet name and the record identity.
	Name string
	// UnitCost is the extracted value, possibly Unknown.
	UnitCost Value
}

// Snapshot is an ordered list of sheet records.
type Snapshot []SheetRecord

// Names returns the record names in order.
func (s Snapshot) Names() []string {
	names := make([]string, 0, len(s))
	for _, rec := range s {
		names = append(names, rec.Name)
	}
	return names
}

// Equal reports whether both snapshots hold the same records in the same order.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i].Name != other[i].Name || !s[i].UnitCost.Equal(other[i].UnitCost) {
			return false
		}
	}
	return true
}

// Update describes a sheet whose unit cost changed between runs.
type Update struct {
	Name string
	Old  Value
	New  Value
}

// ChangeSet classifies every name seen in either snapshot.
type ChangeSet struct {
	// Updated holds names present in both snapshots with a different value.
	Updated []Update
	// Added holds names only present in the current snapshot.
	Added []SheetRecord
	// Removed holds names only present in the previous snapshot, with the last known value.
	Removed []SheetRecord
}

// Empty reports whether nothing changed.
func (c ChangeSet) Empty() bool {
	return len(c.Updated) == 0 && len(c.Added) == 0 && len(c.Removed) == 0
}
