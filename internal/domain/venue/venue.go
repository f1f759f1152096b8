package venue

// Section is a physical zone of the venue. Name is its identity.
type Section struct {
	ID          int64
	Name        string
	Description string
}

// Table is a seating unit. (SectionID, Number) is its identity; numbering
// restarts at 1 in every section.
type Table struct {
	ID        int64
	SectionID int64
	Number    int
	Capacity  int
}
