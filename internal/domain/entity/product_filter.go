package entity

// ProductFilter is the normalized query description consumed by the
// repository layer. SortBy holds a whitelisted column name, never raw
// caller input. Listings always exclude soft-deleted rows; the filter
// carries no deletion-state knob on purpose.
type ProductFilter struct {
	OrderID   *int   // exact match when set
	Title     string // case-insensitive substring match when non-empty
	SortBy    string // column name
	SortOrder string // "asc" or "desc"
	Limit     int
	Offset    int
}
