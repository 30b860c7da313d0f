package domain

// FilterAll is the pass-through value for category/status filters.
const FilterAll = "all"

// SortField selects the ordering key of a transaction listing.
type SortField string

const (
	SortByDate   SortField = "date"
	SortByAmount SortField = "amount"
)

// SortDirection selects ascending or descending order.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// TransactionFilter narrows a transaction listing. Empty values (or
// FilterAll for category/status) are pass-through.
type TransactionFilter struct {
	Search   string // case-insensitive substring match on description
	Category string // exact category match
	Status   string // exact status match
}

// TransactionSort orders a transaction listing. Ties are always broken by
// transaction ID ascending so the order is deterministic.
type TransactionSort struct {
	Field     SortField
	Direction SortDirection
}
