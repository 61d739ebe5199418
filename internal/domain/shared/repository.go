package shared

// Filter represents query filter options
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]interface{}
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}
}

// Page represents one page of results along with a flag indicating whether
// more rows exist past it. The feed uses this instead of a total count so a
// single limit+1 query answers both questions.
type Page[T any] struct {
	Items   []T
	HasMore bool
}
