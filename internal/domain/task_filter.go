package domain

// SortField is a task column the list can be ordered by.
type SortField string

// Sortable task columns
const (
	SortByDueDate   SortField = "due_date"
	SortByCreatedAt SortField = "created_at"
)

// Valid reports whether f names a sortable column.
func (f SortField) Valid() bool {
	return f == SortByDueDate || f == SortByCreatedAt
}

// SortOrder is the direction of a sort.
type SortOrder string

// Sort directions
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Valid reports whether o is asc or desc.
func (o SortOrder) Valid() bool {
	return o == SortAsc || o == SortDesc
}

// DueDateMode identifies which due-date predicate a filter applies.
type DueDateMode int

// Due-date modes in precedence order.
const (
	DueDateAny DueDateMode = iota
	DueDateExact
	DueDateBetween
	DueDateOnOrAfter
	DueDateOnOrBefore
)

// TaskFilter selects and orders tasks. Nil fields do not constrain the
// result. An empty SortBy keeps the store's default order.
type TaskFilter struct {
	Status      *TaskStatus
	DueDate     *Date
	DueDateFrom *Date
	DueDateTo   *Date
	SortBy      SortField
	SortOrder   SortOrder
}

// DueDateMode returns the single due-date predicate to apply. An exact date
// wins over a range, a range over a lone bound.
func (f TaskFilter) DueDateMode() DueDateMode {
	switch {
	case f.DueDate != nil:
		return DueDateExact
	case f.DueDateFrom != nil && f.DueDateTo != nil:
		return DueDateBetween
	case f.DueDateFrom != nil:
		return DueDateOnOrAfter
	case f.DueDateTo != nil:
		return DueDateOnOrBefore
	default:
		return DueDateAny
	}
}

// Direction returns the sort order, defaulting to ascending.
func (f TaskFilter) Direction() SortOrder {
	if f.SortOrder == "" {
		return SortAsc
	}
	return f.SortOrder
}

// Validate reports every invalid field of the filter.
func (f TaskFilter) Validate() error {
	errs := ValidationErrors{}

	if f.Status != nil && !f.Status.Valid() {
		errs.Add("status", "The selected status is invalid.")
	}

	if f.DueDateFrom != nil && f.DueDateTo != nil && f.DueDateTo.Before(*f.DueDateFrom) {
		errs.Add("due_date_to", "The due date to field must be a date after or equal to due date from.")
	}

	if f.SortBy != "" && !f.SortBy.Valid() {
		errs.Add("sort_by", "The selected sort by is invalid.")
	}

	if f.SortOrder != "" && !f.SortOrder.Valid() {
		errs.Add("sort_order", "The selected sort order is invalid.")
	}

	return errs.Err()
}
