package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phrazzld/task-api/internal/domain"
)

const taskColumns = `id, title, description, status, due_date, created_at, updated_at`

// sortColumns whitelists the columns a client may order by.
var sortColumns = map[domain.SortField]string{
	domain.SortByDueDate:   "due_date",
	domain.SortByCreatedAt: "created_at",
}

// taskQuery is the SQL derived from a TaskFilter: a conjunction of
// predicates with their numbered arguments plus an ORDER BY clause.
type taskQuery struct {
	conditions []string
	args       []any
	orderBy    string
}

// buildTaskQuery turns filter into SQL. Status and due date predicates are
// combined with AND; only one due-date mode ever applies, chosen by
// TaskFilter.DueDateMode. Without a sort field the order is creation time,
// oldest first. Every order ends with id so pages never overlap.
func buildTaskQuery(filter domain.TaskFilter) (*taskQuery, error) {
	q := &taskQuery{}

	if filter.Status != nil {
		q.where("status = %s", string(*filter.Status))
	}

	switch filter.DueDateMode() {
	case domain.DueDateExact:
		q.where("due_date = %s", *filter.DueDate)
	case domain.DueDateBetween:
		q.where("due_date >= %s", *filter.DueDateFrom)
		q.where("due_date <= %s", *filter.DueDateTo)
	case domain.DueDateOnOrAfter:
		q.where("due_date >= %s", *filter.DueDateFrom)
	case domain.DueDateOnOrBefore:
		q.where("due_date <= %s", *filter.DueDateTo)
	case domain.DueDateAny:
	}

	if filter.SortBy == "" {
		q.orderBy = "created_at ASC, id ASC"
		return q, nil
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported sort field %q", domain.ErrValidation, filter.SortBy)
	}

	var direction string
	switch filter.Direction() {
	case domain.SortAsc:
		direction = "ASC"
	case domain.SortDesc:
		direction = "DESC"
	default:
		return nil, fmt.Errorf("%w: unsupported sort order %q", domain.ErrValidation, filter.SortOrder)
	}

	q.orderBy = column + " " + direction + ", id " + direction
	return q, nil
}

// where appends a predicate. format holds a single %s for the placeholder.
func (q *taskQuery) where(format string, arg any) {
	q.args = append(q.args, arg)
	q.conditions = append(q.conditions, fmt.Sprintf(format, placeholder(len(q.args))))
}

func (q *taskQuery) whereClause() string {
	if len(q.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.conditions, " AND ")
}

// countSQL returns the statement counting every match.
func (q *taskQuery) countSQL() (string, []any) {
	return "SELECT COUNT(*) FROM tasks" + q.whereClause(), q.args
}

// selectSQL returns the statement fetching one page of matches.
func (q *taskQuery) selectSQL(page domain.PageRequest) (string, []any) {
	args := make([]any, 0, len(q.args)+2)
	args = append(args, q.args...)
	args = append(args, page.PerPage, page.Offset())

	query := "SELECT " + taskColumns + " FROM tasks" + q.whereClause() +
		" ORDER BY " + q.orderBy +
		" LIMIT " + placeholder(len(args)-1) + " OFFSET " + placeholder(len(args))
	return query, args
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
