package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Kind int

const (
	String Kind = iota
	Number
	Integer
	Bool
	Time
	UUID
)

type Column struct {
	Name string
	Kind Kind
}

// Schema maps json field names of a resource to SQL columns.
type Schema struct {
	Columns     map[string]Column
	DefaultSort string
	IDColumn    string
}

// Clause holds the SQL fragments rendered from a Query.
type Clause struct {
	Conditions []string
	Args       []any
	OrderBy    string
	Limit      int
	Offset     int
}

var operators = map[Op]string{
	OpEq:  "=",
	OpGte: ">=",
	OpGt:  ">",
	OpLte: "<=",
	OpLt:  "<",
}

// Build renders q against the schema. Unknown fields are ignored.
func (s *Schema) Build(q *Query) (*Clause, error) {
	c := &Clause{Limit: q.Limit, Offset: q.Offset()}

	for _, cond := range q.Filters {
		col, ok := s.Columns[cond.Field]
		if !ok {
			continue
		}

		args := make([]any, 0, len(cond.Values))
		for _, raw := range cond.Values {
			v, err := coerce(col.Kind, raw)
			if err != nil {
				return nil, &domain.CastError{Field: cond.Field, Value: raw}
			}
			args = append(args, v)
		}

		if cond.Op == OpIn {
			marks := strings.TrimSuffix(strings.Repeat("?, ", len(args)), ", ")
			c.Conditions = append(c.Conditions, fmt.Sprintf("%s IN (%s)", col.Name, marks))
		} else {
			c.Conditions = append(c.Conditions, fmt.Sprintf("%s %s ?", col.Name, operators[cond.Op]))
		}
		c.Args = append(c.Args, args...)
	}

	c.OrderBy = s.orderBy(q.Sort)
	return c, nil
}

func (s *Schema) orderBy(fields []SortField) string {
	parts, hasID := s.sortParts(fields)
	if len(parts) == 0 {
		parts, hasID = s.sortParts(parseSort(s.DefaultSort))
	}
	if !hasID && s.IDColumn != "" {
		parts = append(parts, s.IDColumn+" ASC")
	}
	return strings.Join(parts, ", ")
}

func (s *Schema) sortParts(fields []SortField) ([]string, bool) {
	parts := make([]string, 0, len(fields)+1)
	hasID := false
	for _, f := range fields {
		col, ok := s.Columns[f.Field]
		if !ok {
			continue
		}
		dir := "ASC"
		if f.Desc {
			dir = "DESC"
		}
		parts = append(parts, col.Name+" "+dir)
		hasID = hasID || col.Name == s.IDColumn
	}
	return parts, hasID
}

// Where joins the base conditions with the rendered filters.
func (c *Clause) Where(base ...string) string {
	conds := append(append([]string{}, base...), c.Conditions...)
	if len(conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(conds, " AND ")
}

// SQL completes selectFrom with filters, ordering and paging, rebound to
// postgres placeholders. baseArgs belong to the '?' marks inside base.
func (c *Clause) SQL(selectFrom string, base []string, baseArgs ...any) (string, []any) {
	var b strings.Builder
	b.WriteString(selectFrom)
	if where := c.Where(base...); where != "" {
		b.WriteString(" ")
		b.WriteString(where)
	}
	if c.OrderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(c.OrderBy)
	}
	b.WriteString(" LIMIT ? OFFSET ?")

	args := make([]any, 0, len(baseArgs)+len(c.Args)+2)
	args = append(args, baseArgs...)
	args = append(args, c.Args...)
	args = append(args, c.Limit, c.Offset)

	return sqlx.Rebind(sqlx.DOLLAR, b.String()), args
}

func coerce(kind Kind, raw string) (any, error) {
	switch kind {
	case Number:
		return strconv.ParseFloat(raw, 64)
	case Integer:
		return strconv.ParseInt(raw, 10, 64)
	case Bool:
		return strconv.ParseBool(raw)
	case Time:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, nil
		}
		return time.Parse(time.DateOnly, raw)
	case UUID:
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		return id.String(), nil
	default:
		return raw, nil
	}
}
