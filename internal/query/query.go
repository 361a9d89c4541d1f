package query

import (
	"math"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/daavo03/node-tours-app/internal/domain"
)

const (
	DefaultPage  = 1
	DefaultLimit = 100
	MaxLimit     = 1000

	// MaxOffset keeps the OFFSET within int on every platform.
	MaxOffset = math.MaxInt32
)

type Op string

const (
	OpEq  Op = "eq"
	OpGte Op = "gte"
	OpGt  Op = "gt"
	OpLte Op = "lte"
	OpLt  Op = "lt"
	OpIn  Op = "in"
)

var reserved = map[string]struct{}{
	"page":   {},
	"sort":   {},
	"limit":  {},
	"fields": {},
}

var filterKey = regexp.MustCompile(`^([A-Za-z0-9_.]+)(?:\[(gte|gt|lte|lt)\])?$`)

// Condition is a single filter on a json field name. Values stay raw until
// they are bound against a schema.
type Condition struct {
	Field  string
	Op     Op
	Values []string
}

type SortField struct {
	Field string
	Desc  bool
}

type Projection struct {
	Fields  []string
	Exclude bool
}

func (p Projection) Empty() bool { return len(p.Fields) == 0 }

type Query struct {
	Filters    []Condition
	Sort       []SortField
	Projection Projection
	Page       int
	Limit      int
}

// Offset saturates at MaxOffset; such a page is past any real result set.
func (q *Query) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}
	if q.Page-1 > MaxOffset/q.Limit {
		return MaxOffset
	}
	return (q.Page - 1) * q.Limit
}

// Where adds an equality filter, replacing any filter on the same field.
func (q *Query) Where(field, value string) *Query {
	filters := q.Filters[:0:0]
	for _, c := range q.Filters {
		if c.Field != field {
			filters = append(filters, c)
		}
	}
	q.Filters = append(filters, Condition{Field: field, Op: OpEq, Values: []string{value}})
	return q
}

// Parser turns URL query values into a Query. Fields listed in multi may be
// repeated and are matched as a set; for every other field the last value wins.
type Parser struct {
	multi map[string]struct{}
}

func NewParser(multi ...string) *Parser {
	p := &Parser{multi: make(map[string]struct{}, len(multi))}
	for _, f := range multi {
		p.multi[f] = struct{}{}
	}
	return p
}

func (p *Parser) Parse(values url.Values) (*Query, error) {
	q := &Query{
		Page:  positive(values.Get("page"), DefaultPage),
		Limit: min(positive(values.Get("limit"), DefaultLimit), MaxLimit),
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		vals := values[key]
		if _, ok := reserved[key]; ok || len(vals) == 0 {
			continue
		}
		m := filterKey.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		field, op := m[1], Op(m[2])
		if op == "" {
			op = OpEq
		}

		_, multi := p.multi[field]
		switch {
		case op == OpEq && multi && len(vals) > 1:
			q.Filters = append(q.Filters, Condition{Field: field, Op: OpIn, Values: vals})
		default:
			q.Filters = append(q.Filters, Condition{Field: field, Op: op, Values: vals[len(vals)-1:]})
		}
	}

	q.Sort = parseSort(last(values, "sort"))

	proj, err := parseProjection(last(values, "fields"))
	if err != nil {
		return nil, err
	}
	q.Projection = proj

	return q, nil
}

func parseSort(raw string) []SortField {
	var res []SortField
	for _, part := range splitList(raw) {
		desc := strings.HasPrefix(part, "-")
		res = append(res, SortField{Field: strings.TrimPrefix(part, "-"), Desc: desc})
	}
	return res
}

func parseProjection(raw string) (Projection, error) {
	var p Projection
	parts := splitList(raw)
	for i, part := range parts {
		exclude := strings.HasPrefix(part, "-")
		if i > 0 && exclude != p.Exclude {
			return Projection{}, domain.NewInvalidInput("Projection cannot mix included and excluded fields")
		}
		p.Exclude = exclude
		p.Fields = append(p.Fields, strings.TrimPrefix(part, "-"))
	}
	return p, nil
}

func splitList(raw string) []string {
	var res []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" && part != "-" {
			res = append(res, part)
		}
	}
	return res
}

func last(values url.Values, key string) string {
	vals := values[key]
	if len(vals) == 0 {
		return ""
	}
	return vals[len(vals)-1]
}

func positive(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
