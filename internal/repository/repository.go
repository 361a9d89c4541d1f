package repository

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

const uniqueViolation = "23505"

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// jsonColumn stores V in a jsonb column.
type jsonColumn[T any] struct {
	V T
}

func (c *jsonColumn[T]) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		var zero T
		c.V = zero
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("jsonb: unsupported source %T", src)
	}
	return json.Unmarshal(raw, &c.V)
}

func (c jsonColumn[T]) Value() (driver.Value, error) {
	raw, err := json.Marshal(c.V)
	if err != nil {
		return nil, fmt.Errorf("jsonb: %w", err)
	}
	if string(raw) == "null" {
		return nil, nil
	}
	return string(raw), nil
}

// duplicateError converts a unique violation into a domain error.
func duplicateError(err error) (error, bool) {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil, false
	}
	return &domain.DuplicateError{Value: duplicateValue(pgErr.Detail)}, true
}

// duplicateValue extracts the value from a detail such as
// `Key (email)=(a@b.io) already exists.`
func duplicateValue(detail string) string {
	_, rest, ok := strings.Cut(detail, ")=(")
	if !ok {
		return detail
	}
	value, _, _ := strings.Cut(rest, ") already exists")
	return value
}
