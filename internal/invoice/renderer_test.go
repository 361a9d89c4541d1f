package invoice

import (
	"bytes"
	"testing"
	"time"

	"github.com/daavo03/node-tours-app/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	r := &Renderer{compress: false}
	inv := &domain.Invoice{
		Number:        "INV-3F9B1C1E",
		IssuedAt:      time.Date(2021, 4, 25, 10, 0, 0, 0, time.UTC),
		CustomerName:  "Jonas Schmedtmann",
		CustomerEmail: "jonas@example.com",
		TourName:      "The Sea Explorer",
		StartDates:    []time.Time{time.Date(2021, 6, 19, 9, 0, 0, 0, time.UTC)},
		Price:         497,
		Paid:          true,
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, inv))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "INV-3F9B1C1E")
	assert.Contains(t, string(out), "The Sea Explorer")
	assert.Contains(t, string(out), "Total: $497.00")
	assert.Contains(t, string(out), "Status: PAID")
}

func TestRenderer_Render_MissingCustomer(t *testing.T) {
	r := &Renderer{compress: false}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, &domain.Invoice{Number: "INV-00000000", Price: 10}))

	assert.Contains(t, buf.String(), "Status: UNPAID")
}
