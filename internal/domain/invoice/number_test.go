//go:build unit

package invoice_test

import (
	"testing"
	"time"

	"tournament-billing/internal/domain/invoice"

	"github.com/stretchr/testify/assert"
)

func TestBaseNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{name: "unsuffixed original", number: "INV-1042", want: "INV-1042"},
		{name: "first revision", number: "INV-1042-rev.2-143512", want: "INV-1042"},
		{name: "revision without suffix", number: "INV-1042-rev.3", want: "INV-1042"},
		{name: "base containing dashes", number: "AUS-CHS @ 03/14 Open-rev.4-010203", want: "AUS-CHS @ 03/14 Open"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, invoice.BaseNumber(tt.number))
		})
	}
}

func TestRevision(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   int
	}{
		{name: "original counts as revision 1", number: "INV-1042", want: 1},
		{name: "parses revision", number: "INV-1042-rev.2-143512", want: 2},
		{name: "parses revision without time suffix", number: "INV-1042-rev.7", want: 7},
		{name: "empty string", number: "", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, invoice.Revision(tt.number))
		})
	}
}

func TestNextNumber(t *testing.T) {
	now := time.Date(2026, 3, 14, 14, 35, 12, 0, time.UTC)

	t.Run("first recreation", func(t *testing.T) {
		got := invoice.NextNumber("INV-1042", now)
		assert.Equal(t, "INV-1042-rev.2-143512", got)
	})

	t.Run("round trip recovers incremented revision", func(t *testing.T) {
		next := invoice.NextNumber("INV-1042-rev.2-143512", now)
		assert.Equal(t, 3, invoice.Revision(next))
		assert.Equal(t, "INV-1042", invoice.BaseNumber(next))
	})

	t.Run("chains keep incrementing", func(t *testing.T) {
		n := "INV-9"
		for want := 2; want <= 5; want++ {
			n = invoice.NextNumber(n, now)
			assert.Equal(t, want, invoice.Revision(n))
		}
		assert.Equal(t, "INV-9", invoice.BaseNumber(n))
	})
}
