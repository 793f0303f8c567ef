package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		part     int64
		total    int64
		expected string
	}{
		{name: "Um quarto", part: 25, total: 100, expected: "25.0"},
		{name: "Arredonda para uma casa", part: 1, total: 3, expected: "33.3"},
		{name: "Dois terços", part: 2, total: 3, expected: "66.7"},
		{name: "Meio arredonda para cima 1/16", part: 1, total: 16, expected: "6.3"},
		{name: "Meio arredonda para cima 3/16", part: 3, total: 16, expected: "18.8"},
		{name: "Meio arredonda para cima 5/16", part: 5, total: 16, expected: "31.3"},
		{name: "Meio arredonda para cima 7/16", part: 7, total: 16, expected: "43.8"},
		{name: "Total zero", part: 10, total: 0, expected: "0.0"},
		{name: "Total negativo", part: 1, total: -5, expected: "0.0"},
		{name: "Sem aberturas", part: 0, total: 500, expected: "0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Percentage(tt.part, tt.total))
		})
	}
}

func TestFormatOneDecimal(t *testing.T) {
	expectations := map[float64]string{
		0:     "0.0",
		3.25:  "3.3",
		6.25:  "6.3",
		12:    "12.0",
		0.04:  "0.0",
	}

	for in, want := range expectations {
		assert.Equal(t, want, FormatOneDecimal(in), "%v", in)
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "999", FormatCount(999))
	assert.Equal(t, "1,234", FormatCount(1234))
	assert.Equal(t, "1,234,567", FormatCount(1234567))
}

func TestDates(t *testing.T) {
	brt := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2026, 10, 15, 22, 30, 0, 0, brt) // 2026-10-16 01:30 UTC

	assert.Equal(t, "2026-10-15", Yesterday(now))
	assert.Equal(t, "2026-10-16", ISODate(now))
	assert.Equal(t, "October 15, 2026", HumanDate(now))
	assert.Equal(t, "2026-02-28", Yesterday(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestReadResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`slow down`))
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	resp, err := http.Get(server.URL + "/ok")
	require.NoError(t, err)
	body, err := ReadResponse(resp)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))

	resp, err = http.Get(server.URL + "/fail")
	require.NoError(t, err)
	body, err = ReadResponse(resp)
	require.Error(t, err)

	statusErr, ok := err.(*StatusError)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	assert.Equal(t, "slow down", string(statusErr.Body))
	assert.Nil(t, body)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID(24)

	require.NoError(t, err)
	assert.Len(t, id, 24)
	assert.Regexp(t, `^[A-Za-z0-9]+$`, id)
}
