package fop_test

import (
	"testing"

	"github.com/jrazmi/crudkit/core/scaffolding/fop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name  string
		skip  string
		limit string
		want  fop.Page
	}{
		{"defaults", "", "", fop.Page{Skip: 0, Limit: fop.NoLimit}},
		{"explicit", "10", "5", fop.Page{Skip: 10, Limit: 5}},
		{"negative skip", "-3", "", fop.Page{Skip: 0, Limit: fop.NoLimit}},
		{"negative limit", "", "-1", fop.Page{Skip: 0, Limit: 0}},
		{"capped", "", "5000", fop.Page{Skip: 0, Limit: fop.MaxLimit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fop.ParsePage(tt.skip, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePageErrors(t *testing.T) {
	_, err := fop.ParsePage("abc", "")
	assert.ErrorContains(t, err, "skip must be an integer")

	_, err = fop.ParsePage("", "1.5")
	assert.ErrorContains(t, err, "limit must be an integer")
}

func TestWindow(t *testing.T) {
	tests := []struct {
		page       fop.Page
		n          int
		start, end int
	}{
		{fop.All, 4, 0, 4},
		{fop.Page{Skip: 1, Limit: 2}, 4, 1, 3},
		{fop.Page{Skip: 3, Limit: 5}, 4, 3, 4},
		{fop.Page{Skip: 9, Limit: 5}, 4, 4, 4},
		{fop.Page{Skip: 0, Limit: 0}, 4, 0, 0},
	}

	for _, tt := range tests {
		start, end := tt.page.Window(tt.n)
		assert.Equal(t, tt.start, start, "%+v", tt.page)
		assert.Equal(t, tt.end, end, "%+v", tt.page)
	}
}
