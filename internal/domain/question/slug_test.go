package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{name: "simple title", title: "New question", expected: "new-question"},
		{name: "punctuation stripped", title: "What is Go, really?", expected: "what-is-go-really"},
		{name: "collapses separators", title: "a  --  b", expected: "a-b"},
		{name: "digits kept", title: "Top 10 tips", expected: "top-10-tips"},
		{name: "non-ascii dropped", title: "caffè latte", expected: "caff-latte"},
		{name: "empty", title: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.title))
		})
	}
}
