package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSearchQuery(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		expectError bool
		expected    string
	}{
		{
			name:     "empty query",
			query:    "",
			expected: "",
		},
		{
			name:     "plain words",
			query:    "how do I test handlers",
			expected: "how do I test handlers",
		},
		{
			name:     "question mark allowed",
			query:    "what is gorm?",
			expected: "what is gorm?",
		},
		{
			name:        "SQL injection attempt - UNION",
			query:       "title UNION SELECT * FROM accounts",
			expectError: true,
		},
		{
			name:        "SQL injection attempt - OR condition",
			query:       "x OR 1=1",
			expectError: true,
		},
		{
			name:        "SQL comment",
			query:       "title --",
			expectError: true,
		},
		{
			name:        "XSS attempt",
			query:       "<script>alert('x')</script>",
			expectError: true,
		},
		{
			name:        "too long",
			query:       strings.Repeat("a", MaxSearchQueryLength+1),
			expectError: true,
		},
		{
			name:        "disallowed characters",
			query:       "foo&bar",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateSearchQuery(tt.query)
			if tt.expectError {
				require.Error(t, err)
				assert.Empty(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestSanitizeSearchString(t *testing.T) {
	assert.Equal(t, "", SanitizeSearchString(""))
	assert.Equal(t, "100\\% done", SanitizeSearchString("100% done"))
	assert.Equal(t, "snake\\_case", SanitizeSearchString("snake_case"))
}
