package querystring_test

import (
	"testing"

	"github.com/cardwall/core/types/querystring"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	t.Run("keys are sorted", func(t *testing.T) {
		assert := assert.New(t)
		got := querystring.Encode(map[string][]string{
			"tag":      {"live"},
			"category": {"music"},
		})
		assert.Equal("category=music&tag=live", got)
	})

	t.Run("multi values repeat the key", func(t *testing.T) {
		assert := assert.New(t)
		got := querystring.Encode(map[string][]string{
			"tag": {"live", "talk"},
		})
		assert.Equal("tag=live&tag=talk", got)
	})

	t.Run("escaping", func(t *testing.T) {
		assert := assert.New(t)
		got := querystring.Encode(map[string][]string{
			"q": {"a b&c"},
		})
		assert.Equal("q=a+b%26c", got)
	})

	t.Run("empty", func(t *testing.T) {
		assert := assert.New(t)
		assert.Empty(querystring.Encode(nil))
	})
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  map[string][]string
	}{
		{
			name:  "leading question mark",
			query: "?category=music&tag=live",
			want:  map[string][]string{"category": {"music"}, "tag": {"live"}},
		},
		{
			name:  "repeated key",
			query: "tag=live&tag=talk",
			want:  map[string][]string{"tag": {"live", "talk"}},
		},
		{
			name:  "pair without equals",
			query: "archived&tag=live",
			want:  map[string][]string{"archived": {""}, "tag": {"live"}},
		},
		{
			name:  "empty pairs skipped",
			query: "&&tag=live&",
			want:  map[string][]string{"tag": {"live"}},
		},
		{
			name:  "broken escape kept verbatim",
			query: "q=%zz",
			want:  map[string][]string{"q": {"%zz"}},
		},
		{
			name:  "empty string",
			query: "",
			want:  map[string][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := querystring.Decode(tt.query)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundtrip(t *testing.T) {
	assert := assert.New(t)
	values := map[string][]string{
		"category": {"music"},
		"tag":      {"live", "talk"},
	}
	assert.Equal(values, querystring.Decode(querystring.Encode(values)))
}

func TestInt(t *testing.T) {
	assert := assert.New(t)
	values := querystring.Decode("servertime=2000&page=abc")

	n, ok := querystring.Int(values, "servertime")
	assert.True(ok)
	assert.Equal(2000, n)

	_, ok = querystring.Int(values, "page")
	assert.False(ok)

	_, ok = querystring.Int(values, "missing")
	assert.False(ok)
}
