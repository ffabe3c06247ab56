package anchor_test

import (
	"testing"

	"github.com/cardwall/core/types/anchor"
	"github.com/stretchr/testify/assert"
)

func TestTarget(t *testing.T) {
	base := "https://cards.example.com/list"

	tests := []struct {
		name string
		href string
		want string
	}{
		{name: "cross host", href: "https://other.example.org/talk", want: anchor.Blank},
		{name: "same host", href: "https://cards.example.com/detail/1", want: anchor.Self},
		{name: "relative path", href: "/detail/1", want: anchor.Self},
		{name: "fragment", href: "#section", want: anchor.Self},
		{name: "unparseable", href: "https://%zz", want: anchor.Self},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, anchor.Target(base, tt.href))
		})
	}
}

func TestResolve(t *testing.T) {
	assert := assert.New(t)
	base := "https://cards.example.com/list/archive"

	assert.Equal("https://cards.example.com/detail/1", anchor.Resolve(base, "/detail/1"))
	assert.Equal("https://cards.example.com/list/live", anchor.Resolve(base, "live"))
	assert.Equal("https://other.example.org/talk", anchor.Resolve(base, "https://other.example.org/talk"))
	assert.Equal("https://%zz", anchor.Resolve(base, "https://%zz"), "unparseable href unchanged")
}

func TestScrollOffset(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(820, anchor.ScrollOffset(900, 64, 16))
	assert.Equal(0, anchor.ScrollOffset(50, 64, 16), "clamped at the top")
	assert.Equal(0, anchor.ScrollOffset(0, 0, 0))
}
