package redirect_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MacroPower/bookredirect/pkg/redirect"
)

func TestTemplate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, strings.Count(redirect.Template, redirect.Placeholder))
}

func TestTarget(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		prefix string
		path   string
		want   string
	}{
		"top level": {
			prefix: "/php5/",
			path:   "introduction.html",
			want:   "/php5/introduction.html",
		},
		"one directory": {
			prefix: "/php5/",
			path:   "hashtables/array_api.html",
			want:   "/php5/hashtables/array_api.html",
		},
		"absolute prefix": {
			prefix: "https://example.com/php7/",
			path:   "zvals.html",
			want:   "https://example.com/php7/zvals.html",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, redirect.Target(tc.prefix, tc.path))
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	const target = "/php5/hashtables/array_api.html"

	want := "<!DOCTYPE HTML>\n" +
		"<html>\n" +
		"<head>\n" +
		"    <meta charset=\"UTF-8\">\n" +
		"    <meta http-equiv=\"refresh\" content=\"1; url=" + target + "\">\n" +
		"    \n" +
		"    <script>\n" +
		"    window.location.href = \"" + target + "\"\n" +
		"    </script>\n" +
		"</head>\n" +
		"<body>\n" +
		"<title>Page Redirection</title>\n" +
		" \n" +
		"If you are not redirected automatically, follow <a href=\"" + target + "\">this link.</a>\n" +
		"</body>\n" +
		"</html>"

	got := redirect.NewPage("/php5/", "hashtables/array_api.html").Render()

	assert.Equal(t, want, got)
	assert.Equal(t, 3, strings.Count(got, target))
	assert.NotContains(t, got, redirect.Placeholder)
}
