package redirect

import "strings"

// Placeholder is replaced with the redirect target URL when rendering
// [Template].
const Placeholder = "_URL_"

// Template is the redirect page. [Placeholder] appears exactly three times.
const Template = `<!DOCTYPE HTML>
<html>
<head>
    <meta charset="UTF-8">
    <meta http-equiv="refresh" content="1; url=_URL_">
    
    <script>
    window.location.href = "_URL_"
    </script>
</head>
<body>
<title>Page Redirection</title>
 
If you are not redirected automatically, follow <a href="_URL_">this link.</a>
</body>
</html>`

// Target returns the redirect target URL for the relative document path p.
func Target(prefix, p string) string {
	return prefix + p
}

// Render returns [Template] with every [Placeholder] replaced by target.
func Render(target string) string {
	return strings.ReplaceAll(Template, Placeholder, target)
}

// Page is a single redirect page.
type Page struct {
	// Path is the slash-separated document path relative to the output root.
	Path string
	// Target is the URL the page redirects to.
	Target string
}

func NewPage(prefix, p string) Page {
	return Page{
		Path:   p,
		Target: Target(prefix, p),
	}
}

// Render returns the page's HTML document.
func (p Page) Render() string {
	return Render(p.Target)
}
