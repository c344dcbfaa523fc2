package htmlclean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText_ExtractsVisibleText(t *testing.T) {
	got := Text("<html><body><h1>About</h1><p>I build backends.</p></body></html>")
	assert.Equal(t, "About I build backends.", got)
}

func TestText_DropsScriptsAndStyles(t *testing.T) {
	got := Text(`<body><script>var x = 1;</script><style>p{color:red}</style><p>visible</p></body>`)
	assert.Equal(t, "visible", got)
	assert.NotContains(t, got, "var x")
}

func TestText_DropsNavigationChrome(t *testing.T) {
	in := `<body>
		<header>site header</header>
		<nav>home | about</nav>
		<aside>sidebar</aside>
		<main><p>the real story</p></main>
		<footer>footer text</footer>
	</body>`

	got := Text(in)
	assert.Equal(t, "the real story", got)
}

func TestText_CollapsesWhitespace(t *testing.T) {
	got := Text("<p>  lots \n\n of \t whitespace  </p>")
	assert.Equal(t, "lots of whitespace", got)
}

func TestText_PlainTextPassesThrough(t *testing.T) {
	assert.Equal(t, "no markup here", Text("no markup here"))
	assert.Equal(t, "", Text(""))
}
