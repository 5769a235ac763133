package formatter

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routelabel/routelabel/internal/decorator"
	"github.com/routelabel/routelabel/internal/models"
)

func helloRoutes() []*models.Route {
	hello := models.NewRoute("/", nil, nil, nil, "hello_world", "Hi to the world")
	specific := models.NewRoute("/hello/<string:your_name>", nil, nil, nil,
		"a_more_specific_hello", "Hi to whomever is specified the URL")
	return []*models.Route{hello, specific}
}

func render(t *testing.T, f Formatter, modules []ModuleDoc, opts Options) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, f.Write(&b, modules, opts))
	return b.String()
}

func TestNewKnownFormats(t *testing.T) {
	for _, format := range []string{FormatMarkdown, FormatSphinx, FormatTable} {
		f, err := New(format, nil)
		require.NoError(t, err)
		assert.NotNil(t, f)
	}
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := New("asciidoc", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "asciidoc")
}

func TestMarkdownDocument(t *testing.T) {
	f, err := New(FormatMarkdown, nil)
	require.NoError(t, err)

	got := render(t, f, []ModuleDoc{{Name: "sample", Routes: helloRoutes()}}, Options{})

	want := `## Hello world
__GET: /__

Hi to the world

## A more specific hello
__GET: /hello/{your_name}__

 * ` + "`your_name`" + `: string

Hi to whomever is specified the URL

`
	assert.Equal(t, want, got)
}

func TestMarkdownSortsByPathLength(t *testing.T) {
	long := models.NewRoute("/a/very/long/path", nil, nil, nil, "long_one", "")
	short := models.NewRoute("/a", nil, nil, nil, "short_one", "")

	f, err := New(FormatMarkdown, nil)
	require.NoError(t, err)
	got := render(t, f, []ModuleDoc{{Routes: []*models.Route{long, short}}}, Options{})

	assert.Less(t, strings.Index(got, "Short one"), strings.Index(got, "Long one"))
}

func TestMarkdownMethodsUppercasedAndJoined(t *testing.T) {
	r := models.NewRoute("/submit", []string{"post", "put"}, nil, nil, "submit", "")

	f, err := New(FormatMarkdown, nil)
	require.NoError(t, err)
	got := render(t, f, []ModuleDoc{{Routes: []*models.Route{r}}}, Options{})

	assert.Contains(t, got, "__POST | PUT: /submit__")
}

func TestMarkdownGroupByModule(t *testing.T) {
	first := ModuleDoc{
		Name:   "alpha",
		Doc:    "Alpha module.",
		Routes: []*models.Route{models.NewRoute("/alpha", nil, nil, nil, "alpha_root", "")},
	}
	second := ModuleDoc{
		Name:   "beta",
		Routes: []*models.Route{models.NewRoute("/beta", nil, nil, nil, "beta_root", "")},
	}

	f, err := New(FormatMarkdown, nil)
	require.NoError(t, err)
	got := render(t, f, []ModuleDoc{first, second}, Options{GroupByModule: true})

	assert.Contains(t, got, "# alpha\n\nAlpha module.\n\n")
	assert.Contains(t, got, "# beta\n\n")
	assert.Less(t, strings.Index(got, "# alpha"), strings.Index(got, "## Alpha root"))
	assert.Less(t, strings.Index(got, "## Alpha root"), strings.Index(got, "# beta"))
}

func TestMarkdownHeaderedDecorator(t *testing.T) {
	headered := &decorator.CallDescriptor{Name: "headered"}
	unknown := &decorator.CallDescriptor{Name: "cached"}
	r := models.NewRoute("/headers", nil, nil,
		[]*decorator.CallDescriptor{headered, unknown}, "with_headers", "Sends a header")

	f, err := New(FormatMarkdown, nil)
	require.NoError(t, err)
	got := render(t, f, []ModuleDoc{{Routes: []*models.Route{r}}}, Options{})

	assert.Contains(t, got, "\n_X-Arbitrary-Header_: Here is a header!\n")
	assert.NotContains(t, got, "cached")
}

func TestSphinxDocument(t *testing.T) {
	f, err := New(FormatSphinx, nil)
	require.NoError(t, err)

	got := render(t, f, []ModuleDoc{{Name: "sample", Routes: helloRoutes()}}, Options{})

	want := `GET /
=====

**Notes:**

Hi to the world

GET /hello/<string:your_name>
=============================

**Notes:**

Hi to whomever is specified the URL

`
	assert.Equal(t, want, got)
}

func TestSphinxUnderlineMatchesEndpoint(t *testing.T) {
	r := models.NewRoute("/things", []string{"GET", "POST"}, nil, nil, "things", "")

	f, err := New(FormatSphinx, nil)
	require.NoError(t, err)
	got := render(t, f, []ModuleDoc{{Routes: []*models.Route{r}}}, Options{})

	endpoint := "GET/POST /things"
	assert.Contains(t, got, endpoint+"\n"+strings.Repeat("=", len(endpoint))+"\n")
}

func TestSphinxCustomRegistry(t *testing.T) {
	registry := Registry{
		"deprecated": func(w io.Writer, _ *decorator.CallDescriptor) error {
			_, err := io.WriteString(w, "\n.. deprecated:: 1.0\n")
			return err
		},
	}
	dec := &decorator.CallDescriptor{Name: "deprecated"}
	r := models.NewRoute("/old", nil, nil, []*decorator.CallDescriptor{dec}, "old", "Old route")

	f, err := New(FormatSphinx, registry)
	require.NoError(t, err)
	got := render(t, f, []ModuleDoc{{Routes: []*models.Route{r}}}, Options{})

	assert.Contains(t, got, ".. deprecated:: 1.0")
}

func TestTableDocument(t *testing.T) {
	r := models.NewRoute("/hello/<string:your_name>", nil, nil, nil, "a_more_specific_hello", "")
	r.SourceFile = "sample.py"
	r.Line = 17

	f, err := New(FormatTable, nil)
	require.NoError(t, err)
	got := render(t, f, []ModuleDoc{{Routes: []*models.Route{r}}}, Options{})

	assert.Contains(t, got, "/hello/{your_name}")
	assert.Contains(t, got, "a_more_specific_hello")
	assert.Contains(t, got, "sample.py:17")
	assert.Contains(t, got, "GET")
}
