package source

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// skipped elements never contribute visible text.
var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
	atom.Svg:      true,
}

// block elements end the current line.
var block = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Br: true, atom.Li: true, atom.Tr: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Section: true, atom.Article: true, atom.Header: true, atom.Footer: true,
	atom.Title: true, atom.Blockquote: true, atom.Table: true, atom.Ul: true, atom.Ol: true,
}

// extractHTML returns the visible text of an HTML document. Images are
// kept as bare <img> tags carrying only src and alt, so accessibility
// rules that look for images without alternative text still apply.
func extractHTML(data []byte) (string, error) {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	var w htmlText
	w.walk(root)
	return w.String(), nil
}

type htmlText struct {
	lines []string
	cur   strings.Builder
}

func (w *htmlText) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.text(n.Data)
		return
	case html.ElementNode:
		if skipped[n.DataAtom] {
			return
		}
		if n.DataAtom == atom.Img {
			w.text(imgTag(n))
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}

	if n.Type == html.ElementNode && block[n.DataAtom] {
		w.newline()
	}
}

func (w *htmlText) text(s string) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return
	}
	if w.cur.Len() > 0 {
		w.cur.WriteByte(' ')
	}
	w.cur.WriteString(strings.Join(fields, " "))
}

func (w *htmlText) newline() {
	if w.cur.Len() > 0 {
		w.lines = append(w.lines, w.cur.String())
		w.cur.Reset()
	}
}

func (w *htmlText) String() string {
	w.newline()
	return strings.Join(w.lines, "\n")
}

func imgTag(n *html.Node) string {
	var b strings.Builder
	b.WriteString("<img")
	for _, a := range n.Attr {
		if a.Key == "src" || a.Key == "alt" {
			b.WriteString(" " + a.Key + "=\"" + html.EscapeString(a.Val) + "\"")
		}
	}
	b.WriteString(">")
	return b.String()
}
