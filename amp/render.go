package amp

import (
	"errors"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Serializer writes boolean attributes as name="", AMP expects bare names
// for these.
var booleanAttrs = strings.NewReplacer(
	` amp=""`, ` amp`,
	` amp-custom=""`, ` amp-custom`,
	` amp-boilerplate=""`, ` amp-boilerplate`,
	` async=""`, ` async`,
)

// render serializes document as HTML5.
func render(doc *etree.Document) (string, error) {
	root := doc.Root()
	if root == nil {
		return "", errors.New("document has no root element")
	}
	var b strings.Builder
	b.WriteString("<!doctype html>")
	if err := html.Render(&b, exportElement(root)); err != nil {
		return "", err
	}
	return booleanAttrs.Replace(b.String()), nil
}

func exportElement(e *etree.Element) *html.Node {
	tag := e.FullTag()
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	for _, a := range e.Attr {
		n.Attr = append(n.Attr, html.Attribute{Key: a.FullKey(), Val: a.Value})
	}
	for _, t := range e.Child {
		switch t := t.(type) {
		case *etree.Element:
			n.AppendChild(exportElement(t))
		case *etree.CharData:
			n.AppendChild(&html.Node{Type: html.TextNode, Data: t.Data})
		case *etree.Comment:
			n.AppendChild(&html.Node{Type: html.CommentNode, Data: t.Data})
		}
	}
	return n
}

// parseFragment parses markup as body content.
func parseFragment(markup string) ([]*html.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	return html.ParseFragment(strings.NewReader(strings.TrimSpace(markup)), context)
}

// importMarkup parses HTML fragment and appends it to parent as is.
func importMarkup(parent *etree.Element, markup string) error {
	nodes, err := parseFragment(markup)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		importNode(parent, n)
	}
	return nil
}

func importNode(parent *etree.Element, n *html.Node) {
	switch n.Type {
	case html.ElementNode:
		el := parent.CreateElement(n.Data)
		for _, a := range n.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + a.Key
			}
			el.CreateAttr(key, a.Val)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			importNode(el, c)
		}
	case html.TextNode:
		parent.CreateCharData(n.Data)
	case html.CommentNode:
		parent.CreateComment(n.Data)
	}
}
