package levels

import (
	"bufio"
	"encoding/xml"
	"io"
	"strings"
)

const (
	xmlHeader = `<?xml version="1.0" encoding="utf-8"?>`
	newline   = "\r\n"
	indent    = "  "
)

type countingWriter struct {
	w *bufio.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func (c *countingWriter) str(s string) {
	_, _ = io.WriteString(c, s)
}

// Encode writes root as a standalone document: declaration first, two-space
// indentation, CRLF line breaks, empty elements self-closed.
func Encode(w io.Writer, root *Node) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}
	cw.str(xmlHeader)
	cw.str(newline)
	if err := writeNode(cw, root, 0); err != nil {
		return cw.n, err
	}
	return cw.n, cw.w.Flush()
}

func writeNode(cw *countingWriter, n *Node, depth int) error {
	pad := strings.Repeat(indent, depth)
	cw.str(pad)
	cw.str("<")
	cw.str(n.Name)
	for _, a := range n.Attrs {
		cw.str(" ")
		cw.str(a.Name)
		cw.str(`="`)
		if err := xml.EscapeText(cw, []byte(a.Value)); err != nil {
			return err
		}
		cw.str(`"`)
	}

	switch {
	case len(n.Children) == 0 && n.Text == "":
		cw.str(" />")
	case len(n.Children) == 0:
		cw.str(">")
		if err := xml.EscapeText(cw, []byte(n.Text)); err != nil {
			return err
		}
		cw.str("</" + n.Name + ">")
	default:
		cw.str(">")
		cw.str(newline)
		if n.Text != "" {
			cw.str(pad + indent)
			if err := xml.EscapeText(cw, []byte(n.Text)); err != nil {
				return err
			}
			cw.str(newline)
		}
		for _, c := range n.Children {
			if err := writeNode(cw, c, depth+1); err != nil {
				return err
			}
		}
		cw.str(pad + "</" + n.Name + ">")
	}
	if depth > 0 {
		cw.str(newline)
	}
	return nil
}
