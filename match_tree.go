package captree

import (
	"fmt"
	"strings"
)

// MatchNode is the decoded-tree shape spec.md §4.4 and §6.1's
// r_create_match both target: {s, e, type, [data], subs}. It is the
// host-side materialisation of a byte- or JSON-encoded capture tree,
// the structural analogue of the teacher's parse tree (tree.go) but
// over match results rather than grammar AST nodes.
type MatchNode struct {
	S    int
	E    int
	Type string
	Data []byte
	Subs []*MatchNode
}

// Text returns the matched substring of subject, using the node's own
// 1-based [S,E) bounds.
func (n *MatchNode) Text(subject []byte) string {
	if n.S < 1 || n.E > len(subject)+1 || n.S > n.E {
		return ""
	}
	return string(subject[n.S-1 : n.E-1])
}

// Pretty renders n as an indented tree, reusing the teacher's generic
// treePrinter (tree_printer.go) the way tree.go pretty-prints a parse
// tree — adapted here to print match spans and type names instead of
// grammar node kinds.
func (n *MatchNode) Pretty(subject []byte) string {
	tp := newTreePrinter[*MatchNode](func(_ string, node *MatchNode) string {
		return fmt.Sprintf("%s [%d,%d) %q", node.Type, node.S, node.E, node.Text(subject))
	})
	var walk func(node *MatchNode)
	walk = func(node *MatchNode) {
		tp.pwritel(tp.format("", node))
		tp.indent("  ")
		for _, s := range node.Subs {
			walk(s)
		}
		tp.unindent()
	}
	walk(n)
	return tp.output.String()
}

// Highlight renders subject with every leaf match span of n (a node
// with no Subs, or n itself when it has none) wrapped in the given
// delimiters, depth-first, non-overlapping.
func (n *MatchNode) Highlight(subject []byte, open, close string) string {
	var b strings.Builder
	cursor := 0
	var spans []*MatchNode
	var collect func(*MatchNode)
	collect = func(node *MatchNode) {
		if len(node.Subs) == 0 {
			spans = append(spans, node)
			return
		}
		for _, s := range node.Subs {
			collect(s)
		}
	}
	collect(n)
	for _, s := range spans {
		if s.S-1 < cursor || s.S-1 > len(subject) {
			continue
		}
		b.Write(subject[cursor : s.S-1])
		b.WriteString(open)
		b.Write(subject[s.S-1 : s.E-1])
		b.WriteString(close)
		cursor = s.E - 1
	}
	if cursor < len(subject) {
		b.Write(subject[cursor:])
	}
	return b.String()
}
