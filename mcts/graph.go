package mcts

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"text/template"

	"github.com/awalterschulze/gographviz"
)

// dotNode is what a node is rendered like in a Graphviz label.
type dotNode[M any, S State[M, S]] struct {
	*Node[S]
	t *MCTS[M, S]
}

func (n dotNode[M, S]) Move() string {
	if n.IsRoot() {
		return "root"
	}
	return html.EscapeString(fmt.Sprintf("%v", n.state.LastMove()))
}

func (n dotNode[M, S]) UCB1() string {
	if n.IsRoot() || n.t.parentOf(n.Node).IsNotVisited() {
		return "-"
	}
	return fmt.Sprintf("%v", n.t.ucb1(n.Node))
}

func (n dotNode[M, S]) Board() string {
	s := strings.TrimRight(fmt.Sprintf("%v", n.state), "\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = html.EscapeString(lines[i])
	}
	return strings.Join(lines, "<BR />")
}

// ToDot renders the tree as a Graphviz digraph.
func (t *MCTS[M, S]) ToDot() string {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		panic(err)
	}
	if err := g.SetDir(true); err != nil {
		panic(err)
	}

	var buf bytes.Buffer
	for i := range t.nodes {
		n := dotNode[M, S]{Node: &t.nodes[i], t: t}
		if err := tmpl.Execute(&buf, n); err != nil {
			panic(err)
		}
		attrs := map[string]string{
			"fontname": "Monaco",
			"shape":    "none",
			"label":    buf.String(),
		}
		if err := g.AddNode("G", fmt.Sprintf("%v", n.id), attrs); err != nil {
			panic(err)
		}
		buf.Reset()
	}
	for i := range t.nodes {
		n := &t.nodes[i]
		for _, kid := range n.children {
			if err := g.AddEdge(fmt.Sprintf("%v", n.id), fmt.Sprintf("%v", kid), true, nil); err != nil {
				panic(err)
			}
		}
	}
	return g.String()
}

const tmplRaw = `<
<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0">
<TR><TD>Node ID</TD><TD>{{.ID}}</TD></TR>
<TR><TD>Move</TD><TD>{{.Move}}</TD></TR>
<TR><TD>Visits</TD><TD>{{.Visits}}</TD></TR>
<TR><TD>Score</TD><TD>{{.Score}}</TD></TR>
<TR><TD>UCB1</TD><TD>{{.UCB1}}</TD></TR>
<TR><TD>State</TD><TD>{{.Board}}</TD></TR>
</TABLE>
>
`

var tmpl *template.Template

func init() {
	tmpl = template.Must(template.New("name").Parse(tmplRaw))
}
