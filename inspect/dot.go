package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/containers/list"
)

type nodeids[K comparable] struct {
	idTable map[K]int
	max     int
}

func newtable[K comparable]() *nodeids[K] {
	return &nodeids[K]{
		idTable: make(map[K]int),
		max:     1,
	}
}

func (ids *nodeids[K]) alloc(node K) int {
	if id := ids.idTable[node]; id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ListDot outputs the node ring of a list in Graphviz DOT format (for
// debugging purposes). The sentinel is drawn as node 0; next links are solid
// edges, prev links dashed ones. label formats element values; fmt.Sprint is
// used if nil.
func ListDot[T any](w io.Writer, l *list.List[T], label func(T) string) error {
	if l == nil {
		return fmt.Errorf("inspect: nil list")
	}
	if label == nil {
		label = func(x T) string { return fmt.Sprint(x) }
	}
	var nodes, edges strings.Builder
	ids := newtable[*list.Element[T]]()
	nodes.WriteString("\"0\" [label=\"\",color=black,shape=circle,fixedsize=true,width=.4];\n")
	prev := 0
	for e := range l.Elements() {
		id := ids.alloc(e)
		fmt.Fprintf(&nodes, "\"%d\" [label=\"%s\",style=filled,shape=box];\n", id, escape(label(e.Value)))
		fmt.Fprintf(&edges, "\"%d\" -> \"%d\";\n", prev, id)
		fmt.Fprintf(&edges, "\"%d\" -> \"%d\" [style=dashed];\n", id, prev)
		prev = id
	}
	fmt.Fprintf(&edges, "\"%d\" -> \"0\";\n", prev)
	fmt.Fprintf(&edges, "\"0\" -> \"%d\" [style=dashed];\n", prev)
	tracer().Debugf("inspect: DOT output of list with %d elements", l.Len())
	for _, s := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodes.String(),
		edges.String(),
		"}\n",
	} {
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}

func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(s)
}
