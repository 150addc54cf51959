package treelist

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// List2Dot outputs the internal tree structure of a list in Graphviz DOT format
// (for debugging purposes). Nodes are labelled with their value, the size of
// their subtree and their balance factor.
func List2Dot[T any](l *List[T], w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("strict digraph {\n")
	sb.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	var nodelist, edgelist strings.Builder
	var visit func(n *node[T], pos int)
	visit = func(n *node[T], pos int) {
		ID := ids.alloc(n)
		label := strconv.Quote(fmt.Sprintf("%v\n#%d @%d", n.value, n.size, pos+n.left.Len()))
		fmt.Fprintf(&nodelist, "\"%d\" [label=%s %s];\n", ID, label, nodeDotStyles(n.balance()))
		for _, child := range [2]*node[T]{n.left, n.right} {
			if child == nil {
				nilid := ids.max // empty subtrees share the id space with nodes
				ids.max++
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
		}
		if n.left != nil {
			visit(n.left, pos)
		}
		if n.right != nil {
			visit(n.right, pos+n.left.Len()+1)
		}
	}
	if l != nil && l.root != nil {
		visit(l.root, 0)
	}
	sb.WriteString(nodelist.String())
	sb.WriteString(edgelist.String())
	sb.WriteString("}\n")
	if _, err := io.WriteString(w, sb.String()); err != nil {
		tracer().Errorf("treelist DOT: %s", err.Error())
		return err
	}
	return nil
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}

func nodeDotStyles(balance int) string {
	s := ",style=filled,shape=box"
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(max(balance, -1), 1)+1])
	return s
}

// fill colors for balance factors -1, 0, +1
var hexcolors = [...]string{"#FFCCAA", "#a3d7e4", "#CCDDFF"}
