package compare

import "fmt"

// Cell is the flattened form of one side of a Node. Container cells carry no
// text; their children follow as rows one level deeper.
type Cell struct {
	Kind     RenderKind `json:"kind"`
	TypeName string     `json:"type,omitempty"`
	Text     string     `json:"text,omitempty"`
}

// Row is one line of the flattened projection of a comparison tree.
type Row struct {
	Depth int   `json:"depth"`
	Key   any   `json:"key,omitempty"`
	Match Match `json:"match"`
	Lhs   Cell  `json:"lhs"`
	Rhs   Cell  `json:"rhs"`
}

// MarshalText makes RenderKind readable in JSON exports.
func (k RenderKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses the names produced by MarshalText.
func (k *RenderKind) UnmarshalText(text []byte) error {
	for _, c := range []RenderKind{RenderScalar, RenderFunc, RenderSequence, RenderMapping} {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("invalid render kind %q", string(text))
}

// Flatten projects a comparison tree into depth-annotated rows in
// depth-first order. A container node yields its own row followed by the
// rows of its children at depth+1.
func Flatten(root *Node) []Row {
	var rows []Row
	flatten(root, 0, &rows)
	return rows
}

// FlattenChildren flattens the children of a container node starting at depth 0.
// It is the projection used for top-level mappings, whose own row carries no data.
func FlattenChildren(root *Node) []Row {
	var rows []Row
	for _, child := range root.Children() {
		flatten(child, 0, &rows)
	}
	return rows
}

func flatten(n *Node, depth int, rows *[]Row) {
	*rows = append(*rows, Row{
		Depth: depth,
		Key:   n.Key,
		Match: n.Match,
		Lhs:   cellOf(n.Lhs),
		Rhs:   cellOf(n.Rhs),
	})
	for _, child := range n.Children() {
		flatten(child, depth+1, rows)
	}
}

func cellOf(r Render) Cell {
	return Cell{Kind: r.Kind, TypeName: r.TypeName, Text: r.Text}
}

// Unflatten rebuilds the trees whose flattened rows are given. Rows must be
// in the order Flatten produces; the first row must be at depth 0.
func Unflatten(rows []Row) ([]*Node, error) {
	var roots []*Node
	var stack []*Node // stack[d] is the open container at depth d

	for i, row := range rows {
		if row.Depth < 0 || row.Depth > len(stack) {
			return nil, fmt.Errorf("row %d: depth %d does not follow depth %d", i, row.Depth, len(stack)-1)
		}
		stack = stack[:row.Depth]

		n := &Node{
			Key:   row.Key,
			Match: row.Match,
			Lhs:   Render{Kind: row.Lhs.Kind, TypeName: row.Lhs.TypeName, Text: row.Lhs.Text},
			Rhs:   Render{Kind: row.Rhs.Kind, TypeName: row.Rhs.TypeName, Text: row.Rhs.Text},
		}

		if row.Depth == 0 {
			roots = append(roots, n)
		} else {
			parent := stack[row.Depth-1]
			if !isContainer(parent.Lhs.Kind) {
				return nil, fmt.Errorf("row %d: parent row is not a container", i)
			}
			parent.Lhs.Children = append(parent.Lhs.Children, n)
			parent.Rhs.Children = parent.Lhs.Children
		}
		stack = append(stack, n)
	}
	return roots, nil
}

func isContainer(k RenderKind) bool {
	return k == RenderSequence || k == RenderMapping
}
