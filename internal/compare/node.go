package compare

import "fmt"

// RenderKind tags the shape of one side of a comparison node.
type RenderKind int

const (
	RenderScalar RenderKind = iota
	RenderFunc
	RenderSequence
	RenderMapping
)

func (k RenderKind) String() string {
	switch k {
	case RenderScalar:
		return "scalar"
	case RenderFunc:
		return "func"
	case RenderSequence:
		return "sequence"
	case RenderMapping:
		return "mapping"
	default:
		return fmt.Sprintf("render(%d)", int(k))
	}
}

// Render is one side of a comparison node.
//
// Scalar renders carry a type name and text, function renders carry the
// callable's display name in Text, and container renders carry the child
// nodes. Both sides of a container node share the same children.
type Render struct {
	Kind     RenderKind
	TypeName string
	Text     string
	Children []*Node
}

// IsAbsent reports whether the render stands for the Absent sentinel.
func (r Render) IsAbsent() bool {
	return r.Kind == RenderScalar && r.TypeName == "Absent"
}

// Node is one entry of a comparison result tree.
type Node struct {
	// Key is the mapping key this node was compared under, or nil for
	// top-level values and sequence elements.
	Key   any
	Match Match
	Lhs   Render
	Rhs   Render
}

// Passed reports whether the node's overall outcome is Pass.
func (n *Node) Passed() bool {
	return n != nil && n.Match == Pass
}

// Children returns the child nodes of a container node.
func (n *Node) Children() []*Node {
	if n.Lhs.Kind == RenderSequence || n.Lhs.Kind == RenderMapping {
		return n.Lhs.Children
	}
	return nil
}

func scalarRender(v any) Render {
	return Render{Kind: RenderScalar, TypeName: typeName(v), Text: Stringify(v)}
}

func funcRender(name string) Render {
	return Render{Kind: RenderFunc, Text: name}
}

func errorRender(v any, err error) Render {
	return Render{Kind: RenderScalar, TypeName: typeName(v), Text: fmt.Sprintf("%s (error: %v)", Stringify(v), err)}
}
