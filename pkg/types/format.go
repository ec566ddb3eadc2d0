package types

import (
	"fmt"
	"strings"
)

// String renders the type in Fen's surface syntax: Array[Int],
// Map[Str, Int], {x: Int, y: Bool}, (Int, Int) => Bool, Symbol[a, b].
// Unification variables render as t0, t1, ...
func (t Type) String() string {
	if t.IsZero() {
		return "<nil>"
	}
	var sb strings.Builder
	writeType(&sb, t)
	return sb.String()
}

func writeType(sb *strings.Builder, t Type) {
	switch k := t.Kind().(type) {
	case Var:
		fmt.Fprintf(sb, "t%d", k.ID)
	case Scalar:
		sb.WriteString(k.Kind.String())
	case Array:
		sb.WriteString("Array[")
		writeType(sb, k.Elem)
		sb.WriteString("]")
	case Map:
		sb.WriteString("Map[")
		writeType(sb, k.Key)
		sb.WriteString(", ")
		writeType(sb, k.Value)
		sb.WriteString("]")
	case Record:
		sb.WriteString("{")
		for i, f := range k.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Name.String())
			sb.WriteString(": ")
			writeType(sb, f.Type)
		}
		sb.WriteString("}")
	case Func:
		sb.WriteString("(")
		for i, p := range k.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeType(sb, p)
		}
		sb.WriteString(") => ")
		writeType(sb, k.Ret)
	case Symbol:
		sb.WriteString("Symbol[")
		for i, p := range k.Parts {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(p.String())
		}
		sb.WriteString("]")
	}
}
