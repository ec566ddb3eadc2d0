package types

// Generic fold over type trees. The driver is stack-based rather than
// recursive, so deeply nested types cannot overflow the goroutine stack.

type stepMode uint8

const (
	stepRecurse stepMode = iota
	stepDone
	stepReplace
)

// FoldStep is the control-flow result of visiting a node.
type FoldStep[O any] struct {
	mode    stepMode
	out     O
	replace Type
}

// Recurse continues into the node's children; Combine runs afterwards.
func Recurse[O any]() FoldStep[O] {
	return FoldStep[O]{mode: stepRecurse}
}

// Done skips the node's children and uses out as its result.
func Done[O any](out O) FoldStep[O] {
	return FoldStep[O]{mode: stepDone, out: out}
}

// Replace visits t in place of the current node.
func Replace[O any](t Type) FoldStep[O] {
	return FoldStep[O]{mode: stepReplace, replace: t}
}

// Fold is a catamorphism over a type tree. The output type determines what
// kind of fold it is: Type for transformations, a set for collection, and so
// on.
type Fold[O any] interface {
	// Visit is called before a node's children are processed.
	Visit(b Builder, t Type) (FoldStep[O], error)

	// Combine is called after all children have been processed, with their
	// results in AppendChildren order. Leaves receive an empty slice.
	// Implementations must not retain the slice.
	Combine(b Builder, t Type, children []O) (O, error)
}

type foldTask struct {
	t       Type
	combine bool
	n       int
}

// Drive runs a fold over the tree rooted at t.
func Drive[O any](b Builder, t Type, f Fold[O]) (O, error) {
	var zero O

	stack := []foldTask{{t: t}}
	var results []O
	var scratch []Type

	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if task.combine {
			start := len(results) - task.n
			out, err := f.Combine(b, task.t, results[start:])
			if err != nil {
				return zero, err
			}
			results = append(results[:start], out)
			continue
		}

		step, err := f.Visit(b, task.t)
		if err != nil {
			return zero, err
		}
		switch step.mode {
		case stepDone:
			results = append(results, step.out)
		case stepReplace:
			stack = append(stack, foldTask{t: step.replace})
		case stepRecurse:
			scratch = AppendChildren(scratch[:0], task.t)
			stack = append(stack, foldTask{t: task.t, combine: true, n: len(scratch)})
			for i := len(scratch) - 1; i >= 0; i-- {
				stack = append(stack, foldTask{t: scratch[i]})
			}
		}
	}

	return results[0], nil
}

// TypeFolder is the common Type-to-Type transformation fold. Untouched
// subtrees are shared by handle: when every child comes back unchanged the
// original node is reused instead of reallocated, which assumes b is the
// builder that produced the tree being folded.
type TypeFolder interface {
	FoldType(b Builder, t Type) FoldStep[Type]
}

type typeFolderAdapter struct {
	f TypeFolder
}

func (a typeFolderAdapter) Visit(b Builder, t Type) (FoldStep[Type], error) {
	return a.f.FoldType(b, t), nil
}

func (a typeFolderAdapter) Combine(b Builder, t Type, children []Type) (Type, error) {
	orig := AppendChildren(nil, t)
	changed := false
	for i, c := range orig {
		if children[i] != c {
			changed = true
			break
		}
	}
	if !changed {
		return t, nil
	}
	return Rebuild(b, t, children), nil
}

// FoldTypes transforms the tree rooted at t with f.
func FoldTypes(b Builder, t Type, f TypeFolder) Type {
	out, err := Drive(b, t, typeFolderAdapter{f: f})
	if err != nil {
		// The adapter never produces an error.
		panic(err)
	}
	return out
}

// Clone deep-copies t into dst, re-interning identifiers. Unlike FoldTypes,
// nothing is shared with the source tree, so dst may be a different builder.
func Clone(dst Builder, t Type) Type {
	out, err := Drive(dst, t, cloneFold{})
	if err != nil {
		panic(err)
	}
	return out
}

type cloneFold struct{}

func (cloneFold) Visit(b Builder, t Type) (FoldStep[Type], error) {
	return Recurse[Type](), nil
}

func (cloneFold) Combine(b Builder, t Type, children []Type) (Type, error) {
	return Rebuild(b, t, children), nil
}
