package search

import (
	"github.com/rhartert/yagh"

	"github.com/corewhy/unsatexplain/internal/cnf"
	"github.com/corewhy/unsatexplain/internal/trail"
)

// Order picks the next unassigned decision variable. Unlike a CDCL
// solver's activity-based VarOrder (bumped and decayed as conflicts are
// analyzed), every variable here gets a fixed priority once, at
// construction: hint variables first, in the order the caller supplied
// them (signs ignored), then every remaining variable in ascending id
// order. Nothing ever changes a variable's priority afterwards, since
// there is no conflict-driven activity to track (§4.4: "no learning, no
// restarts").
type Order struct {
	heap     *yagh.IntMap[int]
	priority []int // priority[v], indexed by var id
}

// NewOrder builds the static priority order for variables 1..maxVar.
func NewOrder(maxVar int, hintVars []int) *Order {
	priority := make([]int, maxVar+1)
	hinted := make([]bool, maxVar+1)

	rank := 0
	for _, hv := range hintVars {
		v := cnf.Literal(hv).Var()
		if v < 1 || v > maxVar || hinted[v] {
			continue
		}
		hinted[v] = true
		priority[v] = rank
		rank++
	}
	for v := 1; v <= maxVar; v++ {
		if !hinted[v] {
			priority[v] = rank + v
		}
	}

	o := &Order{
		heap:     yagh.New[int](0),
		priority: priority,
	}
	o.heap.GrowBy(maxVar + 1)
	for v := 1; v <= maxVar; v++ {
		o.heap.Put(v, priority[v])
	}
	return o
}

// Next pops the highest-priority (lowest key) unassigned variable, or
// reports false if every variable is already assigned.
func (o *Order) Next(tr *trail.Trail) (int, bool) {
	for {
		elem, ok := o.heap.Pop()
		if !ok {
			return 0, false
		}
		if tr.Value(elem.Elem) != cnf.Unknown {
			continue // stale entry: assigned since it was put into the heap
		}
		return elem.Elem, true
	}
}

// Release makes v a candidate again after its assignment has been
// unwound by a Rewind, restoring its original static priority.
func (o *Order) Release(v int) {
	o.heap.Put(v, o.priority[v])
}
