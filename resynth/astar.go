// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package resynth

import (
	"container/heap"

	"github.com/irifrance/resynth/ilist"
	"github.com/irifrance/resynth/network"
	"github.com/irifrance/resynth/tt"
	"github.com/irifrance/resynth/z"
)

// gateOp distinguishes the three composition forms a task edge can
// record.
type gateOp int

const (
	opNone gateOp = iota
	opAnd
	opOr
	opXor
)

// task is one node of the A* search of spec §4.1.3: a partial
// (on,off) state reached from a parent task by committing a single
// divisor's unateness action.
type task struct {
	on, off tt.T
	cost    Cost
	parent  int // index into the search's task vector, -1 for the root
	op      gateOp
	lit     z.Lit // the literal that produced this task from its parent
	minIdx  int   // index of the divisor whose literal produced this task; expansions skip smaller indices, for commutativity-duplicate skipping
	xorUsed int   // XOR gates committed along this branch
}

// taskKey interns a task's (on,off) pair for the dominance memo.
type taskKey struct {
	onKey, offKey string
}

// taskHeap is a container/heap.Interface over task indices, ordered by
// Cost.Less.
type taskHeap struct {
	tasks *[]task
	idx   []int
}

func (h taskHeap) Len() int { return len(h.idx) }
func (h taskHeap) Less(i, j int) bool {
	return (*h.tasks)[h.idx[i]].cost.Less((*h.tasks)[h.idx[j]].cost)
}
func (h taskHeap) Swap(i, j int) { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }
func (h *taskHeap) Push(x interface{}) {
	h.idx = append(h.idx, x.(int))
}
func (h *taskHeap) Pop() interface{} {
	old := h.idx
	n := len(old)
	x := old[n-1]
	h.idx = old[:n-1]
	return x
}

// ResynthesizeAStar implements the cost-aware search of spec §4.1.3,
// used when the caller supplies a non-uniform divisor cost function
// (e.g. one that penalizes depth). When costFn is nil it uses UnitCost;
// the search is still this A* search, not Resynthesize's greedy
// decomposition. With cfg.PreserveDepth and a positive depthBudget, tasks
// whose depth exceeds depthBudget are dropped.
func ResynthesizeAStar(target, care tt.T, divisors []network.Divisor, costFn CostFn, sizeBudget, depthBudget int, cfg Config) (*ilist.List, bool) {
	if costFn == nil {
		costFn = UnitCost
	}
	d := len(divisors) - 1
	if d < 0 {
		d = 0
	}
	n := target.Len()
	on := tt.And(tt.New(n), target, care)
	off := tt.And(tt.New(n), tt.Not(tt.New(n), target), care)

	l := ilist.New(d)

	type divLit struct {
		lit   z.Lit
		table tt.T
		node  network.NodeID
		index int
	}
	dls := make([]divLit, 0, 2*d)
	for i := 1; i <= d; i++ {
		table := divisors[i].TT
		if cfg.CopyTTs {
			table = table.Clone()
		}
		dls = append(dls, divLit{lit: z.Var(i).Pos(), table: table, node: divisors[i].Node, index: i})
		dls = append(dls, divLit{lit: z.Var(i).Neg(), table: tt.Not(tt.New(n), table), node: divisors[i].Node, index: i})
	}

	if on.IsZero() {
		l.AppendOutput(z.Lit(0))
		return l, true
	}
	if off.IsZero() {
		l.AppendOutput(z.Lit(1))
		return l, true
	}

	tasks := []task{{on: on, off: off, cost: Cost{}, parent: -1, minIdx: 0}}
	h := &taskHeap{tasks: &tasks, idx: []int{0}}
	heap.Init(h)

	memo := make(map[taskKey]Cost)
	memo[taskKey{on.Key(), off.Key()}] = Cost{}

	upperBound := Cost{Size: sizeBudget + 1, Depth: depthBudget + 1}
	if depthBudget <= 0 {
		upperBound.Depth = 1 << 30
	}
	expansions := 0

	for h.Len() > 0 {
		ti := heap.Pop(h).(int)
		t := tasks[ti]

		if t.on.IsZero() || t.off.IsZero() {
			finishAStar(l, tasks, ti)
			return l, true
		}
		if !t.cost.Less(upperBound) {
			continue
		}
		if t.cost.Size >= sizeBudget {
			continue
		}
		if expansions >= cfg.MaxEnqueue {
			break
		}
		expansions++

		for _, dl := range dls {
			if dl.index < t.minIdx {
				continue // commutativity duplicate: already used a smaller index at this gate run
			}
			k := classify(dl.table, t.on, t.off)
			var nt task
			switch k {
			case posUnate:
				notCovered := tt.Not(tt.New(n), dl.table)
				on2 := tt.New(n)
				tt.And(on2, t.on, notCovered)
				nt = task{
					on: on2, off: t.off,
					cost:    t.cost.Add(costFn(dl.node), cfg.SizeCostOfAnd, cfg.DepthCostOfAnd),
					parent:  ti, op: opOr, lit: dl.lit, minIdx: dl.index,
					xorUsed: t.xorUsed,
				}
			case negUnate:
				notCovered := tt.Not(tt.New(n), dl.table)
				off2 := tt.New(n)
				tt.And(off2, t.off, notCovered)
				nt = task{
					on: t.on, off: off2,
					cost:    t.cost.Add(costFn(dl.node), cfg.SizeCostOfAnd, cfg.DepthCostOfAnd),
					parent:  ti, op: opAnd, lit: dl.lit, minIdx: dl.index,
					xorUsed: t.xorUsed,
				}
			default:
				if !cfg.UseXor || cfg.MaxXor <= 0 || t.xorUsed >= cfg.MaxXor {
					continue
				}
				// XOR doesn't shrink (on,off) the way AND/OR does; it
				// remaps the target under dl: wherever dl=1 the
				// required value flips, so on/off bits swap there.
				notD := tt.Not(tt.New(n), dl.table)
				on2 := tt.Or(tt.New(n), tt.And(tt.New(n), t.on, notD), tt.And(tt.New(n), t.off, dl.table))
				off2 := tt.Or(tt.New(n), tt.And(tt.New(n), t.off, notD), tt.And(tt.New(n), t.on, dl.table))
				nt = task{
					on: on2, off: off2,
					cost:   t.cost.Add(costFn(dl.node), cfg.SizeCostOfXor, cfg.DepthCostOfXor),
					parent: ti, op: opXor, lit: dl.lit, minIdx: dl.index,
				}
				nt.xorUsed = t.xorUsed + 1
			}
			if cfg.PreserveDepth && depthBudget > 0 && nt.cost.Depth > depthBudget {
				continue
			}
			key := taskKey{nt.on.Key(), nt.off.Key()}
			if prior, ok := memo[key]; ok && !nt.cost.Less(prior) {
				continue
			}
			memo[key] = nt.cost
			tasks = append(tasks, nt)
			heap.Push(h, len(tasks)-1)

			if (nt.on.IsZero() || nt.off.IsZero()) && nt.cost.Less(upperBound) {
				upperBound = nt.cost
			}
		}
	}
	return nil, false
}

// finishAStar backtraces from the terminal task index term to the root,
// appending the AND/OR/XOR gates it recorded into l, then returns the
// output literal. The terminal task's own edge is the innermost gate
// (it is what drove (on,off) to empty); each ancestor's edge wraps one
// level further out, ending at the root's immediate child as the
// outermost gate.
func finishAStar(l *ilist.List, tasks []task, term int) z.Lit {
	var acc z.Lit
	if tasks[term].on.IsZero() {
		acc = z.Lit(0)
	} else {
		acc = z.Lit(1)
	}
	for i := term; tasks[i].parent != -1; i = tasks[i].parent {
		t := tasks[i]
		switch t.op {
		case opOr:
			acc = l.AppendAnd(t.lit.Not(), acc.Not()).Not()
		case opAnd:
			acc = l.AppendAnd(t.lit, acc)
		case opXor:
			acc = l.AppendXor(t.lit, acc)
		}
	}
	l.AppendOutput(acc)
	return acc
}
