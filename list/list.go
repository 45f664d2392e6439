// File: list/list.go
// Package list implements the library's doubly-linked list container.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// List stores elements in individually allocated nodes linked both
// ways. Node allocation can be delegated to an attached object pool so
// heavy push/pop churn recycles nodes instead of hitting the runtime
// allocator. Positional operations (At, Set) walk from the head and
// cost O(n).

package list

import (
	"sync"

	"github.com/momentics/seqkit/api"
)

// Option configures a List at construction time.
type Option[T any] func(*List[T])

// WithDestructor installs a hook invoked on every element that the
// list drops: pops, erases, overwrites via Set, Clear and Destroy.
func WithDestructor[T any](dtor api.Destructor[T]) Option[T] {
	return func(l *List[T]) { l.dtor = dtor }
}

// Node is one link of a List. Value is the caller's element; the link
// fields stay private so list structure cannot be corrupted from
// outside.
type Node[T any] struct {
	Value T

	prev *Node[T]
	next *Node[T]
}

// Next returns the following node, or nil at the back.
func (n *Node[T]) Next() *Node[T] { return n.next }

// Prev returns the preceding node, or nil at the front.
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// List is a doubly-linked list of T.
type List[T any] struct {
	mu   sync.Mutex
	safe bool

	head *Node[T]
	tail *Node[T]
	size int

	dtor      api.Destructor[T]
	nodePool  api.ObjectPool[Node[T]]
	destroyed bool
}

// New constructs an empty list.
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *List[T]) lock() {
	if l.safe {
		l.mu.Lock()
	}
}

func (l *List[T]) unlock() {
	if l.safe {
		l.mu.Unlock()
	}
}

// EnableThreadSafety makes every subsequent call take the internal
// mutex. Iterators are not covered; they stay single-goroutine.
func (l *List[T]) EnableThreadSafety() { l.safe = true }

// DisableThreadSafety turns per-call locking back off.
func (l *List[T]) DisableThreadSafety() { l.safe = false }

// newNode allocates a link, from the node pool when one is attached.
func (l *List[T]) newNode(elem T) (*Node[T], error) {
	if l.nodePool != nil {
		n, err := l.nodePool.Get()
		if err != nil {
			return nil, err
		}
		n.prev = nil
		n.next = nil
		n.Value = elem
		return n, nil
	}
	return &Node[T]{Value: elem}, nil
}

// freeNode runs the destructor and recycles the link. Links are
// cleared either way so the garbage collector never chases a dead
// node chain.
func (l *List[T]) freeNode(n *Node[T]) {
	if l.dtor != nil {
		l.dtor(&n.Value)
	}
	var zero T
	n.Value = zero
	n.prev = nil
	n.next = nil
	if l.nodePool != nil {
		_ = l.nodePool.Put(n)
	}
}

// Len reports the number of elements.
func (l *List[T]) Len() int {
	l.lock()
	defer l.unlock()
	return l.size
}

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool { return l.Len() == 0 }

// PushFront prepends elem.
func (l *List[T]) PushFront(elem T) error {
	l.lock()
	defer l.unlock()
	if l.destroyed {
		return api.NewError(api.CodeInvalidArgument, "list is destroyed")
	}
	n, err := l.newNode(elem)
	if err != nil {
		return err
	}
	l.linkFront(n)
	return nil
}

// PushBack appends elem.
func (l *List[T]) PushBack(elem T) error {
	l.lock()
	defer l.unlock()
	if l.destroyed {
		return api.NewError(api.CodeInvalidArgument, "list is destroyed")
	}
	n, err := l.newNode(elem)
	if err != nil {
		return err
	}
	l.linkBack(n)
	return nil
}

func (l *List[T]) linkFront(n *Node[T]) {
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
}

func (l *List[T]) linkBack(n *Node[T]) {
	n.prev = l.tail
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// unlink detaches n from the chain without freeing it.
func (l *List[T]) unlink(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.size--
}

// PopFront removes the first element.
func (l *List[T]) PopFront() error {
	l.lock()
	defer l.unlock()
	if l.head == nil {
		return api.ErrContainerEmpty
	}
	n := l.head
	l.unlink(n)
	l.freeNode(n)
	return nil
}

// PopBack removes the last element.
func (l *List[T]) PopBack() error {
	l.lock()
	defer l.unlock()
	if l.tail == nil {
		return api.ErrContainerEmpty
	}
	n := l.tail
	l.unlink(n)
	l.freeNode(n)
	return nil
}

// Front returns a pointer to the first element.
func (l *List[T]) Front() (*T, error) {
	l.lock()
	defer l.unlock()
	if l.head == nil {
		return nil, api.ErrContainerEmpty
	}
	return &l.head.Value, nil
}

// Back returns a pointer to the last element.
func (l *List[T]) Back() (*T, error) {
	l.lock()
	defer l.unlock()
	if l.tail == nil {
		return nil, api.ErrContainerEmpty
	}
	return &l.tail.Value, nil
}

// FrontNode returns the first node, or nil when empty. Nodes anchor
// positional inserts and erases.
func (l *List[T]) FrontNode() *Node[T] {
	l.lock()
	defer l.unlock()
	return l.head
}

// BackNode returns the last node, or nil when empty.
func (l *List[T]) BackNode() *Node[T] {
	l.lock()
	defer l.unlock()
	return l.tail
}

// InsertBefore inserts elem in front of pos. A nil pos appends, so a
// full forward walk that ran off the back can still insert at the end.
func (l *List[T]) InsertBefore(pos *Node[T], elem T) error {
	l.lock()
	defer l.unlock()
	if l.destroyed {
		return api.NewError(api.CodeInvalidArgument, "list is destroyed")
	}
	n, err := l.newNode(elem)
	if err != nil {
		return err
	}
	if pos == nil {
		l.linkBack(n)
		return nil
	}
	n.prev = pos.prev
	n.next = pos
	if pos.prev != nil {
		pos.prev.next = n
	} else {
		l.head = n
	}
	pos.prev = n
	l.size++
	return nil
}

// InsertAfter inserts elem behind pos. A nil pos prepends, mirroring
// InsertBefore's nil convention from the opposite direction.
func (l *List[T]) InsertAfter(pos *Node[T], elem T) error {
	l.lock()
	defer l.unlock()
	if l.destroyed {
		return api.NewError(api.CodeInvalidArgument, "list is destroyed")
	}
	n, err := l.newNode(elem)
	if err != nil {
		return err
	}
	if pos == nil {
		l.linkFront(n)
		return nil
	}
	n.prev = pos
	n.next = pos.next
	if pos.next != nil {
		pos.next.prev = n
	} else {
		l.tail = n
	}
	pos.next = n
	l.size++
	return nil
}

// Erase removes the node at pos. The node must belong to this list;
// passing a foreign node corrupts neither list but removes nothing
// meaningful, so callers keep nodes and lists paired.
func (l *List[T]) Erase(pos *Node[T]) error {
	if pos == nil {
		return api.ErrNullPointer
	}
	l.lock()
	defer l.unlock()
	l.unlink(pos)
	l.freeNode(pos)
	return nil
}

// Remove deletes every element equal to value under cmp and reports
// how many were dropped.
func (l *List[T]) Remove(value T, cmp api.Compare[T]) (int, error) {
	if cmp == nil {
		return 0, api.ErrNullPointer
	}
	l.lock()
	defer l.unlock()
	removed := 0
	for n := l.head; n != nil; {
		next := n.next
		if cmp(n.Value, value) == 0 {
			l.unlink(n)
			l.freeNode(n)
			removed++
		}
		n = next
	}
	return removed, nil
}

// Find returns the first node equal to value under cmp, or nil.
func (l *List[T]) Find(value T, cmp api.Compare[T]) *Node[T] {
	if cmp == nil {
		return nil
	}
	l.lock()
	defer l.unlock()
	for n := l.head; n != nil; n = n.next {
		if cmp(n.Value, value) == 0 {
			return n
		}
	}
	return nil
}

// Reverse flips the element order in place by swapping every node's
// link pair.
func (l *List[T]) Reverse() {
	l.lock()
	defer l.unlock()
	node := l.head
	l.head, l.tail = l.tail, l.head
	for node != nil {
		node.prev, node.next = node.next, node.prev
		node = node.prev
	}
}

// MergeFrom splices every node of src onto the back of l and leaves
// src empty. Nodes move wholesale; no elements are copied or
// destructed. Concurrent merges between the same two lists must be
// ordered by the caller.
func (l *List[T]) MergeFrom(src *List[T]) error {
	if src == nil {
		return api.ErrNullPointer
	}
	if src == l {
		return api.NewError(api.CodeInvalidArgument, "cannot merge a list into itself")
	}
	l.lock()
	defer l.unlock()
	src.lock()
	defer src.unlock()

	if src.head == nil {
		return nil
	}
	if l.head == nil {
		l.head = src.head
		l.tail = src.tail
	} else {
		l.tail.next = src.head
		src.head.prev = l.tail
		l.tail = src.tail
	}
	l.size += src.size

	src.head = nil
	src.tail = nil
	src.size = 0
	return nil
}

// Sort orders the elements by cmp using a node-splicing merge sort:
// stable, O(n log n) comparisons, no element copies.
func (l *List[T]) Sort(cmp api.Compare[T]) error {
	if cmp == nil {
		return api.ErrNullPointer
	}
	l.lock()
	defer l.unlock()
	if l.head == nil {
		return nil
	}
	l.head = mergeSortNodes(l.head, cmp)
	l.head.prev = nil
	node := l.head
	for node.next != nil {
		node = node.next
	}
	l.tail = node
	return nil
}

// mergeSortNodes sorts the chain rooted at head, splitting at the
// midpoint found by a fast/slow walk. Ties keep the left run's
// element first, which is what makes the sort stable.
func mergeSortNodes[T any](head *Node[T], cmp api.Compare[T]) *Node[T] {
	if head == nil || head.next == nil {
		return head
	}

	slow := head
	fast := head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	right := slow.next
	slow.next = nil
	right.prev = nil

	left := mergeSortNodes(head, cmp)
	right = mergeSortNodes(right, cmp)

	var dummy Node[T]
	tail := &dummy
	for left != nil && right != nil {
		if cmp(left.Value, right.Value) <= 0 {
			tail.next = left
			left.prev = tail
			left = left.next
		} else {
			tail.next = right
			right.prev = tail
			right = right.next
		}
		tail = tail.next
	}
	if left != nil {
		tail.next = left
		left.prev = tail
	} else {
		tail.next = right
		right.prev = tail
	}

	out := dummy.next
	out.prev = nil
	return out
}

// At returns a pointer to the i-th element, walking from the head.
func (l *List[T]) At(i int) (*T, error) {
	l.lock()
	defer l.unlock()
	if i < 0 || i >= l.size {
		return nil, api.ErrInvalidIndex
	}
	n := l.head
	for k := 0; k < i; k++ {
		n = n.next
	}
	return &n.Value, nil
}

// Set overwrites the i-th element, running the destructor on the old
// value first.
func (l *List[T]) Set(i int, elem T) error {
	l.lock()
	defer l.unlock()
	if i < 0 || i >= l.size {
		return api.ErrInvalidIndex
	}
	n := l.head
	for k := 0; k < i; k++ {
		n = n.next
	}
	if l.dtor != nil {
		l.dtor(&n.Value)
	}
	n.Value = elem
	return nil
}

// Clear removes every element.
func (l *List[T]) Clear() {
	l.lock()
	defer l.unlock()
	l.clearLocked()
}

func (l *List[T]) clearLocked() {
	for n := l.head; n != nil; {
		next := n.next
		l.freeNode(n)
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

// SetNodePool routes node allocation through p. Nodes already in the
// list stay where they are; only future links come from the pool.
func (l *List[T]) SetNodePool(p api.ObjectPool[Node[T]]) error {
	if p == nil {
		return api.ErrNullPointer
	}
	l.lock()
	defer l.unlock()
	l.nodePool = p
	return nil
}

// RemoveNodePool detaches the node pool. Pooled nodes still linked in
// the list are freed to the runtime when later dropped.
func (l *List[T]) RemoveNodePool() {
	l.lock()
	defer l.unlock()
	l.nodePool = nil
}

// Destroy drops all elements and marks the list unusable. Further
// mutations fail; Destroy itself is idempotent.
func (l *List[T]) Destroy() {
	l.lock()
	defer l.unlock()
	if l.destroyed {
		return
	}
	l.clearLocked()
	l.nodePool = nil
	l.destroyed = true
}

var (
	_ api.Container[int] = (*List[int])(nil)
	_ api.Lockable       = (*List[int])(nil)
)
