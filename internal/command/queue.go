package command

import "strings"

// Queue is an ordered FIFO of pending commands. It has no size limit and is
// not safe for concurrent use; the game mutates it from a single loop.
type Queue struct {
	items []Command
}

func NewQueue(cmds ...Command) *Queue {
	q := &Queue{}
	for _, c := range cmds {
		q.Enqueue(c)
	}
	return q
}

// Enqueue appends c to the tail of the queue.
func (q *Queue) Enqueue(c Command) {
	q.items = append(q.items, c)
}

// DequeueNext removes and returns the head of the queue. The boolean is false
// when the queue was empty.
func (q *Queue) DequeueNext() (Command, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	c := q.items[0]
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return c, true
}

func (q *Queue) Clear() {
	q.items = nil
}

func (q *Queue) Len() int {
	return len(q.items)
}

// Commands returns a copy of the pending commands in execution order.
func (q *Queue) Commands() []Command {
	out := make([]Command, len(q.items))
	copy(out, q.items)
	return out
}

// String lists the pending commands, e.g. "Up, Right, Right".
func (q *Queue) String() string {
	parts := make([]string, len(q.items))
	for i, c := range q.items {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
