package command

// Queue is an unbounded FIFO of pending commands. It is not safe for
// concurrent use; the dispatch loop owns it.
type Queue struct {
	commands []Command
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends a command.
func (q *Queue) Push(c Command) {
	q.commands = append(q.commands, c)
}

// Pop removes and returns the oldest command. The second return value is
// false when the queue is empty.
func (q *Queue) Pop() (Command, bool) {
	if len(q.commands) == 0 {
		return nil, false
	}
	c := q.commands[0]
	q.commands[0] = nil
	q.commands = q.commands[1:]
	if len(q.commands) == 0 {
		q.commands = nil
	}
	return c, true
}

// Len returns the number of pending commands.
func (q *Queue) Len() int {
	return len(q.commands)
}
