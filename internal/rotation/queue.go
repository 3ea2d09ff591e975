package rotation

import "image/color"

// queue is a FIFO ring buffer. The pool pushes before it pops, so the buffer
// holds at most reserve+1 colours and never grows after construction.
type queue struct {
	buf  []color.RGBA
	head int
	size int
}

func newQueue(initial []color.RGBA) queue {
	q := queue{buf: make([]color.RGBA, len(initial)+1)}
	for _, c := range initial {
		q.push(c)
	}
	return q
}

func (q *queue) push(c color.RGBA) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = c
	q.size++
}

func (q *queue) pop() color.RGBA {
	c := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return c
}

func (q *queue) items() []color.RGBA {
	out := make([]color.RGBA, q.size)
	for i := range out {
		out[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	return out
}

func (q *queue) grow() {
	buf := make([]color.RGBA, 2*len(q.buf)+1)
	copy(buf, q.items())
	q.buf = buf
	q.head = 0
}
