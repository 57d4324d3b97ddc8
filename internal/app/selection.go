package app

// Cursor is a list selection index. Moves wrap around the list length and
// are no-ops on an empty list.
type Cursor struct {
	index int
}

func (c Cursor) Index() int { return c.index }

func (c *Cursor) Up(n int) {
	if n <= 0 {
		return
	}
	if c.index <= 0 || c.index >= n {
		c.index = n - 1
		return
	}
	c.index--
}

func (c *Cursor) Down(n int) {
	if n <= 0 {
		return
	}
	c.index = (c.index + 1) % n
}

// Clamp pulls the cursor back inside a list of length n; an empty list
// resets it to zero.
func (c *Cursor) Clamp(n int) {
	if c.index >= n {
		c.index = max(n-1, 0)
	}
	if c.index < 0 {
		c.index = 0
	}
}

// Set moves the cursor to i, which the caller has already bounds-checked.
func (c *Cursor) Set(i int) {
	c.index = i
}
