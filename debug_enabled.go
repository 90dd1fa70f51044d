//go:build seqdebug

package seq

import "sync"

// Debug builds track a generation counter per container. Structural
// mutations bump it; iterators remember the generation they were created
// under and refuse to operate once it has moved on. The mutex only
// guards the counter against torn access when iterators are shared
// across goroutines during debugging - it is not a concurrency feature
// of the containers themselves.

// containerDebug is embedded in every container.
type containerDebug struct {
	mu  sync.Mutex
	gen uint64
}

// bump records a structural mutation, invalidating live iterators.
func (c *containerDebug) bump() {
	c.mu.Lock()
	c.gen++
	c.mu.Unlock()
}

func (c *containerDebug) generation() uint64 {
	c.mu.Lock()
	g := c.gen
	c.mu.Unlock()
	return g
}

// iterDebug rides along in every iterator.
type iterDebug struct {
	owner *containerDebug
	gen   uint64
}

func makeIterDebug(owner *containerDebug) iterDebug {
	return iterDebug{owner: owner, gen: owner.generation()}
}

func (d iterDebug) checkLive() {
	if d.owner == nil {
		panic("seq: use of zero-value iterator")
	}
	if d.owner.generation() != d.gen {
		panic("seq: use of invalidated iterator")
	}
}

func (d iterDebug) checkDeref(i, n int) {
	d.checkLive()
	if i < 0 || i >= n {
		panic("seq: iterator dereference out of range")
	}
}

func (d iterDebug) checkPos(i, n int) {
	d.checkLive()
	if i < 0 || i > n {
		panic("seq: iterator moved out of range")
	}
}

func (d iterDebug) checkSame(o iterDebug) {
	d.checkLive()
	o.checkLive()
	if d.owner != o.owner {
		panic("seq: iterators belong to different containers")
	}
}
