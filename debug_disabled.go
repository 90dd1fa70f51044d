//go:build !seqdebug

package seq

// Debugging is compiled out: the debug state is zero-size and every check
// is an empty method the compiler can inline away. Out-of-range element
// access still ends in a slice bounds panic rather than corruption; what
// is lost without the tag is early detection (stale iterators, foreign
// iterator comparisons, positioning past the ends).

// containerDebug is embedded in every container.
type containerDebug struct{}

// bump records a structural mutation. No-op in release builds.
func (*containerDebug) bump() {}

// iterDebug rides along in every iterator.
type iterDebug struct{}

func makeIterDebug(*containerDebug) iterDebug { return iterDebug{} }

func (iterDebug) checkDeref(i, n int) {}
func (iterDebug) checkPos(i, n int)   {}
func (iterDebug) checkSame(iterDebug) {}
