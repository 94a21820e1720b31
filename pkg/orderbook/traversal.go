package orderbook

// height returns l's stored height, or -1 for a nil (absent) child. Spec §9
// fixes the source's getHeight, which defaulted an absent child's height to
// 0 and so could not distinguish "absent" from "leaf"; -1 restores that
// distinction so balanceFactor is correct at the edges of the tree.
func height[ID comparable](l *Limit[ID]) int {
	if l == nil {
		return -1
	}
	return l.height
}

// minLimit descends left from subtreeRoot to the lowest-priced limit.
// Iterative per spec §4.3 ("iterative descent"), grounded on hftlob.h's
// getMinimumLimit.
func minLimit[ID comparable](subtreeRoot *Limit[ID]) *Limit[ID] {
	if subtreeRoot == nil {
		return nil
	}
	cur := subtreeRoot
	for cur.Left != nil {
		cur = cur.Left
	}
	return cur
}

// maxLimit descends right from subtreeRoot to the highest-priced limit.
// Grounded on hftlob.h's getMaximumLimit.
func maxLimit[ID comparable](subtreeRoot *Limit[ID]) *Limit[ID] {
	if subtreeRoot == nil {
		return nil
	}
	cur := subtreeRoot
	for cur.Right != nil {
		cur = cur.Right
	}
	return cur
}

// grandparent returns l's parent's parent, or nil if fewer than two
// ancestors exist. Grounded on hftlob.h's getGrandpa/hasGrandpa.
func grandparent[ID comparable](l *Limit[ID]) *Limit[ID] {
	if l == nil || l.Parent == nil {
		return nil
	}
	return l.Parent.Parent
}

// isSentinel reports whether l is the always-present anchor node a
// LimitTree is rooted at, rather than a real price level. Grounded on
// hftlob.h's limitIsRoot, renamed to reflect that the sentinel is never a
// "real" tree member (spec §3).
func isSentinel[ID comparable](l *Limit[ID]) bool {
	return l != nil && l.sentinel
}
