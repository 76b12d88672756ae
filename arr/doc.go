// Package arr provides standalone helpers for plain Go slices and
// map[string]any values: head/tail access, plucking and method invocation,
// ordering, zipping and flattening, set operations, and map merging.
//
// Helpers never modify their slice arguments; [Extend], [Defaults] and [Set]
// modify the destination map on purpose.
//
//	arr.Zip([]int{1, 2, 3}, []int{4, 5})           // → [[1 4] [2 5] [3 0]]
//	arr.Intersection([]int{1, 2, 3}, []int{2, 3})  // → [2 3]
//	arr.Difference([]int{1, 2, 3}, []int{2})       // → [1 3]
//	arr.PluckPath(users, "address.city")
//
// Equality in the set operations is Go's ==.
package arr
