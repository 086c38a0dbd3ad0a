// Package collections provides generic linear containers: a LIFO Stack and a
// double-ended Deque.
//
// Removing or inspecting an element of an empty container is not an error.
// Such calls return the zero value of T together with false, and leave the
// container unchanged.
//
// Containers are not safe for concurrent use.
package collections
