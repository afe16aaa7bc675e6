// Package schedule linearizes an operator DAG (core.Graph) into a
// deterministic execution order.
//
// Build computes each operator's in-degree (number of pending producers),
// seeds a FIFO ready queue with zero-in-degree operators in graph insertion
// order, and repeatedly pops the front, appends it to the schedule, and
// enqueues any successor whose in-degree has just reached zero, preserving
// insertion order among operators that become ready at the same time. This
// is Kahn's algorithm with an explicit FIFO tie-break; the same DAG always
// yields the same schedule.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package schedule
