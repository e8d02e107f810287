// Package tasks tracks long-running backend jobs whose progress arrives
// asynchronously over the push channel.
//
// A job is identified by a routing key derived from its kind and a
// normalized file path ([RoutingKey]); the same derivation runs on the
// request side and the message side so both resolve to one record. The
// [Tracker] registry owns all active records and is mutated only by inbound
// protocol messages; terminal messages remove the record, and duplicates or
// lookup misses are silent no-ops. The [Client] fires the task-initiation
// and cancellation HTTP requests; outcomes always arrive via the channel,
// never the HTTP response.
package tasks
