/*
Package observability turns wizard lifecycle events into structured log lines
and Prometheus metrics.

Metrics are registered on a caller-supplied registry so several engines (or
tests) never collide on the global default registerer. Hooks from several
sources are merged with Combine.
*/
package observability
