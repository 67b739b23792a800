/*
Package session implements session management over a StateStore.

It serializes actions on one session with reference-counted per-session
mutexes and, when a DistributedLocker is configured, a distributed lock so
that several replicas can share a Redis store.
*/
package session
