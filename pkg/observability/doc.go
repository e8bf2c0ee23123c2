/*
Package observability provides tools for monitoring the Hanoi engine.

It includes Prometheus collectors for solve and playback activity, exposed
as playback hooks so the coordinator stays free of metrics concerns.
*/
package observability
