/*
Package observability provides tools for monitoring the pathfinder engine.

It turns engine lifecycle hooks into Prometheus metrics and structured log
lines. Both are plain domain.LifecycleHooks values, so they can be merged and
handed to a Session or Engine without the core knowing about either.
*/
package observability
