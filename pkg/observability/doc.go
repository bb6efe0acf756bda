/*
Package observability provides tools for monitoring path searches.

It includes Prometheus collectors fed by domain.SearchHooks, a cache
decorator that counts hits and misses, and hooks that write structured
search traces to a slog.Logger.
*/
package observability
