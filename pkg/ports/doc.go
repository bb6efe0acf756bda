/*
Package ports defines the driven ports (interfaces) for the chempath engine.

These interfaces decouple the planner from external implementations, allowing
it to work with different cache backends.

# Key Interfaces

  - PathCache: Stores completed search outcomes (in memory or in Redis).
*/
package ports
