/*
Package ports defines the driven ports (interfaces) for the Hanoi engine.

These interfaces decouple the core logic from external implementations,
allowing the serve-mode boundary to persist playing sessions in various
backends (in-memory for tests and single-process use, local JSON files,
Redis for shared deployments) without the core knowing about storage.

# Key Interfaces

  - SessionStore: Responsible for persisting and loading playing Sessions.
*/
package ports
