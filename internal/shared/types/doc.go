// Package types provides shared data structures for the numerics backend.
//
// This package defines the core types used across all backend components,
// ensuring type safety and consistent data structures.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Parameter: Tool parameter specification
//   - Context: Execution context for operations
//   - Result: Standard operation result
//
// Request Types:
//   - ExecuteRequest: Service tool execution
//   - DiscoverRequest: Intent-based service discovery
package types
