// Package transport provides the shared HTTP plumbing for external calls:
// a client factory with strict timeouts and the APIError type returned for
// non-2xx marketplace responses.
//
// The tool performs no retries; a transport failure surfaces to the sync
// orchestrator, which stops the remaining steps for that marketplace.
package transport
