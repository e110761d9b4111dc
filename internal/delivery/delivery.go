// Package delivery holds the inbound adapters: the admin API and the audit worker.
package delivery

import "context"

// Delivery is a server started by the process entrypoint. Serve blocks
// until the server stops; shutdown happens through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
