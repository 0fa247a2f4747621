// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the session-auth server.
// It defines the Worker interface and a Workers aggregate that runs
// several workers until their context is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
