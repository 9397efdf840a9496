// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Engine is the minimal lifecycle contract for the embeddable sync runtime.
type Engine interface {
	// Run starts the background sync loop and blocks until ctx is done.
	Run(ctx context.Context) error
}
