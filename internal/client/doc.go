// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the sync engine into an embeddable runtime.
//
// It wires the transport adapter, local encrypted store, key manager, sync
// services and the event loop into a single [App], and owns the mutable
// account state (session tokens, user key material, foreground account) the
// engine needs but deliberately does not persist.
package client
