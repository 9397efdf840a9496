// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// ErrDuplicateTaskLabel is returned by SyncLoop.AddTask when the label is
// already registered. Labels identify tasks, so silently overwriting would
// hide a programmer error.
var ErrDuplicateTaskLabel = errors.New("task label already registered")
