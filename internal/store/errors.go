// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	ErrShareNotFound = errors.New("share not found")
	ErrItemNotFound  = errors.New("item not found")
	ErrQueryBuild    = errors.New("error building SQL query")
)
