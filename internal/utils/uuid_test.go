// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	_, err = uuid.Parse(second)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
