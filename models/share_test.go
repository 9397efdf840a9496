// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharesLooselyEqual(t *testing.T) {
	s1 := Share{ShareID: "S1", VaultID: "V1", Permission: 7, ExpireTime: 0}
	s2 := Share{ShareID: "S2", VaultID: "V2", Permission: 1, ExpireTime: 100}

	tests := []struct {
		name string
		a, b []Share
		want bool
	}{
		{"both empty", nil, []Share{}, true},
		{"same order", []Share{s1, s2}, []Share{s1, s2}, true},
		{"order ignored", []Share{s1, s2}, []Share{s2, s1}, true},
		{"length mismatch", []Share{s1}, []Share{s1, s2}, false},
		{"different share set", []Share{s1}, []Share{s2}, false},
		{
			"permission change detected",
			[]Share{s1},
			[]Share{{ShareID: "S1", VaultID: "V1", Permission: 1}},
			false,
		},
		{
			"expiry change detected",
			[]Share{s1},
			[]Share{{ShareID: "S1", VaultID: "V1", Permission: 7, ExpireTime: 42}},
			false,
		},
		{
			"content and timestamp churn ignored",
			[]Share{s1},
			[]Share{{ShareID: "S1", VaultID: "V1", Permission: 7, Content: "blob", ModifyTime: 99, KeyRotation: 5}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SharesLooselyEqual(tt.a, tt.b))
		})
	}
}
