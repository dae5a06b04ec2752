// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/go-digest/pkg/hashers"
)

func Test_OneMillionA(t *testing.T) {
	t.Parallel()

	expected := mustHex(t, "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0")

	err := OneMillionA[hashers.SHA256](expected)
	assert.NoError(t, err)

	err = OneMillionA[fakeFixed](expected)
	assert.NoError(t, err)

	wrong := append([]byte{}, expected...)
	wrong[31] ^= 1
	err = OneMillionA[hashers.SHA256](wrong)
	assert.ErrorIs(t, err, ErrMismatch)

	var mismatchErr *MismatchError
	require.ErrorAs(t, err, &mismatchErr)
	assert.Equal(t, OneMillionChars, mismatchErr.Strategy)
	assert.Equal(t, wrong, mismatchErr.Expected)
	assert.Equal(t, expected, mismatchErr.Got)
	assert.Contains(t, Describe(err), "failed vector 0: one million a\n")
}
