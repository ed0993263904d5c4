package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_Usage(t *testing.T) {
	require.Equal(t, 2, hashPassword(nil))
	require.Equal(t, 2, hashPassword([]string{""}))
	require.Equal(t, 2, hashPassword([]string{"a", "b"}))
}

func TestHashPassword(t *testing.T) {
	require.Equal(t, 0, hashPassword([]string{"s3cret"}))
}
