package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetentionFromDays(t *testing.T) {
	r, err := retentionFromDays(30, 90)
	require.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, r.Completed)
	assert.Equal(t, 90*24*time.Hour, r.Failed)

	_, err = retentionFromDays(-1, 90)
	assert.Error(t, err)
}
