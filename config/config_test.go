package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRoundTrip(t *testing.T) {
	c := &HarnessConfig{Dealers: 3, Nodes: 5, Threshold: 2}
	b, err := c.Bytes()
	require.NoError(t, err)

	got, err := Load(bytes.NewReader(b))
	require.NoError(t, err)
	require.Equal(t, c, got)
}

func TestConfirmThreshold(t *testing.T) {
	c := &HarnessConfig{Dealers: 3, Nodes: 5, Threshold: 2}
	require.Equal(t, 5, c.ConfirmThreshold())
}

func TestValidateRejectsBadThreshold(t *testing.T) {
	c := &HarnessConfig{Dealers: 1, Nodes: 5, Threshold: 5}
	require.Error(t, c.Validate())
}
