package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	state, err := GenerateState(map[string]string{"flow": "register"})
	require.NoError(t, err)

	data, err := DecodeState(state)
	require.NoError(t, err)
	assert.Equal(t, "register", data["flow"])
}

func TestStateUniqueness(t *testing.T) {
	a, err := GenerateState(map[string]string{"flow": "login"})
	require.NoError(t, err)
	b, err := GenerateState(map[string]string{"flow": "login"})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDecodeStateInvalid(t *testing.T) {
	_, err := DecodeState("garbage")
	assert.Error(t, err)

	_, err = DecodeState("a.not-base64-json!!")
	assert.Error(t, err)
}
