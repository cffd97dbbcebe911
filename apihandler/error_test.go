package apihandler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewErrorDefaultsTo400(t *testing.T) {
	err := NewError("nope", 0)
	assert.Equal(t, http.StatusBadRequest, err.Status())
	assert.Equal(t, "nope", err.Message())
	assert.Equal(t, "nope", err.Error())
}

func TestNewErrorKeepsStatus(t *testing.T) {
	err := NewError("forbidden", http.StatusForbidden)
	assert.Equal(t, http.StatusForbidden, err.Status())
}

func TestNewErrorPayloadSerializes(t *testing.T) {
	err := NewErrorPayload(map[string]any{"reason": "denied"}, http.StatusForbidden)
	assert.JSONEq(t, `{"reason":"denied"}`, err.Message())
	assert.Equal(t, http.StatusForbidden, err.Status())
}

func TestNewErrorPayloadUnserializable(t *testing.T) {
	err := NewErrorPayload(func() {}, 0)
	assert.Equal(t, "unserializable error payload", err.Message())
	assert.Equal(t, http.StatusBadRequest, err.Status())
}

func TestConfigShortCircuitDefault(t *testing.T) {
	assert.True(t, Config{}.shortCircuit())
	assert.True(t, Config{Return400ValidationError: Bool(true)}.shortCircuit())
	assert.False(t, Config{Return400ValidationError: Bool(false)}.shortCircuit())
}
