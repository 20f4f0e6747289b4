package server_test

import (
	"testing"

	"bloom/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Addr(t *testing.T) {
	c := server.Config{Port: "8080"}
	assert.Equal(t, ":8080", c.Addr())
}

func TestConfig_Protected(t *testing.T) {
	assert.False(t, server.Config{}.Protected())
	assert.True(t, server.Config{ApiKey: "secret"}.Protected())
}
