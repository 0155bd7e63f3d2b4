package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	assert.Equal(t, "fallback", GetEnv("CFG_TEST_UNSET", "fallback"))
	t.Setenv("CFG_TEST_STR", "value")
	assert.Equal(t, "value", GetEnv("CFG_TEST_STR", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	assert.Equal(t, 7, GetEnvInt("CFG_TEST_UNSET", 7))
	t.Setenv("CFG_TEST_INT", "42")
	assert.Equal(t, 42, GetEnvInt("CFG_TEST_INT", 7))
	t.Setenv("CFG_TEST_INT", "not a number")
	assert.Equal(t, 7, GetEnvInt("CFG_TEST_INT", 7))
}

func TestGetEnvFloat(t *testing.T) {
	assert.Equal(t, 1.5, GetEnvFloat("CFG_TEST_UNSET", 1.5))
	t.Setenv("CFG_TEST_FLOAT", "-9.81")
	assert.Equal(t, -9.81, GetEnvFloat("CFG_TEST_FLOAT", 1.5))
	t.Setenv("CFG_TEST_FLOAT", "nope")
	assert.Equal(t, 1.5, GetEnvFloat("CFG_TEST_FLOAT", 1.5))
}

func TestGetEnvDuration(t *testing.T) {
	fallback := 250 * time.Millisecond
	assert.Equal(t, fallback, GetEnvDuration("CFG_TEST_UNSET", fallback))
	t.Setenv("CFG_TEST_DUR", "1s")
	assert.Equal(t, time.Second, GetEnvDuration("CFG_TEST_DUR", fallback))
	t.Setenv("CFG_TEST_DUR", "soon")
	assert.Equal(t, fallback, GetEnvDuration("CFG_TEST_DUR", fallback))
}
