package configs

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("WELLNESS_TEST_INT", "42")
	t.Setenv("WELLNESS_TEST_BAD_INT", "forty")
	t.Setenv("WELLNESS_TEST_BOOL", "true")

	assert.Equal(t, 42, GetEnvInt("WELLNESS_TEST_INT", 1))
	assert.Equal(t, 7, GetEnvInt("WELLNESS_TEST_BAD_INT", 7))
	assert.Equal(t, 3, GetEnvInt("WELLNESS_TEST_MISSING", 3))
	assert.True(t, GetEnvBool("WELLNESS_TEST_BOOL", false))
	assert.False(t, GetEnvBool("WELLNESS_TEST_MISSING", false))
	assert.Equal(t, "fallback", GetEnv("WELLNESS_TEST_MISSING", "fallback"))
}

func TestInitLogger(t *testing.T) {
	InitLogger("debug", "json")
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	_, isJSON := Log.Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)

	InitLogger("nonsense", "text")
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
}
