package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewAppliesLevelToInstanceOnly(t *testing.T) {
	before := zerolog.GlobalLevel()

	log := New(Config{Level: "warn"})

	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
	assert.Equal(t, before, zerolog.GlobalLevel())
}

func TestNewDefaultsToInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, New(Config{}).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New(Config{Level: "verbose"}).GetLevel())
}
