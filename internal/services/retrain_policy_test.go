package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldRetrainEveryTenth(t *testing.T) {
	p := RetrainPolicy{Threshold: 10}

	assert.False(t, p.ShouldRetrain(0))
	assert.False(t, p.ShouldRetrain(1))
	assert.False(t, p.ShouldRetrain(9))
	assert.True(t, p.ShouldRetrain(10))
	assert.False(t, p.ShouldRetrain(11))
	assert.True(t, p.ShouldRetrain(20))
	assert.True(t, p.ShouldRetrain(1000))
}

func TestShouldRetrainDefaultThreshold(t *testing.T) {
	var p RetrainPolicy

	assert.False(t, p.ShouldRetrain(5))
	assert.True(t, p.ShouldRetrain(DefaultRetrainThreshold))
	assert.True(t, p.ShouldRetrain(3*DefaultRetrainThreshold))
}

func TestShouldRetrainCustomThreshold(t *testing.T) {
	p := RetrainPolicy{Threshold: 3}

	assert.False(t, p.ShouldRetrain(2))
	assert.True(t, p.ShouldRetrain(3))
	assert.False(t, p.ShouldRetrain(4))
	assert.True(t, p.ShouldRetrain(6))
}
