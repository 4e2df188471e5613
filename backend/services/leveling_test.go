package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		score  int
		passed bool
		level  string
	}{
		{0, false, "Beginner"},
		{3, false, "Beginner"},
		{5, false, "Beginner"},
		{6, true, "Intermediate"},
		{7, true, "Intermediate"},
		{8, true, "Intermediate"},
		{9, true, "Advanced"},
		{10, true, "Advanced"},
	}

	for _, tc := range cases {
		passed, level := Classify(tc.score)
		assert.Equal(t, tc.passed, passed, "score %d", tc.score)
		assert.Equal(t, tc.level, level, "score %d", tc.score)
	}
}

func TestClassifyPassBoundaryIsNotLevelBoundary(t *testing.T) {
	// 6-8 already pass but stay Intermediate; Advanced starts at 9.
	passed, level := Classify(8)
	assert.True(t, passed)
	assert.Equal(t, LevelIntermediate, level)

	passed, level = Classify(9)
	assert.True(t, passed)
	assert.Equal(t, LevelAdvanced, level)
}
