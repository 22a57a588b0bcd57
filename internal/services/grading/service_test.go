package grading

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SK1028846/fantasy-football-pipeline/internal/model"
)

func TestStaticGraderReturnsConfiguredGrade(t *testing.T) {
	g := NewStaticGrader("B")

	grade, err := g.Grade(context.Background(), []string{"Player1"}, []string{"Player2"})
	require.NoError(t, err)
	assert.Equal(t, model.Grade("B"), grade)
}

func TestStaticGraderDefaultsToA(t *testing.T) {
	g := NewStaticGrader("")

	grade, err := g.Grade(context.Background(), []string{"Player1"}, []string{"Player2"})
	require.NoError(t, err)
	assert.Equal(t, DefaultGrade, grade)
}

func TestStaticGraderIsDeterministic(t *testing.T) {
	g := NewStaticGrader(DefaultGrade)

	first, err := g.Grade(context.Background(), []string{"Player1"}, []string{"Player2", "Player3"})
	require.NoError(t, err)
	second, err := g.Grade(context.Background(), []string{"Player1"}, []string{"Player2", "Player3"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
