package grading

import (
	"context"
	"errors"

	"github.com/SK1028846/fantasy-football-pipeline/internal/model"
)

// ErrGradingFailure indicates the grading backend could not produce a grade
var ErrGradingFailure = errors.New("grading failed")

// DefaultGrade is the grade the static grader assigns to every trade
const DefaultGrade = model.Grade("A")

// Grader evaluates a proposed trade and produces a letter grade.
// Implementations are expected to be deterministic for a given input.
type Grader interface {
	Grade(ctx context.Context, sideA, sideB []string) (model.Grade, error)
}

// StaticGrader assigns the same grade to every trade. It stands in for a
// real valuation model until one is plugged in.
type StaticGrader struct {
	grade model.Grade
}

// NewStaticGrader creates a grader that always returns the given grade
func NewStaticGrader(grade model.Grade) *StaticGrader {
	if grade == "" {
		grade = DefaultGrade
	}
	return &StaticGrader{grade: grade}
}

var _ Grader = (*StaticGrader)(nil)

func (g *StaticGrader) Grade(ctx context.Context, sideA, sideB []string) (model.Grade, error) {
	return g.grade, nil
}
