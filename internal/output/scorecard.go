package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mgraile/augur/pkg/analyzer/entity"
)

// Scorecard renders a health score with its grade and component
// breakdown.
type Scorecard struct {
	Title      string
	Score      float64
	Grade      entity.Grade
	Components []ScoreComponent
	Data       any
}

// ScoreComponent is one labeled value on a scorecard.
type ScoreComponent struct {
	Label string
	Value string
}

func (s *Scorecard) RenderData() any {
	if s.Data != nil {
		return s.Data
	}
	return s
}

func (s *Scorecard) RenderText(w io.Writer, colored bool) error {
	if s.Title != "" {
		if colored {
			color.New(color.Bold).Fprintln(w, s.Title)
		} else {
			fmt.Fprintln(w, s.Title)
		}
	}

	grade := string(s.Grade)
	if colored {
		grade = gradeColor(s.Grade).Sprint(grade)
	}
	fmt.Fprintf(w, "  Health: %.1f%%  Grade: %s\n", s.Score*100, grade)

	for _, c := range s.Components {
		fmt.Fprintf(w, "  %-20s %s\n", c.Label, c.Value)
	}
	fmt.Fprintln(w)
	return nil
}

func (s *Scorecard) RenderMarkdown(w io.Writer) error {
	if s.Title != "" {
		fmt.Fprintf(w, "## %s\n\n", s.Title)
	}
	fmt.Fprintf(w, "**Health:** %.1f%% (grade %s)\n\n", s.Score*100, s.Grade)
	for _, c := range s.Components {
		fmt.Fprintf(w, "- %s: %s\n", c.Label, c.Value)
	}
	fmt.Fprintln(w)
	return nil
}

func gradeColor(g entity.Grade) *color.Color {
	switch g {
	case entity.GradeAPlus, entity.GradeA, entity.GradeAMinus:
		return color.New(color.FgGreen)
	case entity.GradeBPlus, entity.GradeB, entity.GradeBMinus:
		return color.New(color.FgCyan)
	case entity.GradeCPlus, entity.GradeC, entity.GradeCMinus:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
