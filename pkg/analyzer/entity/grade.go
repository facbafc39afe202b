package entity

// Grade is a letter grade from A+ to F. Higher grades indicate better
// codebase health.
type Grade string

const (
	GradeAPlus  Grade = "A+"
	GradeA      Grade = "A"
	GradeAMinus Grade = "A-"
	GradeBPlus  Grade = "B+"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B-"
	GradeCPlus  Grade = "C+"
	GradeC      Grade = "C"
	GradeCMinus Grade = "C-"
	GradeD      Grade = "D"
	GradeF      Grade = "F"
)

// GradeFromScore converts a 0-100 score to a letter grade.
func GradeFromScore(score float64) Grade {
	switch {
	case score >= 95.0:
		return GradeAPlus
	case score >= 90.0:
		return GradeA
	case score >= 85.0:
		return GradeAMinus
	case score >= 80.0:
		return GradeBPlus
	case score >= 75.0:
		return GradeB
	case score >= 70.0:
		return GradeBMinus
	case score >= 65.0:
		return GradeCPlus
	case score >= 60.0:
		return GradeC
	case score >= 55.0:
		return GradeCMinus
	case score >= 50.0:
		return GradeD
	default:
		return GradeF
	}
}
