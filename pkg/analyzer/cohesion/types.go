package cohesion

// ClassResult holds cohesion and coupling scores for one class.
// Cohesion is the inverse of the classical LCOM convention: higher
// means more cohesive. Coupling is likewise inverted: higher means
// less coupled to code outside the project.
type ClassResult struct {
	Name     string  `json:"name"`
	Filepath string  `json:"filepath,omitempty"`
	Methods  int     `json:"methods"`
	Cohesion float64 `json:"cohesion"`
	Coupling float64 `json:"coupling"`
}

// FileResult holds coupling metrics for one file.
type FileResult struct {
	Path        string  `json:"path"`
	Afferent    int     `json:"afferent"`
	Efferent    int     `json:"efferent"`
	Instability float64 `json:"instability"`
}

// Summary provides aggregate cohesion/coupling statistics.
type Summary struct {
	TotalClasses   int     `json:"total_classes"`
	TotalFiles     int     `json:"total_files"`
	AvgCohesion    float64 `json:"avg_cohesion"`
	AvgCoupling    float64 `json:"avg_coupling"`
	AvgInstability float64 `json:"avg_instability"`
}

// Analysis is the snapshot-wide cohesion/coupling result.
type Analysis struct {
	Classes []ClassResult `json:"classes"`
	Files   []FileResult  `json:"files"`
	Summary Summary       `json:"summary"`
}
