package domain

// CourseProgress summarizes a user's progress within one course, as computed
// by the backend analytics endpoint
type CourseProgress struct {
	CourseID             int      `json:"course_id"`
	CourseTitle          string   `json:"course_title"`
	TotalMaterials       int      `json:"total_materials"`
	CompletedMaterials   int      `json:"completed_materials"`
	CompletionPercentage float64  `json:"completion_percentage"`
	TotalTime            float64  `json:"total_time"`
	AvgScore             *float64 `json:"avg_score,omitempty"`
}
