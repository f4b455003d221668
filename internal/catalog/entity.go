package catalog

type WeekCard struct {
	Index         int    `json:"index"`
	Name          string `json:"name"`
	QuestionCount int    `json:"question_count"`
	LearnURL      string `json:"learn_url,omitempty"`
}

type Catalog struct {
	FullSeriesCount int        `json:"full_series_count"`
	CourseURL       string     `json:"course_url,omitempty"`
	Weeks           []WeekCard `json:"weeks"`
}
