package models

type Course struct {
	ID          int     `json:"id"`
	Type        string  `json:"type"`
	DayOfWeek   string  `json:"day_of_week"`
	Time        string  `json:"time"`
	Capacity    int     `json:"capacity"`
	Duration    int     `json:"duration"`
	SkillLevel  string  `json:"skill_level"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}
