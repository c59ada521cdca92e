package models

// ClassInstance is one scheduled occurrence of a course. The date stays a
// string because the producing admin tool writes it in several formats;
// parsing is deferred to the dateparse package.
type ClassInstance struct {
	ID       int    `json:"id"`
	CourseID int    `json:"course_id"`
	Date     string `json:"date"`
	Teacher  string `json:"teacher"`
	Comment  string `json:"comment,omitempty"`
}
