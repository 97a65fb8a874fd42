package models

type Alumni struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	GraduationYear int    `json:"graduationYear"`
	Profession     string `json:"profession"`
	Location       string `json:"location,omitempty"`
	Email          string `json:"email,omitempty"`
}

// NewAlumni is a directory entry before the store assigns its id.
type NewAlumni struct {
	Name           string `json:"name"`
	GraduationYear int    `json:"graduationYear"`
	Profession     string `json:"profession"`
	Location       string `json:"location"`
	Email          string `json:"email"`
}
