package models

// Student represents one student record exposed by the API.
type Student struct {
	Name string `json:"name"` // Student name, unique within the roster
	Age  string `json:"age"`  // Age, kept as a string on the wire and in the data file
}

// RosterDocument mirrors the on-disk data file:
// {"student_age": {"<name>": "<age>", ...}}
type RosterDocument struct {
	StudentAge map[string]string `json:"student_age"`
}
