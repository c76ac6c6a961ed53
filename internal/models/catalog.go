package models

// School is a catalog entry for a participating school.
type School struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Festival is a catalog entry for a festival owned by one school.
type Festival struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	SchoolID int64  `json:"school_id"`
}
