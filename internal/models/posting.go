package models

// Posting is one raw job listing as extracted from the listings page.
// Fields the extractor could not find stay empty strings.
type Posting struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Experience  string `json:"experience"`
	Description string `json:"description"`
	PostedDate  string `json:"posted_date"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	Skills      string `json:"skills"`
}

// QualifiedPosting is a posting that survived qualification,
// extended with its tier and the resolved employer careers page.
// Created once per survivor and never mutated afterwards.
type QualifiedPosting struct {
	Posting
	JobTier    string `json:"job_tier"`
	CareerLink string `json:"job_link"`
}
