package model

// QuestionInfo carries the metadata rendered for a single LeetCode question.
// When Premium is true the upstream service withholds the body, so
// Description and ExampleOne are empty.
type QuestionInfo struct {
	Premium         bool
	QuestionID      int
	Difficulty      string
	Title           string
	Link            string
	TotalAccepted   int
	TotalSubmission int
	AcRate          float64
	QuestionRating  int // community rating, zero when unknown
	Description     string
	ExampleOne      string
	FollowUp        string // empty when the question has no follow-up
}
