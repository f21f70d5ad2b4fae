package model

// Submissions holds accepted-submission counts split by difficulty.
type Submissions struct {
	Easy   int
	Medium int
	Hard   int
	Score  int
}

// UserStats describes a single user's solve record.
type UserStats struct {
	RealName    string
	Submissions Submissions
}

// Score weighs accepted submissions by difficulty. It is zero for an empty
// record and grows with every additional accepted problem.
func Score(easy, medium, hard int) int {
	return easy + 3*medium + 7*hard
}
