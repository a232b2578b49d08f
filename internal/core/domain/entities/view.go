package entities

type View struct {
	Tasks          []Task
	RemainingCount int
	Filter         Filter
}
