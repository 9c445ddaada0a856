package dto

type CounterOutput struct {
	Phrase    string `json:"phrase"`
	Title     string `json:"title"`
	Arabic    string `json:"arabic"`
	Meaning   string `json:"meaning"`
	Count     int    `json:"count"`
	Target    int    `json:"target"`
	Completed bool   `json:"completed"`
}

type StateOutput struct {
	Counters     []CounterOutput `json:"counters"`
	AllCompleted bool            `json:"allCompleted"`
}

type IncrementOutput struct {
	Counter CounterOutput `json:"counter"`
	Changed bool          `json:"changed"`
	State   StateOutput   `json:"state"`
}
