package types

import "encoding/json"

// Task statuses and types as they appear on the wire.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"

	TypeLearning = "learning"
	TypeRevision = "revision"
	TypePractice = "practice"
)

type StudyPlan struct {
	TargetDate string `json:"targetDate"` // informational, not validated against Weeks
	Weeks      []Week `json:"weeks"`
}

type Week struct {
	// WeekNumber caches the week's position in StudyPlan.Weeks. It is
	// re-derived on every save and never trusted on load.
	WeekNumber int   `json:"weekNumber"`
	Days       []Day `json:"days"`
}

type Day struct {
	// Date is an ISO YYYY-MM-DD string, possibly embedded in a longer
	// timestamp emitted by the plan generator. Matching uses containment,
	// not equality.
	Date    string  `json:"date"`
	Entries []Entry `json:"entries"`
}

type Task struct {
	ID                   string `json:"id,omitempty"`
	Subject              string `json:"subject"`
	Chapter              string `json:"chapter"`
	TaskType             string `json:"taskType"`
	EstimatedTimeMinutes int    `json:"estimatedTime"`
	Status               string `json:"status"`
}

type Break struct {
	DurationMinutes int `json:"break"`
}

// Entry is a closed union: exactly one of Task or Break is set. The stored
// JSON discriminates structurally — an object is a Break iff it carries a
// "break" duration field and no "subject" — so that check lives only in the
// codec below and old blobs stay readable.
type Entry struct {
	Task  *Task
	Break *Break
}

func TaskEntry(t Task) Entry   { return Entry{Task: &t} }
func BreakEntry(b Break) Entry { return Entry{Break: &b} }

func (e Entry) IsBreak() bool { return e.Break != nil && e.Task == nil }

func (e Entry) MarshalJSON() ([]byte, error) {
	if e.IsBreak() {
		return json.Marshal(e.Break)
	}
	if e.Task != nil {
		return json.Marshal(e.Task)
	}
	return []byte("null"), nil
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var probe struct {
		Subject *string `json:"subject"`
		Break   *int    `json:"break"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Break != nil && probe.Subject == nil {
		var b Break
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*e = Entry{Break: &b}
		return nil
	}
	var t Task
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	*e = Entry{Task: &t}
	return nil
}

// PlanRequest is the payload handed to the generator (remote or mock).
type PlanRequest struct {
	Subjects        []string `json:"subjects"`
	Chapters        []string `json:"chapters,omitempty"`
	Goals           string   `json:"goals,omitempty"`
	Strengths       []string `json:"strengths,omitempty"`
	Weaknesses      []string `json:"weaknesses,omitempty"`
	DailyMinutes    int      `json:"dailyMinutes"`
	TargetDate      string   `json:"targetDate"`
	DaysUntilTarget int      `json:"daysUntilTarget,omitempty"`
	PreferredDays   []string `json:"preferredDays,omitempty"`
	StartDate       string   `json:"startDate"`
}

// GradingItem is one question/answer pair submitted for grading.
type GradingItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Verdict is the grader's result for one item.
type Verdict struct {
	Correct       bool    `json:"correct"`
	Marks         float64 `json:"marks"`
	MaxMarks      float64 `json:"maxMarks"`
	Mistake       string  `json:"mistake,omitempty"`
	CorrectAnswer string  `json:"correctAnswer,omitempty"`
}
