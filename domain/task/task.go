package task

// Task is a unit of to-do text identified by a caller-supplied id.
// Ids are not required to be unique.
type Task struct {
	id   string
	text string
}

// New builds a task. Any string, including the empty string, is accepted for both fields.
func New(id, text string) *Task {
	return &Task{id: id, text: text}
}

func (t *Task) ID() string {
	return t.id
}

func (t *Task) Text() string {
	return t.text
}
