package task

// AddTaskRequest add task request DTO.
// Pointer fields let binding tell an absent field apart from an empty string.
type AddTaskRequest struct {
	ID   *string `json:"id" binding:"required"`
	Text *string `json:"text" binding:"required"`
}

// TaskResponse task response DTO
type TaskResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// MessageResponse acknowledgement returned by mutating operations
type MessageResponse struct {
	Message string `json:"message"`
}

const (
	MessageTaskAdded   = "Tarefa adicionada com sucesso!"
	MessageTaskRemoved = "Tarefa removida com sucesso!"
)
