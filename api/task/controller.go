package task

import (
	"net/http"

	"tasklist/api/response"
	taskapp "tasklist/application/task"

	"github.com/gin-gonic/gin"
)

// Controller Task controller
type Controller struct {
	taskService *taskapp.ApplicationService
}

// NewController Create task controller
func NewController(taskService *taskapp.ApplicationService) *Controller {
	return &Controller{
		taskService: taskService,
	}
}

// RegisterRoutes Register task routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	taskGroup := router.Group("/tasks")
	{
		taskGroup.GET("", c.ListTasks)
		taskGroup.POST("", c.AddTask)
		taskGroup.DELETE("/:id", c.DeleteTask)
	}
}

// ListTasks responds with the bare JSON array of tasks.
func (c *Controller) ListTasks(ctx *gin.Context) {
	tasks, err := c.taskService.ListTasks(ctx.Request.Context())
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

// AddTask Add task
func (c *Controller) AddTask(ctx *gin.Context) {
	var req taskapp.AddTaskRequest
	if err := response.BindJSON(ctx, &req); err != nil {
		response.HandleBindingError(ctx, err)
		return
	}

	resp, err := c.taskService.AddTask(ctx.Request.Context(), req)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// DeleteTask removes every task with the path id. Unknown ids still succeed.
func (c *Controller) DeleteTask(ctx *gin.Context) {
	resp, err := c.taskService.DeleteTask(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
