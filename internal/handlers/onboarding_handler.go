package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Yofukashi625/fangyang-wiki-app/config"
	"github.com/Yofukashi625/fangyang-wiki-app/models"

	"github.com/gin-gonic/gin"
)

// OnboardingTaskInput is the payload for creating or updating a training
// task. Days run from 1 to 10.
type OnboardingTaskInput struct {
	Day         int    `json:"day" binding:"required,min=1,max=10"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Role        string `json:"role"`
	IsCompleted bool   `json:"isCompleted"`
}

// ListOnboardingTasksHandler returns all training tasks ordered by day.
func ListOnboardingTasksHandler(c *gin.Context) {
	var tasks []models.OnboardingTask
	if err := config.DB.Order("day ASC, created_at ASC").Find(&tasks).Error; err != nil {
		slog.Error("Failed to fetch onboarding tasks from DB", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch onboarding tasks"})
		return
	}
	if tasks == nil {
		tasks = make([]models.OnboardingTask, 0)
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateOnboardingTaskHandler adds a task to a day slot.
func CreateOnboardingTaskHandler(c *gin.Context) {
	var input OnboardingTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	task := models.OnboardingTask{
		Day:         input.Day,
		Title:       input.Title,
		Description: input.Description,
		Role:        input.Role,
		IsCompleted: input.IsCompleted,
	}
	if err := config.DB.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateOnboardingTaskHandler replaces the editable fields of a task.
func UpdateOnboardingTaskHandler(c *gin.Context) {
	var task models.OnboardingTask
	if err := config.DB.First(&task, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	var input OnboardingTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	task.Day = input.Day
	task.Title = input.Title
	task.Description = input.Description
	task.Role = input.Role
	task.IsCompleted = input.IsCompleted
	if err := config.DB.Save(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteOnboardingTaskHandler removes a task.
func DeleteOnboardingTaskHandler(c *gin.Context) {
	var task models.OnboardingTask
	if err := config.DB.First(&task, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	if err := config.DB.Delete(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
