package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faresmergui/docker-student-stack/db"
	"github.com/faresmergui/docker-student-stack/models"
)

// BasePath is the versioned prefix every API route lives under.
const BasePath = "/pozos/api/v1.0"

// APIHandler holds the dependencies for API handlers, like the roster store
type APIHandler struct {
	Store *db.FileStore
}

// NewAPIHandler creates a new APIHandler
func NewAPIHandler(store *db.FileStore) *APIHandler {
	return &APIHandler{
		Store: store,
	}
}

// GetStudentAges handles GET /pozos/api/v1.0/get_student_ages
func (h *APIHandler) GetStudentAges(c *gin.Context) {
	students, err := h.Store.GetAllStudents()
	if err != nil {
		log.Printf("Error in GetStudentAges handler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve student ages"})
		return
	}
	if students == nil {
		// Return empty list instead of null for JSON consistency
		c.JSON(http.StatusOK, []models.Student{})
		return
	}
	c.JSON(http.StatusOK, students)
}

// PingHandler handles GET /pozos/api/v1.0/ping, without auth, for liveness checks
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Router builds the gin engine with all API routes registered. The student
// ages endpoint sits behind basic auth; ping does not.
func Router(h *APIHandler, username, password string) *gin.Engine {
	router := gin.Default()

	api := router.Group(BasePath)
	{
		api.GET("/ping", PingHandler)

		authorized := api.Group("", gin.BasicAuth(gin.Accounts{
			username: password,
		}))
		authorized.GET("/get_student_ages", h.GetStudentAges)
	}

	return router
}
