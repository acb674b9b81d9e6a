package website

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faresmergui/docker-student-stack/models"
)

// PageHandler renders the student list page from live API data.
type PageHandler struct {
	Client *StudentClient
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(client *StudentClient) *PageHandler {
	return &PageHandler{
		Client: client,
	}
}

// Index handles GET /. It fetches the roster on every request and renders one
// "name (age)" line per record, or an error banner when the fetch fails.
func (h *PageHandler) Index(c *gin.Context) {
	students, err := h.Client.FetchStudents()
	if err != nil {
		log.Printf("Error fetching student list: %v", err)
		c.HTML(http.StatusOK, "index.html", gin.H{
			"title": "Student list",
			"error": "The student list could not be retrieved. Please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "Student list",
		"lines": FormatStudents(students),
	})
}

// FormatStudents renders each record as "name (age)", the display format of
// the list page.
func FormatStudents(students []models.Student) []string {
	lines := make([]string, 0, len(students))
	for _, s := range students {
		lines = append(lines, fmt.Sprintf("%s (%s)", s.Name, s.Age))
	}
	return lines
}

// Router builds the gin engine for the website, loading templates from
// templateGlob (e.g. "website/templates/*").
func Router(h *PageHandler, templateGlob string) *gin.Engine {
	router := gin.Default()
	router.LoadHTMLGlob(templateGlob)
	router.GET("/", h.Index)
	return router
}
