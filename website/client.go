package website

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/faresmergui/docker-student-stack/models"
)

// DefaultFetchTimeout bounds one API round trip.
const DefaultFetchTimeout = 5 * time.Second

// StudentClient fetches the student roster from the data service.
type StudentClient struct {
	APIURL   string
	Username string
	Password string
	HTTP     *http.Client
}

// NewStudentClient creates a client for the API at apiURL, authenticating
// every request with the given basic-auth credentials.
func NewStudentClient(apiURL, username, password string) *StudentClient {
	return &StudentClient{
		APIURL:   apiURL,
		Username: username,
		Password: password,
		HTTP:     &http.Client{Timeout: DefaultFetchTimeout},
	}
}

// FetchStudents performs the authenticated GET and decodes the JSON array.
// Any failure (network, non-200 status, undecodable body) comes back as an
// error; the caller never sees partial data.
func (c *StudentClient) FetchStudents() ([]models.Student, error) {
	req, err := http.NewRequest(http.MethodGet, c.APIURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth(c.Username, c.Password)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("student list service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("student list service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var students []models.Student
	if err := json.Unmarshal(body, &students); err != nil {
		return nil, fmt.Errorf("failed to parse student list: %w", err)
	}
	return students, nil
}
