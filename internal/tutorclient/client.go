package tutorclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tutorhub/internal/apperror"
	"tutorhub/internal/httputil"
	"tutorhub/internal/metrics"
)

type Tutor struct {
	ID      int    `json:"tutor_id"`
	Name    string `json:"tutor_name"`
	PicURL  string `json:"tutor_pic_url"`
	Profile string `json:"tutor_profile"`
}

type NewTutor struct {
	Name    string `json:"tutor_name"`
	PicURL  string `json:"tutor_pic_url"`
	Profile string `json:"tutor_profile"`
}

type Course struct {
	ID          int       `json:"course_id"`
	TutorID     int       `json:"tutor_id"`
	Name        string    `json:"course_name"`
	Description *string   `json:"course_description"`
	Format      *string   `json:"course_format"`
	Structure   *string   `json:"course_structure"`
	Duration    *string   `json:"course_duration"`
	Price       *int      `json:"course_price"`
	Language    *string   `json:"course_language"`
	Level       *string   `json:"course_level"`
	PostedTime  time.Time `json:"posted_time"`
}

type NewCourse struct {
	TutorID     int     `json:"tutor_id"`
	Name        string  `json:"course_name"`
	Description *string `json:"course_description,omitempty"`
	Format      *string `json:"course_format,omitempty"`
	Structure   *string `json:"course_structure,omitempty"`
	Duration    *string `json:"course_duration,omitempty"`
	Price       *int    `json:"course_price,omitempty"`
	Language    *string `json:"course_language,omitempty"`
	Level       *string `json:"course_level,omitempty"`
}

type UpdateCourse struct {
	Name        *string `json:"course_name,omitempty"`
	Description *string `json:"course_description,omitempty"`
	Format      *string `json:"course_format,omitempty"`
	Structure   *string `json:"course_structure,omitempty"`
	Duration    *string `json:"course_duration,omitempty"`
	Price       *int    `json:"course_price,omitempty"`
	Language    *string `json:"course_language,omitempty"`
	Level       *string `json:"course_level,omitempty"`
}

// Client talks JSON to tutor-service. A 404 or 400 answer comes back as
// NotFound or InvalidInput carrying the service's message; every other
// failure is an Upstream error.
type Client struct {
	baseURL    string
	httpClient *http.Client
	deps       *metrics.DependencyMetrics
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// WithDependencyMetrics records latency and availability of every call.
func (c *Client) WithDependencyMetrics(dm *metrics.DependencyMetrics) *Client {
	c.deps = dm
	return c
}

func (c *Client) CreateTutor(ctx context.Context, tutor NewTutor) (*Tutor, error) {
	var created Tutor
	if err := c.do(ctx, http.MethodPost, "/tutors", tutor, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) GetCourses(ctx context.Context, tutorID int) ([]Course, error) {
	var courses []Course
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/courses/%d", tutorID), nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Client) CreateCourse(ctx context.Context, course NewCourse) (*Course, error) {
	var created Course
	if err := c.do(ctx, http.MethodPost, "/courses", course, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateCourse(ctx context.Context, tutorID, courseID int, update UpdateCourse) (*Course, error) {
	var updated Course
	path := fmt.Sprintf("/courses/%d/%d", tutorID, courseID)
	if err := c.do(ctx, http.MethodPut, path, update, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteCourse(ctx context.Context, tutorID, courseID int) (string, error) {
	var msg string
	path := fmt.Sprintf("/courses/%d/%d", tutorID, courseID)
	if err := c.do(ctx, http.MethodDelete, path, nil, &msg); err != nil {
		return "", err
	}
	return msg, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return apperror.Upstream(fmt.Errorf("failed to encode request: %w", err))
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return apperror.Upstream(fmt.Errorf("failed to build request: %w", err))
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.recordCall(ctx, start, resp, err)
	if err != nil {
		return apperror.Upstream(fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperror.NotFound(errorMessage(resp))
	case resp.StatusCode == http.StatusBadRequest:
		return apperror.InvalidInput(errorMessage(resp))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return apperror.Upstream(fmt.Errorf("%s %s returned status %d: %s", method, path, resp.StatusCode, errorMessage(resp)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.Upstream(fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

func errorMessage(resp *http.Response) string {
	var errResp httputil.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.ErrorMessage == "" {
		return http.StatusText(resp.StatusCode)
	}
	return errResp.ErrorMessage
}

func (c *Client) recordCall(ctx context.Context, start time.Time, resp *http.Response, err error) {
	if err == nil && resp.StatusCode >= http.StatusInternalServerError {
		err = fmt.Errorf("status %d", resp.StatusCode)
	}
	c.deps.RecordCheck(ctx, metrics.DependencyTutorService, time.Since(start), err)
}
