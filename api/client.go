// Package api is the client for the remote problem service: GraphQL for
// reads, a couple of REST endpoints for run/submit/favorites mutations.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"leetterm/log"
)

const defaultBaseURL = "https://leetcode.com"

// pollAttempts bounds result polling; the judge normally answers within a
// few seconds.
const pollAttempts = 30

// Client talks to the problem service. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	session    string
	csrf       string
	pollDelay  time.Duration
}

// NewClient creates a client. session and csrf may be empty for
// unauthenticated browsing.
func NewClient(session, csrf string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		session:    session,
		csrf:       csrf,
		pollDelay:  time.Second,
	}
}

// NewClientWithBaseURL is NewClient pointed at a different host. Used by tests.
func NewClientWithBaseURL(baseURL, session, csrf string) *Client {
	c := NewClient(session, csrf)
	c.baseURL = baseURL
	return c
}

// do sends one request with the service's required headers and returns the
// response body. Non-2xx responses are errors with the body included, since
// the service puts its complaints there.
func (c *Client) do(ctx context.Context, method, url, referer string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", c.baseURL)
	if referer == "" {
		referer = c.baseURL
	}
	req.Header.Set("Referer", referer)
	if c.csrf != "" {
		req.Header.Set("x-csrftoken", c.csrf)
	}

	var cookie string
	if c.session != "" {
		cookie = "LEETCODE_SESSION=" + c.session
	}
	if c.csrf != "" {
		if cookie != "" {
			cookie += "; "
		}
		cookie += "csrftoken=" + c.csrf
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("service returned HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(data))
	}
	return data, nil
}

func (c *Client) graphql(ctx context.Context, referer, query string, variables map[string]any) ([]byte, error) {
	body := map[string]any{"query": query, "variables": variables}
	return c.do(ctx, http.MethodPost, c.baseURL+"/graphql", referer, body)
}

func (c *Client) problemReferer(slug string) string {
	return fmt.Sprintf("%s/problems/%s/", c.baseURL, slug)
}

// FetchProblems fetches one page of the problem list. difficulty and search
// may be empty. Returns the page and the total problem count.
func (c *Client) FetchProblems(ctx context.Context, limit, skip int, difficulty, search string) ([]ProblemSummary, int, error) {
	filters := map[string]any{}
	if difficulty != "" {
		filters["difficulty"] = difficulty
	}
	if search != "" {
		filters["searchKeywords"] = search
	}

	data, err := c.graphql(ctx, "", problemListQuery, map[string]any{
		"categorySlug": "all-code-essentials",
		"limit":        limit,
		"skip":         skip,
		"filters":      filters,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch problem list: %w", err)
	}

	var resp struct {
		Data struct {
			ProblemsetQuestionList *struct {
				Total     int              `json:"total"`
				Questions []ProblemSummary `json:"questions"`
			} `json:"problemsetQuestionList"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, 0, fmt.Errorf("failed to parse problem list response: %w", err)
	}
	list := resp.Data.ProblemsetQuestionList
	if list == nil {
		return nil, 0, fmt.Errorf("no problem list data in response")
	}
	return list.Questions, list.Total, nil
}

// FetchProblemDetail fetches the full problem payload by slug.
func (c *Client) FetchProblemDetail(ctx context.Context, slug string) (*QuestionDetail, error) {
	data, err := c.graphql(ctx, c.problemReferer(slug), questionDetailQuery, map[string]any{
		"titleSlug": slug,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch problem detail: %w", err)
	}

	var resp struct {
		Data struct {
			Question *QuestionDetail `json:"question"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse problem detail response: %w", err)
	}
	if resp.Data.Question == nil {
		return nil, fmt.Errorf("no question data in response")
	}
	return resp.Data.Question, nil
}

// RunCode runs typedCode against dataInput and returns the interpretation id
// to poll.
func (c *Client) RunCode(ctx context.Context, slug, questionID, lang, typedCode, dataInput string) (string, error) {
	url := fmt.Sprintf("%s/problems/%s/interpret_solution/", c.baseURL, slug)
	data, err := c.do(ctx, http.MethodPost, url, c.problemReferer(slug), map[string]any{
		"lang":        lang,
		"question_id": questionID,
		"typed_code":  typedCode,
		"data_input":  dataInput,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send run request: %w", err)
	}

	result := gjson.ParseBytes(data)
	if errMsg := result.Get("error").String(); errMsg != "" {
		return "", fmt.Errorf("service error: %s", errMsg)
	}
	id := result.Get("interpret_id").String()
	if id == "" {
		return "", fmt.Errorf("no interpret_id in response")
	}
	return id, nil
}

// SubmitCode submits typedCode and returns the submission id to poll.
func (c *Client) SubmitCode(ctx context.Context, slug, questionID, lang, typedCode string) (string, error) {
	url := fmt.Sprintf("%s/problems/%s/submit/", c.baseURL, slug)
	data, err := c.do(ctx, http.MethodPost, url, c.problemReferer(slug), map[string]any{
		"lang":        lang,
		"question_id": questionID,
		"typed_code":  typedCode,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send submit request: %w", err)
	}

	result := gjson.ParseBytes(data)
	if errMsg := result.Get("error").String(); errMsg != "" {
		return "", fmt.Errorf("service error: %s", errMsg)
	}
	id := result.Get("submission_id")
	if !id.Exists() {
		return "", fmt.Errorf("no submission_id in response")
	}
	return id.String(), nil
}

// CheckResult fetches the current state of a run or submission.
func (c *Client) CheckResult(ctx context.Context, id string) (*CheckResponse, error) {
	url := fmt.Sprintf("%s/submissions/detail/%s/check/", c.baseURL, id)
	data, err := c.do(ctx, http.MethodGet, url, "", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to send check request: %w", err)
	}

	var resp CheckResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse check response: %w", err)
	}
	return &resp, nil
}

// PollResult polls CheckResult until the judge reports SUCCESS, with short
// backoff. It gives up after a bounded number of attempts.
func (c *Client) PollResult(ctx context.Context, id string) (*CheckResponse, error) {
	for attempt := 1; ; attempt++ {
		result, err := c.CheckResult(ctx, id)
		if err != nil {
			return nil, err
		}
		if result.State == "SUCCESS" {
			return result, nil
		}
		if attempt >= pollAttempts {
			return nil, fmt.Errorf("timed out waiting for result")
		}

		delay := c.pollDelay
		if attempt > 3 {
			delay = 2 * c.pollDelay
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
}

// FetchUsername returns the signed-in username, or empty if the session is
// not authenticated. Errors are logged, not returned: a failed status check
// just means browsing anonymously.
func (c *Client) FetchUsername(ctx context.Context) string {
	data, err := c.graphql(ctx, "", globalDataQuery, map[string]any{})
	if err != nil {
		log.WarningLog.Printf("failed to fetch user status: %v", err)
		return ""
	}
	status := gjson.GetBytes(data, "data.userStatus")
	if !status.Get("isSignedIn").Bool() {
		return ""
	}
	return status.Get("username").String()
}

// FetchUserStats fetches solved/total counts per difficulty for username.
func (c *Client) FetchUserStats(ctx context.Context, username string) (*UserStats, error) {
	data, err := c.graphql(ctx, "", userProfileQuery, map[string]any{"username": username})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}

	count := func(path, difficulty string) int {
		var n int64
		gjson.GetBytes(data, path).ForEach(func(_, item gjson.Result) bool {
			if item.Get("difficulty").String() == difficulty {
				n = item.Get("count").Int()
				return false
			}
			return true
		})
		return int(n)
	}

	const solved = "data.matchedUser.submitStats.acSubmissionNum"
	const totals = "data.allQuestionsCount"
	return &UserStats{
		Username:     username,
		EasySolved:   count(solved, "Easy"),
		EasyTotal:    count(totals, "Easy"),
		MediumSolved: count(solved, "Medium"),
		MediumTotal:  count(totals, "Medium"),
		HardSolved:   count(solved, "Hard"),
		HardTotal:    count(totals, "Hard"),
	}, nil
}

// FetchFavorites fetches the user's favorites lists.
func (c *Client) FetchFavorites(ctx context.Context) ([]FavoriteList, error) {
	data, err := c.graphql(ctx, "", favoritesListQuery, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch favorites: %w", err)
	}

	var resp struct {
		Data struct {
			FavoritesLists struct {
				AllFavorites []FavoriteList `json:"allFavorites"`
			} `json:"favoritesLists"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse favorites response: %w", err)
	}
	return resp.Data.FavoritesLists.AllFavorites, nil
}

// CreateFavoriteList creates a new favorites list.
func (c *Client) CreateFavoriteList(ctx context.Context, name string) error {
	_, err := c.do(ctx, http.MethodPost, c.baseURL+"/list/api/", "", map[string]any{"name": name})
	if err != nil {
		return fmt.Errorf("failed to create list: %w", err)
	}
	return nil
}

// DeleteFavoriteList deletes a favorites list by its id hash.
func (c *Client) DeleteFavoriteList(ctx context.Context, idHash string) error {
	_, err := c.do(ctx, http.MethodDelete, c.baseURL+"/list/api/"+idHash, "", nil)
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	return nil
}

// AddToFavorite adds a question to a favorites list.
func (c *Client) AddToFavorite(ctx context.Context, idHash, questionID string) error {
	_, err := c.do(ctx, http.MethodPost, c.baseURL+"/list/api/questions", "", map[string]any{
		"favorite_id_hash": idHash,
		"question_id":      questionID,
	})
	if err != nil {
		return fmt.Errorf("failed to add problem to list: %w", err)
	}
	return nil
}

// RemoveFromFavorite removes a question from a favorites list.
func (c *Client) RemoveFromFavorite(ctx context.Context, idHash, questionID string) error {
	url := fmt.Sprintf("%s/list/api/questions/%s/%s", c.baseURL, idHash, questionID)
	_, err := c.do(ctx, http.MethodDelete, url, "", nil)
	if err != nil {
		return fmt.Errorf("failed to remove problem from list: %w", err)
	}
	return nil
}
