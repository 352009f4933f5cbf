package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchProblems(t *testing.T) {
	var gotVars map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/graphql", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotVars = body.Variables

		fmt.Fprint(w, `{"data":{"problemsetQuestionList":{"total":3421,"questions":[
			{"frontendQuestionId":"1","title":"Two Sum","titleSlug":"two-sum","difficulty":"Easy","status":"ac","acRate":52.1,"isPaidOnly":false,"topicTags":[{"name":"Array","slug":"array"}]},
			{"frontendQuestionId":"4","title":"Median of Two Sorted Arrays","titleSlug":"median-of-two-sorted-arrays","difficulty":"Hard","status":null,"acRate":38.9,"isPaidOnly":false,"topicTags":[]}
		]}}}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "", "")
	problems, total, err := client.FetchProblems(context.Background(), 50, 0, "EASY", "sum")
	require.NoError(t, err)

	assert.Equal(t, 3421, total)
	require.Len(t, problems, 2)
	assert.Equal(t, "Two Sum", problems[0].Title)
	assert.Equal(t, "ac", problems[0].Status)
	assert.Equal(t, "Hard", problems[1].Difficulty)

	filters, ok := gotVars["filters"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "EASY", filters["difficulty"])
	assert.Equal(t, "sum", filters["searchKeywords"])
}

func TestFetchProblemDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"question":{
			"questionId":"1","frontendQuestionId":"1","title":"Two Sum","titleSlug":"two-sum",
			"difficulty":"Easy","content":"<p>Given an array...</p>","isPaidOnly":false,
			"codeSnippets":[{"lang":"Go","langSlug":"golang","code":"func twoSum() {}"}],
			"exampleTestcaseList":["[2,7,11,15]\n9"],"sampleTestCase":"[2,7,11,15]\n9",
			"hints":["Use a map."]
		}}}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "", "")
	detail, err := client.FetchProblemDetail(context.Background(), "two-sum")
	require.NoError(t, err)

	assert.Equal(t, "Two Sum", detail.Title)
	assert.Equal(t, []string{"Use a map."}, detail.Hints)

	snippet, ok := detail.Snippet("golang")
	require.True(t, ok)
	assert.Equal(t, "func twoSum() {}", snippet.Code)

	_, ok = detail.Snippet("cobol")
	assert.False(t, ok)
}

func TestFetchProblemDetailMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"question":null}}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "", "")
	_, err := client.FetchProblemDetail(context.Background(), "no-such-problem")
	assert.Error(t, err)
}

func TestAuthHeaders(t *testing.T) {
	var gotCookie, gotCSRF, gotReferer string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		gotCSRF = r.Header.Get("x-csrftoken")
		gotReferer = r.Header.Get("Referer")
		fmt.Fprint(w, `{"interpret_id":"runcode_123"}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "sess-token", "csrf-token")
	id, err := client.RunCode(context.Background(), "two-sum", "1", "golang", "func f() {}", "[2,7]\n9")
	require.NoError(t, err)

	assert.Equal(t, "runcode_123", id)
	assert.Equal(t, "LEETCODE_SESSION=sess-token; csrftoken=csrf-token", gotCookie)
	assert.Equal(t, "csrf-token", gotCSRF)
	assert.Contains(t, gotReferer, "/problems/two-sum/")
}

func TestSubmitCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/problems/two-sum/submit/", r.URL.Path)
		fmt.Fprint(w, `{"submission_id":987654321}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "s", "c")
	id, err := client.SubmitCode(context.Background(), "two-sum", "1", "golang", "func f() {}")
	require.NoError(t, err)
	assert.Equal(t, "987654321", id)
}

func TestSubmitCodeServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":"User is not signed in"}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "", "")
	_, err := client.SubmitCode(context.Background(), "two-sum", "1", "golang", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not signed in")
}

func TestPollResult(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			fmt.Fprint(w, `{"state":"PENDING"}`)
			return
		}
		fmt.Fprint(w, `{"state":"SUCCESS","status_code":10,"status_msg":"Accepted","total_correct":57,"total_testcases":57}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "s", "c")
	client.pollDelay = time.Millisecond
	result, err := client.PollResult(context.Background(), "runcode_123")
	require.NoError(t, err)

	assert.Equal(t, 3, calls)
	assert.Equal(t, StatusAccepted, result.StatusCode)
	require.NotNil(t, result.TotalCorrect)
	assert.Equal(t, 57, *result.TotalCorrect)
}

func TestPollResultCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"state":"STARTED"}`)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClientWithBaseURL(server.URL, "s", "c")
	_, err := client.PollResult(ctx, "runcode_123")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchUsername(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"userStatus":{"isSignedIn":true,"username":"gopher"}}}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "s", "c")
	assert.Equal(t, "gopher", client.FetchUsername(context.Background()))
}

func TestFetchUsernameAnonymous(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"userStatus":{"isSignedIn":false,"username":""}}}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "", "")
	assert.Empty(t, client.FetchUsername(context.Background()))
}

func TestFetchUserStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{
			"matchedUser":{"submitStats":{"acSubmissionNum":[
				{"difficulty":"All","count":120},
				{"difficulty":"Easy","count":70},
				{"difficulty":"Medium","count":40},
				{"difficulty":"Hard","count":10}
			]}},
			"allQuestionsCount":[
				{"difficulty":"All","count":3421},
				{"difficulty":"Easy","count":846},
				{"difficulty":"Medium","count":1781},
				{"difficulty":"Hard","count":794}
			]
		}}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "s", "c")
	stats, err := client.FetchUserStats(context.Background(), "gopher")
	require.NoError(t, err)

	assert.Equal(t, 70, stats.EasySolved)
	assert.Equal(t, 846, stats.EasyTotal)
	assert.Equal(t, 40, stats.MediumSolved)
	assert.Equal(t, 10, stats.HardSolved)
	assert.Equal(t, 794, stats.HardTotal)
}

func TestFetchFavorites(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"favoritesLists":{"allFavorites":[
			{"idHash":"abc123","name":"Favorite","questions":[
				{"questionId":"1","status":"ac","title":"Two Sum","titleSlug":"two-sum"}
			]}
		]}}}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "s", "c")
	lists, err := client.FetchFavorites(context.Background())
	require.NoError(t, err)

	require.Len(t, lists, 1)
	assert.Equal(t, "abc123", lists[0].IDHash)
	require.Len(t, lists[0].Questions, 1)
	assert.Equal(t, "two-sum", lists[0].Questions[0].TitleSlug)
}

func TestFavoriteMutations(t *testing.T) {
	type call struct {
		method, path string
	}
	var calls []call
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "s", "c")
	ctx := context.Background()
	require.NoError(t, client.CreateFavoriteList(ctx, "graphs"))
	require.NoError(t, client.AddToFavorite(ctx, "abc123", "1"))
	require.NoError(t, client.RemoveFromFavorite(ctx, "abc123", "1"))
	require.NoError(t, client.DeleteFavoriteList(ctx, "abc123"))

	assert.Equal(t, []call{
		{http.MethodPost, "/list/api/"},
		{http.MethodPost, "/list/api/questions"},
		{http.MethodDelete, "/list/api/questions/abc123/1"},
		{http.MethodDelete, "/list/api/abc123"},
	}, calls)
}

func TestHTTPErrorIncludesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL, "", "")
	_, err := client.CheckResult(context.Background(), "id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "forbidden")
}
