package api

// ProblemSummary is one row of the problem list.
type ProblemSummary struct {
	FrontendQuestionID string     `json:"frontendQuestionId"`
	Title              string     `json:"title"`
	TitleSlug          string     `json:"titleSlug"`
	Difficulty         string     `json:"difficulty"`
	Status             string     `json:"status"`
	ACRate             float64    `json:"acRate"`
	IsPaidOnly         bool       `json:"isPaidOnly"`
	TopicTags          []TopicTag `json:"topicTags"`
}

type TopicTag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// QuestionDetail is the full problem payload. Content is the HTML subset the
// richtext package renders; it is empty for paid-only problems without auth.
type QuestionDetail struct {
	QuestionID          string        `json:"questionId"`
	FrontendQuestionID  string        `json:"frontendQuestionId"`
	Title               string        `json:"title"`
	TitleSlug           string        `json:"titleSlug"`
	Difficulty          string        `json:"difficulty"`
	Content             string        `json:"content"`
	Status              string        `json:"status"`
	IsPaidOnly          bool          `json:"isPaidOnly"`
	TopicTags           []TopicTag    `json:"topicTags"`
	CodeSnippets        []CodeSnippet `json:"codeSnippets"`
	ExampleTestcaseList []string      `json:"exampleTestcaseList"`
	SampleTestCase      string        `json:"sampleTestCase"`
	Hints               []string      `json:"hints"`
}

// Snippet returns the code snippet for the given language slug, if present.
func (d *QuestionDetail) Snippet(langSlug string) (CodeSnippet, bool) {
	for _, s := range d.CodeSnippets {
		if s.LangSlug == langSlug {
			return s, true
		}
	}
	return CodeSnippet{}, false
}

type CodeSnippet struct {
	Lang     string `json:"lang"`
	LangSlug string `json:"langSlug"`
	Code     string `json:"code"`
}

// CheckResponse is the polled run/submit result. The service leaves most
// fields unset depending on the verdict, hence the sea of zero values.
type CheckResponse struct {
	State              string   `json:"state"`
	StatusMsg          string   `json:"status_msg"`
	StatusCode         int      `json:"status_code"`
	CodeAnswer         []string `json:"code_answer"`
	ExpectedCodeAnswer []string `json:"expected_code_answer"`
	CodeOutput         []string `json:"code_output"`
	ExpectedOutput     string   `json:"expected_output"`
	LastTestcase       string   `json:"last_testcase"`
	TotalCorrect       *int     `json:"total_correct"`
	TotalTestcases     *int     `json:"total_testcases"`
	StatusRuntime      string   `json:"status_runtime"`
	StatusMemory       string   `json:"status_memory"`
	CompileError       string   `json:"compile_error"`
	FullCompileError   string   `json:"full_compile_error"`
	CorrectAnswer      bool     `json:"correct_answer"`
}

// Verdict status codes returned by the judge.
const (
	StatusAccepted     = 10
	StatusWrongAnswer  = 11
	StatusMemoryLimit  = 12
	StatusOutputLimit  = 13
	StatusTimeLimit    = 14
	StatusRuntimeError = 15
	StatusCompileError = 20
)

type FavoriteList struct {
	IDHash           string             `json:"idHash"`
	Name             string             `json:"name"`
	Description      string             `json:"description"`
	ViewCount        int                `json:"viewCount"`
	Creator          string             `json:"creator"`
	IsWatched        bool               `json:"isWatched"`
	IsPublicFavorite bool               `json:"isPublicFavorite"`
	Questions        []FavoriteQuestion `json:"questions"`
}

type FavoriteQuestion struct {
	QuestionID string `json:"questionId"`
	Status     string `json:"status"`
	Title      string `json:"title"`
	TitleSlug  string `json:"titleSlug"`
}

// UserStats aggregates solved counts per difficulty for the signed-in user.
type UserStats struct {
	Username     string
	EasySolved   int
	EasyTotal    int
	MediumSolved int
	MediumTotal  int
	HardSolved   int
	HardTotal    int
}
