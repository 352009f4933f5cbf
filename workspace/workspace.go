// Package workspace manages the local directory where problem solutions
// live. Each problem gets its own directory named <id>-<slug> containing the
// starter code and the sample testcase.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"leetterm/api"
	"leetterm/log"
)

// extensions maps a language slug to its solution file extension.
var extensions = map[string]string{
	"golang":     "go",
	"python":     "py",
	"python3":    "py",
	"java":       "java",
	"cpp":        "cpp",
	"c":          "c",
	"csharp":     "cs",
	"javascript": "js",
	"typescript": "ts",
	"rust":       "rs",
	"ruby":       "rb",
	"swift":      "swift",
	"kotlin":     "kt",
	"scala":      "scala",
	"php":        "php",
	"erlang":     "erl",
	"elixir":     "ex",
	"racket":     "rkt",
	"dart":       "dart",
}

// Extension returns the file extension for a language slug, defaulting to
// "txt" for slugs we do not know.
func Extension(langSlug string) string {
	if ext, ok := extensions[langSlug]; ok {
		return ext
	}
	return "txt"
}

// ProblemDir returns the per-problem directory under root.
func ProblemDir(root string, detail *api.QuestionDetail) string {
	return filepath.Join(root, fmt.Sprintf("%s-%s", detail.FrontendQuestionID, detail.TitleSlug))
}

// SolutionPath returns the path of the solution file for a language.
func SolutionPath(root string, detail *api.QuestionDetail, langSlug string) string {
	name := fmt.Sprintf("solution.%s", Extension(langSlug))
	return filepath.Join(ProblemDir(root, detail), name)
}

// Scaffold writes the starter snippet and sample testcase for a problem into
// its directory under root, creating it if needed. Existing solution files
// are left alone so work in progress is never clobbered. Returns the path of
// the solution file.
func Scaffold(root string, detail *api.QuestionDetail, langSlug string) (string, error) {
	dir := ProblemDir(root, detail)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create problem directory: %w", err)
	}

	solutionPath := SolutionPath(root, detail, langSlug)
	if _, err := os.Stat(solutionPath); os.IsNotExist(err) {
		snippet, ok := detail.Snippet(langSlug)
		if !ok {
			return "", fmt.Errorf("no %s starter code for %s", langSlug, detail.TitleSlug)
		}
		code := snippet.Code
		if !strings.HasSuffix(code, "\n") {
			code += "\n"
		}
		if err := os.WriteFile(solutionPath, []byte(code), 0644); err != nil {
			return "", fmt.Errorf("failed to write solution file: %w", err)
		}
		log.InfoLog.Printf("scaffolded %s", solutionPath)
	}

	testcasePath := filepath.Join(dir, "testcase.txt")
	if _, err := os.Stat(testcasePath); os.IsNotExist(err) {
		testcase := strings.Join(detail.ExampleTestcaseList, "\n")
		if testcase == "" {
			testcase = detail.SampleTestCase
		}
		if testcase != "" && !strings.HasSuffix(testcase, "\n") {
			testcase += "\n"
		}
		if err := os.WriteFile(testcasePath, []byte(testcase), 0644); err != nil {
			return "", fmt.Errorf("failed to write testcase file: %w", err)
		}
	}

	return solutionPath, nil
}

// ReadSolution returns the contents of the solution file for a problem.
func ReadSolution(root string, detail *api.QuestionDetail, langSlug string) (string, error) {
	data, err := os.ReadFile(SolutionPath(root, detail, langSlug))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no solution file yet, scaffold the problem first")
		}
		return "", fmt.Errorf("failed to read solution file: %w", err)
	}
	return string(data), nil
}

// ReadTestcase returns the contents of the testcase file for a problem,
// falling back to the problem's sample testcase when the file is absent.
func ReadTestcase(root string, detail *api.QuestionDetail) string {
	data, err := os.ReadFile(filepath.Join(ProblemDir(root, detail), "testcase.txt"))
	if err != nil {
		return detail.SampleTestCase
	}
	testcase := strings.TrimRight(string(data), "\n")
	if testcase == "" {
		return detail.SampleTestCase
	}
	return testcase
}
