package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leetterm/api"
)

func testDetail() *api.QuestionDetail {
	return &api.QuestionDetail{
		QuestionID:         "1",
		FrontendQuestionID: "1",
		Title:              "Two Sum",
		TitleSlug:          "two-sum",
		CodeSnippets: []api.CodeSnippet{
			{Lang: "Go", LangSlug: "golang", Code: "func twoSum(nums []int, target int) []int {\n}"},
		},
		ExampleTestcaseList: []string{"[2,7,11,15]\n9"},
		SampleTestCase:      "[2,7,11,15]\n9",
	}
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "go", Extension("golang"))
	assert.Equal(t, "py", Extension("python3"))
	assert.Equal(t, "txt", Extension("brainfuck"))
}

func TestScaffold(t *testing.T) {
	root := t.TempDir()
	detail := testDetail()

	path, err := Scaffold(root, detail, "golang")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "1-two-sum", "solution.go"), path)

	code, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "func twoSum(nums []int, target int) []int {\n}\n", string(code))

	testcase, err := os.ReadFile(filepath.Join(root, "1-two-sum", "testcase.txt"))
	require.NoError(t, err)
	assert.Equal(t, "[2,7,11,15]\n9\n", string(testcase))
}

func TestScaffoldKeepsExistingSolution(t *testing.T) {
	root := t.TempDir()
	detail := testDetail()

	path, err := Scaffold(root, detail, "golang")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("my work\n"), 0644))

	_, err = Scaffold(root, detail, "golang")
	require.NoError(t, err)

	code, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "my work\n", string(code))
}

func TestScaffoldNoSnippet(t *testing.T) {
	root := t.TempDir()
	detail := testDetail()

	_, err := Scaffold(root, detail, "elixir")
	assert.Error(t, err)
}

func TestReadSolution(t *testing.T) {
	root := t.TempDir()
	detail := testDetail()

	_, err := ReadSolution(root, detail, "golang")
	assert.Error(t, err)

	_, err = Scaffold(root, detail, "golang")
	require.NoError(t, err)

	code, err := ReadSolution(root, detail, "golang")
	require.NoError(t, err)
	assert.Contains(t, code, "func twoSum")
}

func TestReadTestcase(t *testing.T) {
	root := t.TempDir()
	detail := testDetail()

	// No file yet: fall back to the sample testcase.
	assert.Equal(t, "[2,7,11,15]\n9", ReadTestcase(root, detail))

	_, err := Scaffold(root, detail, "golang")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "1-two-sum", "testcase.txt"), []byte("[3,3]\n6\n"), 0644))

	assert.Equal(t, "[3,3]\n6", ReadTestcase(root, detail))
}
