package plan_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gunvolt24/order-precheck/internal/validate"
	"github.com/Gunvolt24/order-precheck/pkg/plan"
)

const validPlanJSON = `{"steps": [{"name": "customerExists", "enabled": true}, {"name": "customerStatus", "enabled": true}]}`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLintFile_JSON_Valid(t *testing.T) {
	path := writeTempFile(t, "plan.json", validPlanJSON)

	var out bytes.Buffer
	summary, err := plan.LintFile(path, plan.FormatAuto, validate.Dependencies, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %q", summary)
	}
	if !strings.Contains(out.String(), `"customerExists"`) {
		t.Fatalf("canonical output must contain the plan, got %q", out.String())
	}
}

func TestLintFile_JSON_Invalid(t *testing.T) {
	path := writeTempFile(t, "plan.json", `{"steps": []}`)

	var out bytes.Buffer
	summary, err := plan.LintFile(path, plan.FormatJSON, nil, &out)
	if err == nil {
		t.Fatalf("want error for empty plan")
	}
	if summary != "0 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %q", summary)
	}
	if out.Len() != 0 {
		t.Fatalf("invalid plan must not be written, got %q", out.String())
	}
}

func TestLintFile_JSONL_MixedLines(t *testing.T) {
	content := validPlanJSON + "\n" +
		"\n" + // пустая строка пропускается
		`{"steps": [{"name": "noSuchStep", "enabled": true}]}` + "\n" +
		validPlanJSON + "\n"
	path := writeTempFile(t, "plans.jsonl", content)

	var out bytes.Buffer
	summary, err := plan.LintFile(path, plan.FormatAuto, validate.Dependencies, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "2 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %q", summary)
	}
	if lines := strings.Count(out.String(), "\n"); lines != 2 {
		t.Fatalf("want 2 output lines, got %d: %q", lines, out.String())
	}
}

func TestLintFile_UnsupportedFormat(t *testing.T) {
	path := writeTempFile(t, "plan.json", validPlanJSON)
	if _, err := plan.LintFile(path, plan.InputFormat("xml"), nil, &bytes.Buffer{}); err == nil {
		t.Fatalf("want unsupported format error")
	}
}

func TestLintFile_MissingFile(t *testing.T) {
	if _, err := plan.LintFile("/no/such/file.json", plan.FormatJSON, nil, &bytes.Buffer{}); err == nil {
		t.Fatalf("want open error")
	}
}

func TestLintJSONLStream_ScannerBudget(t *testing.T) {
	// Длинная, но валидная строка должна проходить (буфер расширяется).
	long := validPlanJSON
	var in bytes.Buffer
	in.WriteString(long + "\n")

	var out bytes.Buffer
	res, err := plan.LintJSONLStream(&in, validate.Dependencies, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 1 || res.InvalidLinesCount != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}
