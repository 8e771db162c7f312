package report

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spacesedan/wordsentiment/internal/models"
)

const (
	CSV_HEADER    = "file_name,raw_text,total_word_count,sentiment"
	OUTPUT_SUFFIX = "_text_analysis.csv"
)

// OutputPath returns <dir>/<fileName>_text_analysis.csv.
func OutputPath(dir, fileName string) string {
	return filepath.Join(dir, fileName+OUTPUT_SUFFIX)
}

// EscapeField quotes a field per RFC 4180, quoting unconditionally.
func EscapeField(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func FormatCSV(result models.AnalysisResult) string {
	row := []string{
		EscapeField(result.FileName),
		EscapeField(result.RawText),
		EscapeField(strconv.Itoa(result.TotalWordCount)),
		EscapeField(result.Sentiment.String()),
	}

	return CSV_HEADER + "\n" + strings.Join(row, ",") + "\n"
}

func WriteCSV(path string, result models.AnalysisResult) error {
	if err := os.WriteFile(path, []byte(FormatCSV(result)), 0o644); err != nil {
		return models.NewFileIOError("write csv", err)
	}
	return nil
}
