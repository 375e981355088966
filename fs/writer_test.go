package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hourei "github.com/ToAmano/hourei-api"
	"github.com/ToAmano/hourei-api/fs"
)

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format hourei.Format
		want   string
	}{
		{name: "xml", format: hourei.FormatXML, want: "405AC0000000088.xml"},
		{name: "text", format: hourei.FormatText, want: "405AC0000000088.txt"},
		{name: "yaml", format: hourei.FormatYAML, want: "405AC0000000088.yaml"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := &hourei.Output{LawID: "405AC0000000088", Format: tt.format}
			assert.Equal(t, tt.want, fs.OutputPath(out))
		})
	}
}

func TestFormatOutput(t *testing.T) {
	t.Parallel()

	t.Run("text gets a comment header", func(t *testing.T) {
		t.Parallel()

		out := &hourei.Output{
			LawID:     "405AC0000000088",
			Title:     "行政手続法",
			Format:    hourei.FormatText,
			Content:   "第一条",
			FetchedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		}

		got := fs.FormatOutput(out)
		assert.Contains(t, got, "# law_id: 405AC0000000088")
		assert.Contains(t, got, "# title: 行政手続法")
		assert.Contains(t, got, "# fetched: 2026-08-30")
		assert.Contains(t, got, "第一条")
	})

	t.Run("xml is written verbatim", func(t *testing.T) {
		t.Parallel()

		out := &hourei.Output{
			LawID:   "405AC0000000088",
			Title:   "行政手続法",
			Format:  hourei.FormatXML,
			Content: "<Law/>",
		}

		assert.Equal(t, "<Law/>", fs.FormatOutput(out))
	})

	t.Run("header omits missing title and date", func(t *testing.T) {
		t.Parallel()

		out := &hourei.Output{
			LawID:   "405AC0000000088",
			Format:  hourei.FormatYAML,
			Content: "law_info:\n",
		}

		got := fs.FormatOutput(out)
		assert.Contains(t, got, "# law_id: 405AC0000000088")
		assert.NotContains(t, got, "# title:")
		assert.NotContains(t, got, "# fetched:")
	})
}

func TestWriter_WriteOutput(t *testing.T) {
	t.Parallel()

	t.Run("writes the rendering to the base directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writer := fs.NewWriter(dir)

		out := &hourei.Output{
			LawID:   "405AC0000000088",
			Title:   "行政手続法",
			Format:  hourei.FormatText,
			Content: "第一条",
		}

		require.NoError(t, writer.WriteOutput(context.Background(), out))

		data, err := os.ReadFile(filepath.Join(dir, "405AC0000000088.txt"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "第一条")
	})

	t.Run("creates the base directory when missing", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "laws", "fetched")
		writer := fs.NewWriter(dir)

		out := &hourei.Output{
			LawID:   "406CO0000000265",
			Format:  hourei.FormatXML,
			Content: "<Law/>",
		}

		require.NoError(t, writer.WriteOutput(context.Background(), out))

		_, err := os.Stat(filepath.Join(dir, "406CO0000000265.xml"))
		require.NoError(t, err)
	})

	t.Run("rejects invalid outputs", func(t *testing.T) {
		t.Parallel()

		writer := fs.NewWriter(t.TempDir())

		err := writer.WriteOutput(context.Background(), &hourei.Output{Format: hourei.FormatText})
		require.Error(t, err)
		assert.Equal(t, hourei.EINVALID, hourei.ErrorCode(err))
	})
}
