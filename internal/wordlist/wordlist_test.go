package wordlist

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "trailing separators",
			input:    "word\nrun;\njump;\n",
			expected: []string{"run", "jump"},
		},
		{
			name:     "header only",
			input:    "word\n",
			expected: []string{},
		},
		{
			name:     "extra columns ignored",
			input:    "word;translation\nhello;привет\nworld;мир\n",
			expected: []string{"hello", "world"},
		},
		{
			name:     "empty entries dropped",
			input:    "word\nrun\n;orphan\n   \n\njump\n",
			expected: []string{"run", "jump"},
		},
		{
			name:     "duplicates kept in order",
			input:    "word\nb\na\nb\n",
			expected: []string{"b", "a", "b"},
		},
		{
			name:     "whitespace trimmed",
			input:    "word\n  run  ;x\n",
			expected: []string{"run"},
		},
		{
			name:     "quoted field with separator",
			input:    "word\n\"give up; quit\";x\n",
			expected: []string{"give up; quit"},
		},
		{
			name:     "decomposed accents normalized",
			input:    "word\ncafe\u0301\n",
			expected: []string{"caf\u00e9"},
		},
		{
			name:     "no trailing newline",
			input:    "word\nrun",
			expected: []string{"run"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := ParseCSV(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, words)
		})
	}
}

func TestParseCSV_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		isEmpty   bool
		errSubstr string
	}{
		{
			name:    "empty file",
			input:   "",
			isEmpty: true,
		},
		{
			name:    "blank lines only",
			input:   "\n\n",
			isEmpty: true,
		},
		{
			name:      "unterminated quote",
			input:     "word\n\"run\n",
			errSubstr: "read row",
		},
		{
			name:      "bare quote in header",
			input:     "wo\"rd\nrun\n",
			errSubstr: "read header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := ParseCSV(strings.NewReader(tt.input))
			assert.Error(t, err)
			assert.Nil(t, words)
			if tt.isEmpty {
				assert.ErrorIs(t, err, ErrEmptyUpload)
			} else {
				assert.Contains(t, err.Error(), tt.errSubstr)
			}
		})
	}
}

func newWorkbook(t *testing.T, column []string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, v := range column {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}
	// Second column must not leak into the word list.
	require.NoError(t, f.SetCellValue(sheet, "B2", "ignored"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseXLSX(t *testing.T) {
	data := newWorkbook(t, []string{"word", "run", "", " jump ", "run"})

	words, err := ParseXLSX(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"run", "jump", "run"}, words)
}

func TestParseXLSX_HeaderOnly(t *testing.T) {
	data := newWorkbook(t, []string{"word"})

	// B2 is set, so the sheet has a second row with an empty first column.
	words, err := ParseXLSX(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestParseXLSX_Invalid(t *testing.T) {
	words, err := ParseXLSX(strings.NewReader("not a workbook"))
	assert.Error(t, err)
	assert.Nil(t, words)
}

func TestParse_Dispatch(t *testing.T) {
	xlsx := newWorkbook(t, []string{"word", "hello"})

	tests := []struct {
		name     string
		filename string
		data     []byte
		expected []string
	}{
		{
			name:     "csv by extension",
			filename: "words.csv",
			data:     []byte("word\nhello;\n"),
			expected: []string{"hello"},
		},
		{
			name:     "unknown extension treated as csv",
			filename: "words.txt",
			data:     []byte("word\nhello\n"),
			expected: []string{"hello"},
		},
		{
			name:     "xlsx case insensitive",
			filename: "Words.XLSX",
			data:     xlsx,
			expected: []string{"hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := Parse(tt.filename, bytes.NewReader(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, words)
		})
	}
}
