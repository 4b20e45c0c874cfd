package cli

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetText(t *testing.T) {
	rl := lines("  hello world \n")

	got, err := GetText(rl, "Name")

	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, []string{"Name: "}, rl.prompts)
}

func TestGetText_Interrupt(t *testing.T) {
	rl := &scriptReader{errs: map[int]error{0: readline.ErrInterrupt}}

	_, err := GetText(rl, "Name")

	assert.ErrorIs(t, err, errCanceled)
}

func TestGetText_EOF(t *testing.T) {
	_, err := GetText(lines(), "Name")

	assert.ErrorIs(t, err, io.EOF)
}

func TestGetMultiline(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{name: "stops on empty line", lines: []string{"a", "b", "", "c"}, want: "a\nb"},
		{name: "strips CRLF", lines: []string{"a\r\n", "b\r\n", ""}, want: "a\nb"},
		{name: "immediate empty line", lines: []string{""}, want: ""},
		{name: "EOF without empty line", lines: []string{"a", "b"}, want: "a\nb"},
		{name: "surrounding spaces trimmed", lines: []string{"  x = y", ""}, want: "x = y"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetMultiline(lines(tc.lines...), "Text", &out)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Contains(t, out.String(), "Text\n")
		})
	}
}

func TestGetMultiline_Interrupt(t *testing.T) {
	rl := lines("a")
	rl.errs = map[int]error{1: readline.ErrInterrupt}

	_, err := GetMultiline(rl, "Text", io.Discard)

	assert.ErrorIs(t, err, errCanceled)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }

	var out bytes.Buffer
	got, err := GetPassword(&out, "Password")

	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	assert.Equal(t, "Password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }

	_, err := GetPassword(io.Discard, "Password")

	assert.Error(t, err)
}

func TestConfirm(t *testing.T) {
	for in, want := range map[string]bool{"y": true, "YES": true, "n": false, "": false, "sure": false} {
		got, err := Confirm(lines(in), "Delete?")
		require.NoError(t, err)
		assert.Equal(t, want, got, "answer %q", in)
	}
}
