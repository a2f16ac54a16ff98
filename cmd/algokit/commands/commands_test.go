package commands_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/algokit/cmd/algokit/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := commands.NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestTwoSum(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"Basic", []string{"twosum", "--target", "9", "2", "7", "11", "15"}, "[0 1]\n"},
		{"Duplicates", []string{"twosum", "-t", "6", "3", "3"}, "[0 1]\n"},
		{"Negatives", []string{"twosum", "--target", "4", "--", "-4", "8", "5", "-1"}, "[0 1]\n"},
		{"Floats", []string{"twosum", "--target", "1", "0.25", "0.5", "0.75"}, "[0 2]\n"},
		{"NoPair", []string{"twosum", "--target", "10", "1", "2", "3"}, "[]\n"},
		{"NoArgs", []string{"twosum", "--target", "10"}, "[]\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

// TestTwoSum_SkipsInvalidArgs verifies skipped arguments keep their positions and are logged.
func TestTwoSum_SkipsInvalidArgs(t *testing.T) {
	out, errOut, err := run(t, "twosum", "--log-format", "text", "--log-level", "warn",
		"--target", "9", "2", "seven", "NaN", "7")
	require.NoError(t, err)
	assert.Equal(t, "[0 3]\n", out)
	assert.Contains(t, errOut, "skipping non-numeric argument")
	assert.Contains(t, errOut, "arg=seven")
	assert.Contains(t, errOut, "arg=NaN")
	assert.Contains(t, errOut, "command=twosum")
}

func TestTwoSum_RequiresTarget(t *testing.T) {
	_, _, err := run(t, "twosum", "1", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target")
}

func TestTwoSum_ExitCode(t *testing.T) {
	out, _, err := run(t, "twosum", "--exit-code", "--target", "10", "1", "2")
	assert.Equal(t, "[]\n", out)

	var exitErr *commands.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, commands.ExitCodeNegative, exitErr.Code)
	assert.ErrorIs(t, err, commands.ErrNegativeResult)

	_, _, err = run(t, "twosum", "--exit-code", "--target", "3", "1", "2")
	assert.NoError(t, err, "a found pair is not an error")
}

func TestPalindrome(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"SingleArg", []string{"palindrome", "A man, a plan, a canal: Panama"}, "true\n"},
		{"JoinedArgs", []string{"palindrome", "Was", "it", "a", "car", "or", "a", "cat", "I", "saw?"}, "true\n"},
		{"NotPalindrome", []string{"palindrome", "hello"}, "false\n"},
		{"Empty", []string{"palindrome"}, "true\n"},
		{"Normalized", []string{"palindrome", "-n", "Never odd or even"}, "true\nneveroddoreven\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestPalindrome_ExitCode(t *testing.T) {
	out, _, err := run(t, "palindrome", "--exit-code", "hello")
	assert.Equal(t, "false\n", out)
	assert.ErrorIs(t, err, commands.ErrNegativeResult)

	_, _, err = run(t, "palindrome", "--exit-code", "noon")
	assert.NoError(t, err)
}

func TestPalindrome_DebugLogJSON(t *testing.T) {
	_, errOut, err := run(t, "palindrome", "--log-level", "debug", "--log-format", "json", "noon")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"checked"`)
	assert.Contains(t, errOut, `"palindrome":true`)
	assert.Contains(t, errOut, `"command":"palindrome"`)
}

func TestExitWithCode(t *testing.T) {
	assert.NoError(t, commands.ExitWithCode(3, nil))

	base := errors.New("boom")
	err := commands.ExitWithCode(3, base)
	assert.EqualError(t, err, "boom")
	assert.ErrorIs(t, err, base)
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := run(t, "threesum")
	assert.Error(t, err)
}
