// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChrisFewtrell/GitLogTransformer/cmd/gitlogtransformer/internal/clierr"
)

const (
	hashA = "abcdef0123456789abcdef0123456789abcdef01"
	hashB = "da9a9075992d880705004aa40c819546fea4d9f2"

	tsvHeader = "Line#\tCommittish\tFilesChanged\tInsertions\tDeletions\tSum changes\tDate\tMonth\tComment\t\n"
)

// execute runs the root command and returns what it logged.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var logs bytes.Buffer
	cmd.SetOut(&logs)
	cmd.SetErr(&logs)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return logs.String(), err
}

func writeLog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "git.log")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func readReport(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestConvert_SingleRecord(t *testing.T) {
	in := writeLog(t,
		hashA+" Wed Nov 29 11:34:41 2017 +0000 Fix bug",
		" 2 files changed, 3 insertions(+), 1 deletions(-)",
	)

	logs, err := execute(t, in)
	require.NoError(t, err)
	assert.Contains(t, logs, "processing file")
	assert.Contains(t, logs, "finished")

	want := tsvHeader +
		"1\t" + hashA + "\t2\t3\t1\t4\t2017-11-29\t2017-11\t\"Fix bug\"\t\n"
	assert.Equal(t, want, readReport(t, in+".tsv"))
}

func TestConvert_HeaderWithoutStats(t *testing.T) {
	in := writeLog(t,
		hashB+" Fri Dec 1 09:00:00 2017 +0100 First",
		"",
		hashA+" Sat Dec 2 10:00:00 2017 +0100 Second",
		"",
		" 1 file changed, 5 insertions(+)",
	)

	logs, err := execute(t, "-v", in)
	require.NoError(t, err)
	assert.Contains(t, logs, "commit has no stats line")

	want := tsvHeader +
		"1\t" + hashB + "\t0\t0\t0\t0\t2017-12-01\t2017-12\t\"First\"\t\n" +
		"2\t" + hashA + "\t1\t5\t0\t5\t2017-12-02\t2017-12\t\"Second\"\t\n"
	assert.Equal(t, want, readReport(t, in+".tsv"))
}

func TestConvert_FatalErrorsWriteNothing(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		wantCode int
		wantMsg  string
	}{
		{
			name: "orphan stats",
			lines: []string{
				" 2 files changed, 3 insertions(+), 1 deletions(-)",
				hashA + " Wed Nov 29 11:34:41 2017 +0000 Fix bug",
			},
			wantCode: clierr.ExitOrphanStats,
			wantMsg:  "line 1",
		},
		{
			name: "malformed date",
			lines: []string{
				hashA + " Wed Nov 29 11:34:41 2017 +0000 Fine",
				" 1 file changed, 1 insertion(+)",
				hashB + " Xxx Qqq 29 11:34:41 2017 +0000 Garbled",
			},
			wantCode: clierr.ExitMalformedDate,
			wantMsg:  "line 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := writeLog(t, tt.lines...)

			_, err := execute(t, in)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, clierr.ExitCodeOf(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.NoFileExists(t, in+".tsv")
		})
	}
}

func TestConvert_Usage(t *testing.T) {
	for _, args := range [][]string{{}, {"a.log", "b.log"}} {
		_, err := execute(t, args...)
		require.Error(t, err)
		assert.Equal(t, clierr.ExitUsage, clierr.ExitCodeOf(err))
	}
}

func TestConvert_MissingFile(t *testing.T) {
	in := filepath.Join(t.TempDir(), "nope.log")

	logs, err := execute(t, in)
	require.Error(t, err)
	assert.Equal(t, clierr.ExitNotFound, clierr.ExitCodeOf(err))
	assert.Contains(t, logs, "cannot find file")
	assert.NoFileExists(t, in+".tsv")
}

func TestConvert_SeparatorAndOutputFlags(t *testing.T) {
	in := writeLog(t,
		hashA+" Wed Nov 29 11:34:41 2017 +0000 Fix bug",
		" 2 files changed, 3 insertions(+), 1 deletions(-)",
	)
	out := filepath.Join(t.TempDir(), "reports", "out.csv")

	_, err := execute(t, "--separator", ",", "--output", out, in)
	require.NoError(t, err)

	report := readReport(t, out)
	assert.True(t, strings.HasPrefix(report, "Line#,Committish,"))
	assert.Contains(t, report, "1,"+hashA+",2,3,1,4,2017-11-29,2017-11,\"Fix bug\",\n")
	assert.NoFileExists(t, in+".tsv")
}

func TestConvert_ConfigFile(t *testing.T) {
	in := writeLog(t,
		hashA+" Wed Nov 29 11:34:41 2017 +0000 Fix bug",
		" 2 files changed, 3 insertions(+), 1 deletions(-)",
	)
	cfgPath := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"output_suffix: .txt\ndate_layout: 02/01/2006\ntrailing_separator: false\n"), 0o644))

	_, err := execute(t, "--config", cfgPath, in)
	require.NoError(t, err)

	want := "Line#\tCommittish\tFilesChanged\tInsertions\tDeletions\tSum changes\tDate\tMonth\tComment\n" +
		"1\t" + hashA + "\t2\t3\t1\t4\t29/11/2017\t2017-11\t\"Fix bug\"\n"
	assert.Equal(t, want, readReport(t, in+".txt"))
}

func TestConvert_BadConfig(t *testing.T) {
	in := writeLog(t, hashA+" Wed Nov 29 11:34:41 2017 +0000 Fix bug")
	cfgPath := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("no_such_key: 1\n"), 0o644))

	_, err := execute(t, "--config", cfgPath, in)
	require.Error(t, err)
	assert.Equal(t, clierr.ExitUsage, clierr.ExitCodeOf(err))
	assert.NoFileExists(t, in+".tsv")
}

func TestConvert_GzipInput(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(hashA + " Wed Nov 29 11:34:41 2017 +0000 Fix bug\n 1 file changed, 1 deletion(-)\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	in := filepath.Join(t.TempDir(), "git.log.gz")
	require.NoError(t, os.WriteFile(in, buf.Bytes(), 0o644))

	_, err = execute(t, in)
	require.NoError(t, err)
	assert.Contains(t, readReport(t, in+".tsv"), "1\t"+hashA+"\t1\t0\t1\t1\t2017-11-29\t2017-11\t\"Fix bug\"\t\n")
}
