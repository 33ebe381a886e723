package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/c9s/outliers/pkg/dataset"
	"github.com/c9s/outliers/pkg/dataset/mocks"
	"github.com/c9s/outliers/pkg/outlier"
	"github.com/c9s/outliers/pkg/report"
)

func readCloser(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

func TestRunDetect(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	source := mocks.NewMockSource(mockCtrl)
	source.EXPECT().Open("a.txt").Return(readCloser("1 2 2 2 3 4 4 4 5 25"), nil)
	source.EXPECT().Open("b.txt").Return(readCloser("1 2 3 4 5"), nil)

	var buf bytes.Buffer
	err := runDetect(context.Background(), dataset.NewLoader(source, ""), []string{"a.txt", "b.txt"}, detectOptions{
		Multiplier: outlier.DefaultMultiplier,
		Format:     report.FormatJSON,
	}, &buf)
	require.NoError(t, err)

	var reports []report.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "a.txt", reports[0].Name)
	assert.Equal(t, []float64{25}, reports[0].Outliers)
	assert.Equal(t, "b.txt", reports[1].Name)
	assert.Empty(t, reports[1].Outliers)
}

func TestRunDetect_Errors(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	source := mocks.NewMockSource(mockCtrl)
	source.EXPECT().Open("empty.txt").Return(readCloser("# nothing here\n"), nil)

	var buf bytes.Buffer
	err := runDetect(context.Background(), dataset.NewLoader(source, ""), []string{"empty.txt"}, detectOptions{
		Multiplier: outlier.DefaultMultiplier,
		Format:     report.FormatPlain,
	}, &buf)
	assert.True(t, errors.Is(err, outlier.ErrInvalidInput), err)
	assert.Contains(t, err.Error(), "empty.txt")

	err = runDetect(context.Background(), dataset.NewLoader(source, ""), []string{"unused.txt"}, detectOptions{
		Multiplier: -1,
		Format:     report.FormatPlain,
	}, &buf)
	assert.True(t, errors.Is(err, outlier.ErrInvalidArgument), err)
}

func TestDetectCmd(t *testing.T) {
	file := filepath.Join(t.TempDir(), "latency.txt")
	require.NoError(t, os.WriteFile(file, []byte("1 2 2 2 3 4 4 4 5 25\n"), 0644))

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetArgs([]string{"detect", "--no-color", "--format", "plain", "--multiplier", "1.5", file})
	defer RootCmd.SetArgs(nil)

	require.NoError(t, RootCmd.Execute())
	assert.Equal(t, file+": 10 values, median 3.5, fence [0.5, 6.5], 1 outliers\n25\n", buf.String())
}
