package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrevorS/agglo"
)

func TestLoad(t *testing.T) {
	input := "Austria\t44.8\t1.1\n" +
		"  Belgium \t 41.5 \t1.3\n" +
		"\n" +
		"Chile\t15.1\t1.7\t\n"

	entities, err := Load(strings.NewReader(input), Options{})
	require.NoError(t, err)

	assert.Equal(t, []agglo.Entity{
		{Name: "Austria", Attrs: []float64{44.8, 1.1}},
		{Name: "Belgium", Attrs: []float64{41.5, 1.3}},
		{Name: "Chile", Attrs: []float64{15.1, 1.7}},
	}, entities)
}

func TestLoad_DuplicateNames(t *testing.T) {
	input := "a\t1\nb\t2\na\t3\n"

	t.Run("last wins in first position", func(t *testing.T) {
		entities, err := Load(strings.NewReader(input), Options{})
		require.NoError(t, err)
		require.Len(t, entities, 2)
		assert.Equal(t, agglo.Entity{Name: "a", Attrs: []float64{3}}, entities[0])
		assert.Equal(t, "b", entities[1].Name)
	})

	t.Run("keep duplicates", func(t *testing.T) {
		entities, err := Load(strings.NewReader(input), Options{KeepDuplicates: true})
		require.NoError(t, err)
		require.Len(t, entities, 3)
		assert.Equal(t, []float64{1}, entities[0].Attrs)
		assert.Equal(t, []float64{3}, entities[2].Attrs)
	})
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"bad number", "a\t1\nb\tx\n", "line 2: attribute 1 of \"b\""},
		{"missing name", "a\t1\n\t2\n", "line 2: missing name"},
		{"empty middle field", "A\t1\t\t3\nB\t4\t\t6\n", "line 1: attribute 2 of \"A\" is empty"},
		{"quote does not span lines", "\"Foo\t1\nB\tx\n", "line 2: attribute 1 of \"B\""},
		{"empty field after blank line", "A\t1\t2\n\nB\t4\t \t6\n", "line 3: attribute 2 of \"B\" is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.input), Options{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_QuotesAreLiteral(t *testing.T) {
	input := "\"Foo\t1\t2\nB\t4\t6\nC\t1\t1\n"

	entities, err := Load(strings.NewReader(input), Options{})
	require.NoError(t, err)
	assert.Equal(t, []agglo.Entity{
		{Name: "\"Foo", Attrs: []float64{1, 2}},
		{Name: "B", Attrs: []float64{4, 6}},
		{Name: "C", Attrs: []float64{1, 1}},
	}, entities)
}

func TestLoad_Empty(t *testing.T) {
	entities, err := Load(strings.NewReader(""), Options{})
	require.NoError(t, err)
	assert.Empty(t, entities)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("x\t1\t2\ny\t3\t4\n"), 0o600))

	entities, err := LoadFile(path, Options{})
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, "y", entities[1].Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open dataset")
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestLoadFile_Countries(t *testing.T) {
	entities, err := LoadFile(filepath.Join("testdata", "countries.tsv"), Options{})
	require.NoError(t, err)
	require.Len(t, entities, 12)

	assert.Equal(t, "Austria", entities[0].Name)
	assert.Equal(t, []float64{44.8, 1.1, 81.4, 2.9}, entities[0].Attrs)

	result, err := agglo.Run(entities, 9, agglo.DefaultConfig())
	require.NoError(t, err)
	assert.Len(t, result.Clusters, 3)
	assert.InDelta(t, 204.37, result.Distance, 1e-9)
}
