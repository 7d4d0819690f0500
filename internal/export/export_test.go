package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"newsdesk/internal/display"
	"newsdesk/internal/domain"
	"newsdesk/internal/repository/sqlite"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func sampleItems() []domain.Item {
	return []domain.Item{
		{ID: "a1", Kind: domain.KindArticle, Category: "politics", Title: "Budget vote [live]", Excerpt: "Parliament *votes*", URL: "https://example.com/a1", PublishedAt: now.Add(-2 * time.Hour), Popularity: 1234},
		{ID: "v1", Kind: domain.KindVideo, Category: "tech", Title: "Chip launch", Duration: "3:20", PublishedAt: now.Add(-30 * time.Minute), Popularity: 45000, Featured: true},
	}
}

func sampleView() ViewExport {
	return ViewExport{
		Version:     Version,
		GeneratedAt: now,
		Facet:       "all",
		Sort:        "newest",
		Page:        1,
		PageSize:    10,
		HasMore:     true,
		Items:       display.ProjectAll(sampleItems(), now),
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"yaml", FormatYAML, false},
		{"csv", FormatCSV, false},
		{"md", FormatMarkdown, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleView()))

	var decoded ViewExport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "all", decoded.Facet)
	assert.True(t, decoded.HasMore)
	require.Len(t, decoded.Items, 2)
	assert.Equal(t, "a1", decoded.Items[0].ID)
	assert.Equal(t, 2, decoded.Items[1].Position)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, sampleView()))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "newest", decoded["sort"])
	items, ok := decoded["items"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 2)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, sampleView()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Position", records[0][0])
	assert.Equal(t, "a1", records[1][1])
	assert.Equal(t, "1,234 views", records[1][5])
	assert.Equal(t, "true", records[2][8])
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatMarkdown, sampleView()))

	out := buf.String()
	assert.Contains(t, out, "# News: all")
	assert.Contains(t, out, `[Budget vote \[live\]](https://example.com/a1)`)
	assert.Contains(t, out, `> Parliament \*votes\*`)
	assert.Contains(t, out, "3:20")
	assert.Contains(t, out, "More items available")

	buf.Reset()
	require.NoError(t, WriteMarkdown(&buf, ViewExport{Facet: "tech"}))
	assert.Contains(t, buf.String(), "_No items._")
}

func TestWriteRejectsTable(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, FormatTable, sampleView()))
}

func TestBackupAndRestore(t *testing.T) {
	ctx := context.Background()

	src, err := sqlite.NewDB(sqlite.Config{Path: t.TempDir() + "/src.db"})
	require.NoError(t, err)
	defer src.Close()

	srcItems := sqlite.NewItemRepository(src)
	srcPrefs := sqlite.NewPreferenceRepository(src)
	_, err = srcItems.UpsertMany(ctx, sampleItems())
	require.NoError(t, err)
	require.NoError(t, srcPrefs.Set(ctx, domain.PrefLastSort, "popular"))

	var buf bytes.Buffer
	require.NoError(t, NewBackupExporter(srcItems, srcPrefs).BackupToWriter(ctx, &buf))
	backup := buf.String()

	dst, err := sqlite.NewDB(sqlite.Config{Path: t.TempDir() + "/dst.db"})
	require.NoError(t, err)
	defer dst.Close()

	dstItems := sqlite.NewItemRepository(dst)
	dstPrefs := sqlite.NewPreferenceRepository(dst)
	existing := sampleItems()[0]
	existing.Title = "Local title"
	require.NoError(t, dstItems.Upsert(ctx, &existing))

	importer := NewImporter(dstItems, dstPrefs)

	result, err := importer.RestoreBackup(ctx, strings.NewReader(backup), ConflictStrategySkip)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Items)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Preferences)

	kept, err := dstItems.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Local title", kept.Title)

	result, err = importer.RestoreBackup(ctx, strings.NewReader(backup), ConflictStrategyOverwrite)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Items)

	replaced, err := dstItems.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Budget vote [live]", replaced.Title)

	pref, err := dstPrefs.Get(ctx, domain.PrefLastSort)
	require.NoError(t, err)
	assert.Equal(t, "popular", pref.Value)

	_, err = importer.RestoreBackup(ctx, strings.NewReader("{"), ConflictStrategySkip)
	assert.Error(t, err)
}
