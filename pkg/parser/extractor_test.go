package parser

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccollicutt/imagelinks/pkg/links"
)

func writeLog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestExtractor() (*Extractor, *logtest.Hook) {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return NewExtractor(log), hook
}

func TestExtractor_Extract(t *testing.T) {
	dir := t.TempDir()
	path := writeLog(t, dir, "chan-2021-05-26.log",
		"# Start logging at 2021-05-26 00:00:00 UTC\n"+
			"[12:30:45] someuser: check this https://imgur.com/abc123.jpg\n"+
			"[12:31:00]  other: no links here\n")

	e, _ := newTestExtractor()
	records, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "chan", r.Channel)
	assert.Equal(t, "someuser", r.User)
	assert.Equal(t, "abc123", r.SpecificID)
	assert.Equal(t, links.Imgur, r.Type)
	assert.Equal(t, "https://imgur.com/abc123.jpg", r.Link)
	assert.Equal(t, "check this https://imgur.com/abc123.jpg", r.Message)
	assert.True(t, time.Date(2021, 5, 26, 12, 30, 45, 0, time.UTC).Equal(r.PostedAt))
	assert.Equal(t, "https://i.imgur.com/abc123.png", r.RawLink())
}

func TestExtractor_TwoLinksOneLine(t *testing.T) {
	dir := t.TempDir()
	path := writeLog(t, dir, "chan-2021-05-26.log",
		"[08:00:00]  bob: https://imgur.com/one.png and https://i.nuuls.com/two\n")

	e, _ := newTestExtractor()
	records, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, links.Imgur, records[0].Type)
	assert.Equal(t, links.Nuuls, records[1].Type)
	for _, r := range records {
		assert.Equal(t, "bob", r.User)
		assert.Equal(t, records[0].Message, r.Message)
		assert.True(t, records[0].PostedAt.Equal(r.PostedAt))
	}
}

func TestExtractor_SkipsCommentsMalformedAndSpacedUsers(t *testing.T) {
	dir := t.TempDir()
	path := writeLog(t, dir, "chan-2021-05-26.log",
		"# https://imgur.com/incomment\n"+
			"garbage https://imgur.com/nostamp\n"+
			"[10:00:00]  bob has shared https://imgur.com/system\n"+
			"[10:00:01]  alice: https://gyazo.com/kept\r\n")

	e, hook := newTestExtractor()
	records, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "kept", records[0].SpecificID)
	assert.Equal(t, "alice", records[0].User)

	var sawParseFailure bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.DebugLevel && entry.Data[logrus.ErrorKey] != nil {
			sawParseFailure = true
		}
	}
	assert.True(t, sawParseFailure, "expected a debug entry for the malformed line")
}

func TestExtractor_VeryLongLine(t *testing.T) {
	dir := t.TempDir()
	path := writeLog(t, dir, "chan-2021-05-26.log",
		"[10:00:01]  alice: https://gyazo.com/kept\n"+
			"[10:00:02]  spam: "+strings.Repeat("a", 2*1024*1024)+"\n"+
			"[10:00:03]  bob: https://imgur.com/after\n")

	e, _ := newTestExtractor()
	records, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "kept", records[0].SpecificID)
	assert.Equal(t, "after", records[1].SpecificID)
}

func TestExtractor_BadFilename(t *testing.T) {
	dir := t.TempDir()
	path := writeLog(t, dir, "notes.txt", "[10:00:01]  alice: https://gyazo.com/x\n")

	e, _ := newTestExtractor()
	records, err := e.Extract(context.Background(), path)
	assert.ErrorIs(t, err, ErrBadFilename)
	assert.Nil(t, records)
}

func TestExtractor_UndecodableFile(t *testing.T) {
	dir := t.TempDir()
	path := writeLog(t, dir, "chan-2021-05-26.log", "[10:00:01]  alice: https://gyazo.com/x \xff\xfe\n")

	e, hook := newTestExtractor()
	records, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "Unable to decode")
}

func TestExtractor_MissingFile(t *testing.T) {
	e, _ := newTestExtractor()
	_, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "chan-2021-05-26.log"))
	assert.Error(t, err)
}

func TestExtractor_Cancelled(t *testing.T) {
	dir := t.TempDir()
	path := writeLog(t, dir, "chan-2021-05-26.log", "[10:00:01]  alice: https://gyazo.com/x\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e, _ := newTestExtractor()
	_, err := e.Extract(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = e.ExtractAll(ctx, []string{path})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractor_ExtractAll_SkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	good1 := writeLog(t, dir, "chan-2021-05-26.log", "[10:00:01]  alice: https://gyazo.com/one\n")
	bad := writeLog(t, dir, "readme.md", "https://gyazo.com/ignored\n")
	good2 := writeLog(t, dir, "chan-2021-05-27.log", "[11:00:00]  bob: https://imgur.com/two\n")

	e, hook := newTestExtractor()
	records, err := e.ExtractAll(context.Background(), []string{good1, bad, good2})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "one", records[0].SpecificID)
	assert.Equal(t, "two", records[1].SpecificID)
	assert.Equal(t, 27, records[1].PostedAt.Day())

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestExtractor_GalleryMatchedThenFiltered(t *testing.T) {
	dir := t.TempDir()
	path := writeLog(t, dir, "chan-2021-05-26.log", "[10:00:01]  alice: https://imgur.com/gallery/XyZ\n")

	e, _ := newTestExtractor()
	records, err := e.Extract(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "gallery", records[0].SpecificID)

	assert.Empty(t, links.Filter(records))
}
