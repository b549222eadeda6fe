package links

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2021, 5, 26, 12, 30, 45, 0, time.UTC)

func TestLinkTypeFromDomain(t *testing.T) {
	tests := []struct {
		domain  string
		want    LinkType
		wantErr bool
	}{
		{"imgur.com", Imgur, false},
		{"gyazo.com", Gyazo, false},
		{"nuuls.com", Nuuls, false},
		{"example.com", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			got, err := LinkTypeFromDomain(tt.domain)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownLinkType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.domain, got.String())
		})
	}
}

func TestLinkType_RawLink(t *testing.T) {
	assert.Equal(t, "https://i.imgur.com/abc123.png", Imgur.RawLink("abc123"))
	assert.Equal(t, "https://i.gyazo.com/deadbeef.png", Gyazo.RawLink("deadbeef"))
	assert.Equal(t, "https://i.nuuls.com/Xy-1.png", Nuuls.RawLink("Xy-1"))
}

func TestRecord_RawLinkIgnoresOriginal(t *testing.T) {
	originals := []string{
		"https://imgur.com/abc123.jpg",
		"http://i.imgur.com/abc123.gif",
		"imgur.com/abc123",
	}

	for _, link := range originals {
		r, err := NewRecord(link, Imgur, "abc123", "someuser", "chan", "msg", testTime)
		require.NoError(t, err)
		assert.Equal(t, "https://i.imgur.com/abc123.png", r.RawLink(), link)
	}
}

func TestLinkType_String_Invalid(t *testing.T) {
	assert.False(t, LinkType(42).Valid())
	assert.Equal(t, "LinkType(42)", LinkType(42).String())
}

func TestAllLinkTypes_HaveHostData(t *testing.T) {
	for _, lt := range AllLinkTypes() {
		assert.True(t, lt.Valid(), lt)
		assert.NotEmpty(t, lt.Domain())
	}
	assert.True(t, Nuuls.RequiresSubdomain())
	assert.False(t, Imgur.RequiresSubdomain())
}

func TestNewRecord_Validation(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		lt      LinkType
		user    string
		channel string
		at      time.Time
	}{
		{"unknown type", "imgur.com/x", LinkType(0), "u", "c", testTime},
		{"no link", "", Imgur, "u", "c", testTime},
		{"no user", "imgur.com/x", Imgur, "", "c", testTime},
		{"no channel", "imgur.com/x", Imgur, "u", "", testTime},
		{"no time", "imgur.com/x", Imgur, "u", "c", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecord(tt.link, tt.lt, "x", tt.user, tt.channel, "", tt.at)
			assert.Error(t, err)
		})
	}
}

func TestRecord_KeyAndString(t *testing.T) {
	r, err := NewRecord("https://imgur.com/abc123.jpg", Imgur, "abc123", "someuser", "chan", "check this", testTime)
	require.NoError(t, err)

	assert.Equal(t, Key{
		SpecificID: "abc123",
		Type:       Imgur,
		PostedAt:   testTime,
		User:       "someuser",
		Channel:    "chan",
		Message:    "check this",
	}, r.Key())
	assert.Equal(t, "[2021-05-26T12:30:45] #chan someuser: https://i.imgur.com/abc123.png", r.String())
}

func TestFilter(t *testing.T) {
	mk := func(lt LinkType, id, msg string) Record {
		r, err := NewRecord("link", lt, id, "user", "chan", msg, testTime)
		require.NoError(t, err)
		return r
	}

	in := []Record{
		mk(Imgur, "abc123", "hello\r\n"),
		mk(Imgur, "gallery", ""),
		mk(Imgur, "a", ""),
		mk(Imgur, "upload", ""),
		mk(Gyazo, "thumb", ""),
		mk(Gyazo, "gallery", "gallery is only excluded for imgur"),
		mk(Nuuls, "xyz", "multi\nline"),
		mk(Nuuls, "", "empty id"),
	}

	got := Filter(in)
	require.Len(t, got, 3)

	assert.Equal(t, "abc123", got[0].SpecificID)
	assert.Equal(t, "hello", got[0].Message)
	assert.Equal(t, Gyazo, got[1].Type)
	assert.Equal(t, "gallery", got[1].SpecificID)
	assert.Equal(t, "multiline", got[2].Message)

	// input is left untouched
	assert.Equal(t, "hello\r\n", in[0].Message)
}

func TestFilter_Idempotent(t *testing.T) {
	in := []Record{
		{Link: "l", Type: Imgur, SpecificID: "abc", User: "u", Channel: "c", Message: "a\nb", PostedAt: testTime},
		{Link: "l", Type: Imgur, SpecificID: "gallery", User: "u", Channel: "c", PostedAt: testTime},
		{Link: "l", Type: Gyazo, SpecificID: "thumb", User: "u", Channel: "c", PostedAt: testTime},
		{Link: "l", Type: Gyazo, SpecificID: "ok", User: "u", Channel: "c", Message: "x\r", PostedAt: testTime},
	}

	once := Filter(in)
	twice := Filter(once)
	assert.Equal(t, once, twice)
}

func TestFilter_Empty(t *testing.T) {
	assert.Empty(t, Filter(nil))
}

func TestStripLineBreaks(t *testing.T) {
	assert.Equal(t, "one two", StripLineBreaks("one\r\n two"))
	assert.Equal(t, "plain", StripLineBreaks("plain"))
}
