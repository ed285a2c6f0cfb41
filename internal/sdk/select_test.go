package sdk

import (
	"errors"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func rec(name, path string, buildID *string) Record {
	return Record{DisplayName: name, SDKPath: path, BuildID: buildID}
}

func TestSortByName(t *testing.T) {
	records := []Record{
		rec("watchOS 10.0", "/w", nil),
		rec("iOS 17.0", "/i", nil),
		rec("macOS 14.0", "/m", nil),
		rec("DriverKit 23.0", "/d", nil),
	}
	SortByName(records)
	assert.True(t, sort.SliceIsSorted(records, func(i, j int) bool {
		return records[i].DisplayName < records[j].DisplayName
	}))
	assert.Equal(t, "DriverKit 23.0", records[0].DisplayName)
}

func TestDedupByBuildID(t *testing.T) {
	records := []Record{
		rec("iOS 17.0", "/ios", str("21A5248v")),
		rec("macOS 14.0", "/mac-1", nil),
		rec("iOS Simulator 17.0", "/sim", str("21A5248v")),
		rec("macOS 14.0", "/mac-2", nil),
		rec("tvOS 17.0", "/tv", str("21J5273c")),
	}
	got := DedupByBuildID(records)
	require.Len(t, got, 3)

	// Absent build IDs sort first and collapse into one record.
	assert.Nil(t, got[0].BuildID)
	assert.Equal(t, "/mac-1", got[0].SDKPath)
	// Equal build IDs keep the first record in input order.
	assert.Equal(t, "/ios", got[1].SDKPath)
	assert.Equal(t, "/tv", got[2].SDKPath)
}

func TestDedupByBuildIDIdempotent(t *testing.T) {
	records := []Record{
		rec("a", "/a", str("3")),
		rec("b", "/b", nil),
		rec("c", "/c", str("1")),
		rec("d", "/d", str("3")),
		rec("e", "/e", nil),
		rec("f", "/f", str("1")),
	}
	once := DedupByBuildID(records)
	snapshot := append([]Record(nil), once...)
	twice := DedupByBuildID(once)
	assert.Equal(t, snapshot, twice)

	seen := map[string]bool{}
	for _, r := range twice {
		key := "<none>"
		if r.BuildID != nil {
			key = *r.BuildID
		}
		assert.False(t, seen[key], "build ID %s appears twice", key)
		seen[key] = true
	}
}

func TestDedupSharedBuildIDLeavesOne(t *testing.T) {
	records := []Record{
		rec("iOS 17.0", "/ios", str("21A5248v")),
		rec("iOS Simulator 17.0", "/sim", str("21A5248v")),
	}
	got := DedupByBuildID(records)
	require.Len(t, got, 1)
	assert.Equal(t, "/ios", got[0].SDKPath)
}

func TestBestPicksMostSimilar(t *testing.T) {
	records := []Record{
		rec("iPhoneOS17.0.sdk", "/iphone", nil),
		rec("MacOSX14.0.sdk", "/mac", nil),
	}
	m, err := Best(records, "mac")
	require.NoError(t, err)
	assert.Equal(t, "/mac", m.Record.SDKPath)
	assert.Greater(t, m.Score, 0.0)
}

func TestBestTieKeepsFirst(t *testing.T) {
	records := []Record{
		rec("tvOS 17.0", "/first", nil),
		rec("tvOS 17.0", "/second", nil),
		rec("zzz", "/other", nil),
	}
	m, err := Best(records, "tvos")
	require.NoError(t, err)
	assert.Equal(t, "/first", m.Record.SDKPath)
}

func TestBestNoMatchReturnsFirst(t *testing.T) {
	records := []Record{rec("iOS 17.0", "/ios", nil), rec("tvOS 17.0", "/tv", nil)}
	m, err := Best(records, "qqq")
	require.NoError(t, err)
	assert.Equal(t, "/ios", m.Record.SDKPath)
	assert.Zero(t, m.Score)
}

func TestBestEmpty(t *testing.T) {
	_, err := Best(nil, "mac")
	assert.True(t, errors.Is(err, ErrNoSDKs))
}

func TestResolvePath(t *testing.T) {
	r := rec("macOS 14.0", "/SDKs/MacOSX14.0.sdk", nil)
	assert.Equal(t, "/SDKs/MacOSX14.0.sdk", ResolvePath(r, false))
	assert.Equal(t, filepath.Join("/SDKs/MacOSX14.0.sdk", "System/Library/Frameworks"), ResolvePath(r, true))
	assert.Equal(t, "/SDKs/MacOSX14.0.sdk/System/Library/Frameworks", filepath.ToSlash(ResolvePath(r, true)))
}
