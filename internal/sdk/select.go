package sdk

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
)

// FrameworksDir is appended to an SDK path by --frameworks.
const FrameworksDir = "System/Library/Frameworks"

// ErrNoSDKs is returned when there is nothing to match a query against.
var ErrNoSDKs = errors.New("no SDKs found")

// Match is the record chosen for a query along with its score.
type Match struct {
	Record Record
	Score  float64
}

// SortByName sorts records by display name, ascending.
func SortByName(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return strings.Compare(a.DisplayName, b.DisplayName)
	})
}

// DedupByBuildID sorts records by build ID and drops neighbours that share
// one. xcodebuild lists some SDKs once per related platform; those entries
// carry the same build ID. Records without a build ID form a single group.
// The input slice is reordered and the deduplicated prefix returned.
func DedupByBuildID(records []Record) []Record {
	slices.SortStableFunc(records, func(a, b Record) int {
		return compareOptional(a.BuildID, b.BuildID)
	})
	return slices.CompactFunc(records, func(a, b Record) bool {
		return equalOptional(a.BuildID, b.BuildID)
	})
}

// Best returns the record whose display name is most similar to query.
// On equal scores the earliest record wins.
func Best(records []Record, query string) (Match, error) {
	if len(records) == 0 {
		return Match{}, ErrNoSDKs
	}
	best := Match{Record: records[0], Score: Similarity(records[0].DisplayName, query)}
	for _, r := range records[1:] {
		if s := Similarity(r.DisplayName, query); s > best.Score {
			best = Match{Record: r, Score: s}
		}
	}
	return best, nil
}

// ResolvePath returns the SDK path, or its frameworks directory when
// frameworks is set.
func ResolvePath(r Record, frameworks bool) string {
	if frameworks {
		return filepath.Join(r.SDKPath, FrameworksDir)
	}
	return r.SDKPath
}
