package sdk

import (
	"encoding/json"
	"io"
	"strconv"

	"xcode-sdk/internal/display"
)

// listHeaders are the columns shown by WriteTable. Paths, build IDs and the
// remaining product metadata are left out.
var listHeaders = []string{
	"DISPLAY NAME", "BASE SDK", "PLATFORM", "PLATFORM VERSION", "SDK VERSION",
	"PRODUCT BUILD VERSION", "PRODUCT NAME", "PRODUCT VERSION",
}

// WriteTable lists records as an aligned table, in the order given.
func WriteTable(w io.Writer, records []Record) error {
	tbl := display.NewTable(w, listHeaders...)
	for _, r := range records {
		tbl.Row(
			r.DisplayName,
			strconv.FormatBool(r.IsBaseSDK),
			r.Platform,
			r.PlatformVersion,
			r.SDKVersion,
			Display(r.ProductBuildVersion),
			Display(r.ProductName),
			Display(r.ProductVersion),
		)
	}
	return tbl.Flush()
}

// WriteJSON writes records as an indented JSON array using xcodebuild's keys.
func WriteJSON(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
