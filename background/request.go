// Package background generates flat-color background images with an optional
// border along one edge, as used for faux columns.
package background

import (
	"net/url"
	"sort"
	"strings"
)

// Query parameter names. Keys are matched case-insensitively.
const (
	ParamFormat          = "imgType"
	ParamBackgroundColor = "bgColor"
	ParamWidth           = "bgWidth"
	ParamHeight          = "bgHeight"
	ParamBorderLocation  = "bdLoc"
	ParamBorderColor     = "bdColor"
	ParamBorderSize      = "bdSize"
)

// Params are the raw, unvalidated request parameters. Empty strings are
// treated as absent.
type Params struct {
	Format          string
	BackgroundColor string
	Width           string
	Height          string
	BorderLocation  string
	BorderColor     string
	BorderSize      string
}

// ParseQuery extracts Params from URL query values. When a key is given more
// than once, the first value of the lexically smallest spelling wins.
func ParseQuery(q url.Values) Params {
	keys := make([]string, 0, len(q))
	for key := range q {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := make(map[string]string, len(q))
	for _, key := range keys {
		lower := strings.ToLower(key)
		if _, ok := values[lower]; ok || len(q[key]) == 0 {
			continue
		}
		values[lower] = q[key][0]
	}

	get := func(name string) string {
		return values[strings.ToLower(name)]
	}

	return Params{
		Format:          get(ParamFormat),
		BackgroundColor: get(ParamBackgroundColor),
		Width:           get(ParamWidth),
		Height:          get(ParamHeight),
		BorderLocation:  get(ParamBorderLocation),
		BorderColor:     get(ParamBorderColor),
		BorderSize:      get(ParamBorderSize),
	}
}

// Location is the edge of an image a Border is drawn along.
type Location string

// Border locations.
const (
	Top    = Location("top")
	Right  = Location("right")
	Bottom = Location("bottom")
	Left   = Location("left")
)

// Locations returns all valid Locations.
func Locations() []Location {
	return []Location{Top, Right, Bottom, Left}
}

// Valid returns whether loc is one of Top, Right, Bottom or Left.
func (loc Location) Valid() bool {
	for _, l := range Locations() {
		if loc == l {
			return true
		}
	}
	return false
}

// Border is a colored band along one edge of an image.
type Border struct {
	Location Location
	// Color is a lowercase 6-digit hex color without a leading "#".
	Color string
	// Size is the thickness of the border in pixels.
	Size int
}

// Request is a validated image request. Use Validate to create one.
type Request struct {
	// Format is one of "png", "gif" or "jpg".
	Format string
	// BackgroundColor is a lowercase 6-digit hex color without a leading "#".
	BackgroundColor string
	Width           int
	Height          int
	// Border is nil for border-less images.
	Border *Border
}

// HasBorder returns whether the Request has a Border.
func (req Request) HasBorder() bool {
	return req.Border != nil
}

// Limits are the maximum number of decimal digits allowed for the
// dimensions of a Request.
type Limits struct {
	WidthDigits  int
	HeightDigits int
	BorderDigits int
}

// DefaultLimits returns the default Limits: widths up to 9999, heights up to
// 99999 and border sizes up to 99 pixels.
func DefaultLimits() Limits {
	return Limits{
		WidthDigits:  4,
		HeightDigits: 5,
		BorderDigits: 2,
	}
}

func (l Limits) withDefaults() Limits {
	def := DefaultLimits()
	if l.WidthDigits <= 0 {
		l.WidthDigits = def.WidthDigits
	}
	if l.HeightDigits <= 0 {
		l.HeightDigits = def.HeightDigits
	}
	if l.BorderDigits <= 0 {
		l.BorderDigits = def.BorderDigits
	}
	return l
}
