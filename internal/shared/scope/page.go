package scope

import (
	"math"
	"strconv"
)

const (
	MaxLimit = 100
	// MaxSkip keeps OFFSET inside a 32-bit integer.
	MaxSkip = math.MaxInt32
)

type Page struct {
	Limit int
	Skip  int
}

// ParsePage reads limit, skip and page query values. skip wins over page; limit is clamped to 1..MaxLimit.
func ParsePage(limitRaw, skipRaw, pageRaw string, defaultLimit int) Page {
	limit, err := strconv.Atoi(limitRaw)
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	skip := 0
	if s, err := strconv.Atoi(skipRaw); err == nil && s > 0 {
		skip = s
	} else if p, err := strconv.Atoi(pageRaw); err == nil && p > 1 {
		if p-1 > MaxSkip/limit {
			p = MaxSkip/limit + 1
		}
		skip = (p - 1) * limit
	}
	if skip > MaxSkip {
		skip = MaxSkip
	}

	return Page{Limit: limit, Skip: skip}
}
