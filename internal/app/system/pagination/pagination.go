// Package pagination handles 1-indexed page numbers and the row ranges
// they map to.
//
// The backend does not report a total count, so HasNext is a heuristic: a
// full page implies there may be another. An exactly-full last page shows
// a Next link that leads to an empty page.
package pagination

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// MaxPage is the largest page number served. Larger requests are clamped
// so the row range stays within int.
const MaxPage = math.MaxInt32

// ParsePage reads a page query value. Anything that is not a positive
// integer yields page 1. Numbers above MaxPage yield MaxPage.
func ParsePage(raw string) int {
	p, err := strconv.Atoi(strings.TrimSpace(raw))
	if errors.Is(err, strconv.ErrRange) && p > 0 {
		return MaxPage
	}
	if err != nil || p < 1 {
		return 1
	}
	if p > MaxPage {
		return MaxPage
	}
	return p
}

// Range returns the inclusive row range [from, to] for page p of size
// size: [(p-1)*size, p*size-1]. page is clamped to [1, MaxPage].
func Range(page, size int) (from, to int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	from = (page - 1) * size
	to = page*size - 1
	return from, to
}

// HasNext reports whether a Next link is shown for a page that returned
// got rows.
func HasNext(got, size int) bool {
	return size > 0 && got == size
}

// Page is the pagination affordance for a rendered page.
type Page struct {
	Number  int
	HasPrev bool
	HasNext bool
	PrevURL string
	NextURL string
}

// Build describes page number after a fetch returned got rows. base is the
// path the page links point to, e.g. "/stories".
func Build(base string, number, got, size int) Page {
	p := Page{
		Number:  number,
		HasPrev: number > 1,
		HasNext: HasNext(got, size),
	}
	if p.HasPrev {
		p.PrevURL = base + "?page=" + strconv.Itoa(number-1)
	}
	if p.HasNext {
		p.NextURL = base + "?page=" + strconv.Itoa(number+1)
	}
	return p
}
