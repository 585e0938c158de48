package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// Record is a wins-losses pair, printed as "W-L". It is encoded as that
// string in JSON too.
type Record struct {
	Wins   int
	Losses int
}

func (r Record) String() string {
	return fmt.Sprintf("%d-%d", r.Wins, r.Losses)
}

func (r Record) Games() int {
	return r.Wins + r.Losses
}

func (r Record) Add(o Record) Record {
	return Record{Wins: r.Wins + o.Wins, Losses: r.Losses + o.Losses}
}

func (r Record) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Record) UnmarshalText(b []byte) error {
	rec, err := ParseRecord(string(b))
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

// ParseRecord reads the "W-L" form.
func ParseRecord(s string) (Record, error) {
	w, l, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Record{}, errors.Newf("record %q is not in W-L form", s)
	}
	wins, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil || wins < 0 {
		return Record{}, errors.Newf("record %q has an invalid win count", s)
	}
	losses, err := strconv.Atoi(strings.TrimSpace(l))
	if err != nil || losses < 0 {
		return Record{}, errors.Newf("record %q has an invalid loss count", s)
	}
	return Record{Wins: wins, Losses: losses}, nil
}

// Round2 rounds half away from zero to 2 decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
