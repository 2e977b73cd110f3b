package data

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Record is one state in the upstream feed.
type Record struct {
	State      string `json:"state"`
	Abbrev     string `json:"abreviation"`
	Count      int    `json:"count"`
	MaleCount  int    `json:"male_count"`
	Population Number `json:"population"`
}

// Dataset is the payload delivered by the data source. Its pointer identity
// is what a [render.Chart] watches for changes.
type Dataset struct {
	States []Record `json:"states"`
}

// Number is a float that decodes from either a JSON number or a numeric
// string. The upstream feed ships population as a string for some states.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		str = strings.ReplaceAll(strings.TrimSpace(str), ",", "")
		if str == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("population %q is not a number", str)
		}
		*n = Number(f)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("population %s is not a number", s)
	}
	*n = Number(f)
	return nil
}

// MarshalJSON implements json.Marshaler. Non-finite values are written as
// null, which decodes back to 0.
func (n Number) MarshalJSON() ([]byte, error) {
	if f := float64(n); math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(float64(n), 'f', -1, 64)), nil
}
