package common

import (
	"encoding/json"
)

type rationalJSON struct {
	Numerator   int64 `json:"numerator"`
	Denominator int64 `json:"denominator"`
}

func (r Rational) MarshalJSON() ([]byte, error) {
	return json.Marshal(rationalJSON{r.n, r.Denominator()})
}

func (r *Rational) UnmarshalJSON(b []byte) error {
	var raw rationalJSON
	err := json.Unmarshal(b, &raw)
	if err != nil {
		return err
	}
	v, err := NewRational(raw.Numerator, raw.Denominator)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
