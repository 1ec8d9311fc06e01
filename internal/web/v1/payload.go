package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/praneeth-grandhi/Hostel-Management/internal/core/domain"
)

// nonFieldErrors is the key used for problems with the body as a whole.
const nonFieldErrors = "non_field_errors"

// payload is a decoded JSON object body. Accessors return nil for absent
// fields and record a reason for fields of the wrong type; unknown fields are
// ignored.
type payload struct {
	fields map[string]json.RawMessage
	errs   *domain.ValidationError
}

// decodePayload reads the request body as a JSON object. An empty body decodes
// as an empty object.
func decodePayload(c *gin.Context) (*payload, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}

	p := &payload{fields: map[string]json.RawMessage{}, errs: &domain.ValidationError{}}
	if len(bytes.TrimSpace(body)) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(body, &p.fields); err != nil || p.fields == nil {
		return nil, domain.NewValidationError(nonFieldErrors, "expected a JSON object")
	}
	return p, nil
}

// require records a reason for every listed field missing from the body.
func (p *payload) require(names ...string) {
	for _, name := range names {
		if _, ok := p.fields[name]; !ok {
			p.errs.Add(name, "this field is required")
		}
	}
}

// raw returns the field's JSON value, or nil when absent or null. A null is
// recorded as an error.
func (p *payload) raw(name string) json.RawMessage {
	value, ok := p.fields[name]
	if !ok {
		return nil
	}
	if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		p.errs.Add(name, "this field may not be null")
		return nil
	}
	return value
}

func (p *payload) str(name string) *string {
	value := p.raw(name)
	if value == nil {
		return nil
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		p.errs.Add(name, "not a valid string")
		return nil
	}
	return &s
}

// maxExactFloat bounds exponent-form integers such as 1e12, beyond which a
// float64 no longer holds every integer.
const maxExactFloat = 1 << 53

// number parses an integer field from its JSON literal. Integral decimals and
// exponents like 12.0 or 1e3 are accepted while they stay exact.
func (p *payload) number(name string) (int64, bool) {
	value := p.raw(name)
	if value == nil {
		return 0, false
	}
	literal := string(bytes.TrimSpace(value))

	n, err := strconv.ParseInt(literal, 10, 64)
	if err == nil {
		return n, true
	}
	if errors.Is(err, strconv.ErrRange) {
		p.errs.Add(name, "integer out of range")
		return 0, false
	}

	f, err := strconv.ParseFloat(literal, 64)
	if err != nil || f != math.Trunc(f) {
		p.errs.Add(name, "a valid integer is required")
		return 0, false
	}
	if math.Abs(f) > maxExactFloat {
		p.errs.Add(name, "integer out of range")
		return 0, false
	}
	return int64(f), true
}

func (p *payload) integer(name string) *int {
	n, ok := p.number(name)
	if !ok {
		return nil
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		p.errs.Add(name, "integer out of range")
		return nil
	}
	i := int(n)
	return &i
}

func (p *payload) int64(name string) *int64 {
	n, ok := p.number(name)
	if !ok {
		return nil
	}
	return &n
}

func (p *payload) boolean(name string) *bool {
	value := p.raw(name)
	if value == nil {
		return nil
	}
	var b bool
	if err := json.Unmarshal(value, &b); err != nil {
		p.errs.Add(name, "must be a valid boolean")
		return nil
	}
	return &b
}

// err returns every reason recorded while reading the payload.
func (p *payload) err() error {
	return p.errs.OrNil()
}
