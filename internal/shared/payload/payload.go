// Package payload decodes loosely typed JSON request bodies field by field,
// collecting every type violation instead of stopping at the first one.
// The resulting validation.Errors merge with ozzo-validation rule errors
// into the single error map returned to clients.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateLayout is the wire format of every date field
const DateLayout = "2006-01-02"

// BodyKey is the error map key used when the body itself is unusable
const BodyKey = "body"

const maxBodyBytes = 1 << 20

const (
	MsgNull        = "Campo não pode ser nulo."
	MsgUnknown     = "Campo desconhecido."
	MsgInvalidBody = "O corpo da requisição deve ser um objeto JSON."
)

// Payload is a JSON object with its values left undecoded
type Payload map[string]json.RawMessage

// Read decodes r as a JSON object
func Read(r io.Reader) (Payload, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}
	return Parse(body)
}

// Parse rejects anything other than a JSON object with an error map under BodyKey
func Parse(body []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(body, &p); err != nil || p == nil {
		return nil, validation.Errors{BodyKey: validation.NewError("validation_invalid_body", MsgInvalidBody)}
	}
	return p, nil
}

// Decoder pulls typed values out of a Payload. Absent keys decode to nil
// without error; presence rules belong to the validators.
type Decoder struct {
	p    Payload
	errs validation.Errors
}

func NewDecoder(p Payload) *Decoder {
	return &Decoder{p: p, errs: validation.Errors{}}
}

// Errors returns the type violations collected so far
func (d *Decoder) Errors() validation.Errors {
	return d.errs
}

func (d *Decoder) Has(key string) bool {
	_, ok := d.p[key]
	return ok
}

func (d *Decoder) fail(key, code, msg string) {
	d.errs[key] = validation.NewError("validation_"+code, msg)
}

// value returns the raw value for a present, non-null key.
// null records a violation unless nullable is set.
func (d *Decoder) value(key string, nullable bool) (json.RawMessage, bool) {
	raw, ok := d.p[key]
	if !ok {
		return nil, false
	}
	if isNull(raw) {
		if !nullable {
			d.fail(key, "null", MsgNull)
		}
		return nil, false
	}
	return raw, true
}

// String decodes a trimmed JSON string
func (d *Decoder) String(key, typeMsg string) *string {
	raw, ok := d.value(key, false)
	if !ok {
		return nil
	}
	return d.decodeString(key, raw, typeMsg)
}

// NullableString also reports whether the key was present, so that an explicit null can clear a value
func (d *Decoder) NullableString(key, typeMsg string) (*string, bool) {
	if !d.Has(key) {
		return nil, false
	}
	raw, ok := d.value(key, true)
	if !ok {
		return nil, true
	}
	return d.decodeString(key, raw, typeMsg), true
}

func (d *Decoder) decodeString(key string, raw json.RawMessage, typeMsg string) *string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		d.fail(key, "invalid_string", typeMsg)
		return nil
	}
	s = strings.TrimSpace(s)
	return &s
}

// Int accepts integral JSON numbers and numeric strings
func (d *Decoder) Int(key, typeMsg string) *int {
	raw, ok := d.value(key, false)
	if !ok {
		return nil
	}
	n, ok := parseInt(raw)
	if !ok || n > math.MaxInt32 || n < math.MinInt32 {
		d.fail(key, "invalid_int", typeMsg)
		return nil
	}
	v := int(n)
	return &v
}

func (d *Decoder) Int64(key, typeMsg string) *int64 {
	raw, ok := d.value(key, false)
	if !ok {
		return nil
	}
	n, ok := parseInt(raw)
	if !ok {
		d.fail(key, "invalid_int", typeMsg)
		return nil
	}
	return &n
}

// Date parses a YYYY-MM-DD string as a UTC midnight
func (d *Decoder) Date(key, typeMsg string) *time.Time {
	raw, ok := d.value(key, false)
	if !ok {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		d.fail(key, "invalid_date", typeMsg)
		return nil
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		d.fail(key, "invalid_date", typeMsg)
		return nil
	}
	return &t
}

// Only flags every key outside allowed
func (d *Decoder) Only(allowed ...string) {
	known := make(map[string]struct{}, len(allowed))
	for _, k := range allowed {
		known[k] = struct{}{}
	}
	for k := range d.p {
		if _, ok := known[k]; !ok {
			d.fail(k, "unknown_field", MsgUnknown)
		}
	}
}

// Merge combines decoder violations with the result of validation.ValidateStruct.
// Type violations win over rule violations on the same key. Returns nil when both are empty.
func Merge(decodeErrs validation.Errors, ruleErr error) error {
	merged := validation.Errors{}

	if ruleErr != nil {
		var ruleErrs validation.Errors
		if !errors.As(ruleErr, &ruleErrs) {
			// validation.InternalError: a broken rule, not bad input
			return ruleErr
		}
		for k, v := range ruleErrs {
			merged[k] = v
		}
	}
	for k, v := range decodeErrs {
		merged[k] = v
	}

	return merged.Filter()
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func parseInt(raw json.RawMessage) (int64, bool) {
	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return 0, false
	}
	if n, err := num.Int64(); err == nil {
		return n, true
	}
	f, err := num.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int64(f), true
}
