package v1

import (
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/praneeth-grandhi/Hostel-Management/internal/core/domain"
)

func newPayload(t *testing.T, body string) (*payload, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return decodePayload(c)
}

func TestDecodePayload_Body(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "object", body: `{"a": 1}`},
		{name: "empty body", body: ""},
		{name: "whitespace body", body: "  \n"},
		{name: "array", body: `[1, 2]`, wantErr: true},
		{name: "null", body: `null`, wantErr: true},
		{name: "string", body: `"text"`, wantErr: true},
		{name: "truncated", body: `{"a": `, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := newPayload(t, tt.body)
			if tt.wantErr {
				var verr *domain.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("err = %v, want ValidationError", err)
				}
				if _, ok := verr.Fields[nonFieldErrors]; !ok {
					t.Errorf("fields = %v, want %s", verr.Fields, nonFieldErrors)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.err() != nil {
				t.Errorf("fresh payload reports %v", p.err())
			}
		})
	}
}

func TestPayload_Accessors(t *testing.T) {
	p, err := newPayload(t, `{
		"name": "Asha",
		"rooms": 12,
		"rooms_float": 12.0,
		"huge": 1e12,
		"owner": 9007199254740,
		"active": false,
		"blank": "",
		"wrong_bool": 1
	}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got := p.str("name"); got == nil || *got != "Asha" {
		t.Errorf("str(name) = %v", got)
	}
	if got := p.str("blank"); got == nil || *got != "" {
		t.Errorf("str(blank) = %v, want empty string", got)
	}
	if got := p.str("absent"); got != nil {
		t.Errorf("str(absent) = %v, want nil", got)
	}
	if got := p.integer("rooms"); got == nil || *got != 12 {
		t.Errorf("integer(rooms) = %v", got)
	}
	if got := p.integer("rooms_float"); got == nil || *got != 12 {
		t.Errorf("integer(rooms_float) = %v", got)
	}
	if got := p.int64("owner"); got == nil || *got != 9007199254740 {
		t.Errorf("int64(owner) = %v", got)
	}
	if got := p.boolean("active"); got == nil || *got {
		t.Errorf("boolean(active) = %v, want false", got)
	}
	if p.err() != nil {
		t.Fatalf("unexpected errors: %v", p.err())
	}

	if got := p.integer("huge"); got != nil {
		t.Errorf("integer(huge) = %v, want nil", *got)
	}
	if got := p.boolean("wrong_bool"); got != nil {
		t.Errorf("boolean(wrong_bool) = %v, want nil", *got)
	}

	var verr *domain.ValidationError
	if !errors.As(p.err(), &verr) {
		t.Fatalf("err = %v, want ValidationError", p.err())
	}
	if verr.Fields["huge"] != "integer out of range" {
		t.Errorf("huge = %q", verr.Fields["huge"])
	}
	if verr.Fields["wrong_bool"] != "must be a valid boolean" {
		t.Errorf("wrong_bool = %q", verr.Fields["wrong_bool"])
	}
}

func TestPayload_Int64Precision(t *testing.T) {
	tests := []struct {
		name       string
		literal    string
		want       int64
		wantReason string
	}{
		{name: "beyond float precision", literal: "9007199254740993", want: 9007199254740993},
		{name: "max int64", literal: "9223372036854775807", want: math.MaxInt64},
		{name: "negative", literal: "-42", want: -42},
		{name: "integral exponent", literal: "1e3", want: 1000},
		{name: "integral decimal", literal: "7.0", want: 7},
		{name: "just past int64", literal: "9223372036854775808", wantReason: "integer out of range"},
		{name: "below int64", literal: "-9223372036854775809", wantReason: "integer out of range"},
		{name: "inexact exponent", literal: "1e19", wantReason: "integer out of range"},
		{name: "fraction", literal: "2.5", wantReason: "a valid integer is required"},
		{name: "quoted number", literal: `"4"`, wantReason: "a valid integer is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := newPayload(t, `{"owner": `+tt.literal+`}`)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}

			got := p.int64("owner")
			if tt.wantReason == "" {
				if got == nil || *got != tt.want {
					t.Fatalf("int64(owner) = %v, want %d", got, tt.want)
				}
				if p.err() != nil {
					t.Errorf("unexpected errors: %v", p.err())
				}
				return
			}

			if got != nil {
				t.Errorf("int64(owner) = %d, want nil", *got)
			}
			var verr *domain.ValidationError
			if !errors.As(p.err(), &verr) {
				t.Fatalf("err = %v, want ValidationError", p.err())
			}
			if verr.Fields["owner"] != tt.wantReason {
				t.Errorf("owner = %q, want %q", verr.Fields["owner"], tt.wantReason)
			}
		})
	}
}

func TestPayload_RequireKeepsFirstReason(t *testing.T) {
	p, err := newPayload(t, `{"email": null}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	p.require("first_name", "email")
	p.str("email")
	p.require("first_name")

	var verr *domain.ValidationError
	if !errors.As(p.err(), &verr) {
		t.Fatalf("err = %v, want ValidationError", p.err())
	}
	if len(verr.Fields) != 2 {
		t.Errorf("fields = %v, want first_name and email", verr.Fields)
	}
	if verr.Fields["email"] != "this field may not be null" {
		t.Errorf("email = %q", verr.Fields["email"])
	}
}

func TestBindError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email": "not-an-email"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req LoginRequest
	err := c.ShouldBindJSON(&req)
	if err == nil {
		t.Fatal("expected a binding error")
	}

	var verr *domain.ValidationError
	if !errors.As(bindError(&req, err), &verr) {
		t.Fatalf("bindError did not return a ValidationError")
	}
	if verr.Fields["email"] != "enter a valid email address" {
		t.Errorf("email = %q", verr.Fields["email"])
	}
	if verr.Fields["password"] != "this field is required" {
		t.Errorf("password = %q", verr.Fields["password"])
	}
}
