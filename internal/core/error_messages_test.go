package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "insufficient rows maps correctly",
			err:         ErrInsufficientRows,
			wantCode:    "PARSE001",
			wantMessage: "The paste needs a header row and at least one data row",
		},
		{
			name:        "missing column maps correctly",
			err:         &MissingColumnError{Column: "Cantidad de Etiquetas"},
			wantCode:    "PARSE002",
			wantMessage: "A required column is missing from the paste",
		},
		{
			name:        "no valid rows maps correctly",
			err:         ErrNoValidRows,
			wantCode:    "PARSE003",
			wantMessage: "No usable rows were found in the paste",
		},
		{
			name:        "input too large maps correctly",
			err:         fmt.Errorf("%w: 2097152 bytes (limit 1048576)", ErrInputTooLarge),
			wantCode:    "PARSE004",
			wantMessage: "The pasted text is too large",
		},
		{
			name:        "unknown schema maps correctly",
			err:         fmt.Errorf("%w: sap-de", ErrUnknownSchema),
			wantCode:    "SCH001",
			wantMessage: "That input schema does not exist",
		},
		{
			name:        "profile mismatch maps correctly",
			err:         &ProfileMismatchError{Profile: "x", Reason: "unknown layout"},
			wantCode:    "PROF001",
			wantMessage: "The format profile is misconfigured",
		},
		{
			name:        "unknown profile maps correctly",
			err:         fmt.Errorf("%w: pm42-double", ErrUnknownProfile),
			wantCode:    "PROF002",
			wantMessage: "That format profile does not exist",
		},
		{
			name:        "record not found maps correctly",
			err:         fmt.Errorf("%w: rec-9", ErrRecordNotFound),
			wantCode:    "REC001",
			wantMessage: "That record no longer exists in this session",
		},
		{
			name:        "invalid quantity maps correctly",
			err:         ErrInvalidQuantity,
			wantCode:    "REC002",
			wantMessage: "Label quantity must be zero or greater",
		},
		{
			name:        "empty field maps correctly",
			err:         fmt.Errorf("%w: code", ErrEmptyField),
			wantCode:    "REC003",
			wantMessage: "The article code and description are both required",
		},
		{
			name:        "session not found maps correctly",
			err:         ErrSessionNotFound,
			wantCode:    "SES001",
			wantMessage: "Your session has expired",
		},
		{
			name:        "session full maps correctly",
			err:         fmt.Errorf("%w (10000 of 10000)", ErrSessionFull),
			wantCode:    "SES002",
			wantMessage: "This session has reached its record limit",
		},
		{
			name:        "body too large maps correctly",
			err:         errors.New("http: request body too large"),
			wantCode:    "REQ001",
			wantMessage: "The request body is too large",
		},
		{
			name:        "cancelled request maps correctly",
			err:         errors.New("context canceled"),
			wantCode:    "REQ002",
			wantMessage: "The request was cancelled",
		},
		{
			name:        "timeout maps correctly",
			err:         errors.New("context deadline exceeded"),
			wantCode:    "REQ003",
			wantMessage: "The request took too long",
		},
		{
			name:        "rate limit maps correctly",
			err:         errors.New("rate limit exceeded"),
			wantCode:    "RATE001",
			wantMessage: "Too many requests",
		},
		{
			name:        "unknown error falls back to ERR000",
			err:         errors.New("something completely unexpected"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "match is case insensitive",
			err:         errors.New("SESSION NOT FOUND"),
			wantCode:    "SES001",
			wantMessage: "Your session has expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := MapError(tt.err)
			if msg.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", msg.Code, tt.wantCode)
			}
			if msg.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", msg.Message, tt.wantMessage)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	got := FormatUserError(ErrSessionNotFound)
	want := "Your session has expired (Code: SES001). Start a new session; sessions expire after inactivity"
	if got != want {
		t.Errorf("FormatUserError() = %q, want %q", got, want)
	}

	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}
}

func TestIsUserFacing(t *testing.T) {
	if !IsUserFacing(ErrSessionNotFound) {
		t.Error("IsUserFacing(ErrSessionNotFound) = false, want true")
	}
	if IsUserFacing(errors.New("internal invariant broken")) {
		t.Error("IsUserFacing(unmapped) = true, want false")
	}
	if IsUserFacing(nil) {
		t.Error("IsUserFacing(nil) = true, want false")
	}
}

func TestUserError(t *testing.T) {
	technical := fmt.Errorf("%w: rec-4", ErrRecordNotFound)
	ue := NewUserError(technical)

	if ue.Error() != "That record no longer exists in this session" {
		t.Errorf("Error() = %q", ue.Error())
	}
	if !errors.Is(ue, ErrRecordNotFound) {
		t.Error("UserError does not unwrap to the technical error")
	}
	if ue.User.Code != "REC001" {
		t.Errorf("Code = %q, want REC001", ue.User.Code)
	}

	if NewUserError(nil) != nil {
		t.Error("NewUserError(nil) != nil")
	}
}

func TestAllErrorCodesAreUnique(t *testing.T) {
	// Multiple patterns may share one code, but distinct messages must
	// not reuse a code.
	byCode := make(map[string]string)
	for _, ep := range errorPatterns {
		if existing, ok := byCode[ep.msg.Code]; ok && existing != ep.msg.Message {
			t.Errorf("code %s used for %q and %q", ep.msg.Code, existing, ep.msg.Message)
		}
		byCode[ep.msg.Code] = ep.msg.Message
	}
}

func TestSentinelTextsMatchPatterns(t *testing.T) {
	// The pattern table keys off error text, so the sentinel wording and
	// the pattern strings must not drift apart.
	sentinels := []error{
		ErrInsufficientRows,
		ErrNoValidRows,
		ErrInputTooLarge,
		ErrUnknownSchema,
		ErrUnknownProfile,
		ErrSessionNotFound,
		ErrSessionFull,
		ErrRecordNotFound,
		ErrInvalidQuantity,
		ErrEmptyField,
		ErrRateLimited,
	}
	for _, err := range sentinels {
		if !IsUserFacing(err) {
			t.Errorf("sentinel %q does not map to a specific code", err)
		}
	}

	if !strings.Contains(strings.ToLower((&MissingColumnError{Column: "X"}).Error()), "missing column") {
		t.Error("MissingColumnError text no longer matches its pattern")
	}
	if !strings.Contains(strings.ToLower((&ProfileMismatchError{Reason: "x"}).Error()), "profile mismatch") {
		t.Error("ProfileMismatchError text no longer matches its pattern")
	}
}
