package errors

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	sentinel := New(CodeProjectNotFound, "project not found")
	wrapped := fmt.Errorf("lookup: %w", WithMetadata(CodeProjectNotFound, "project not found", map[string]string{"project_id": "7"}))

	if !errors.Is(wrapped, sentinel) {
		t.Fatal("expected errors.Is to match by code through wrapping")
	}
	if errors.Is(wrapped, New(CodeNotAdmin, "not admin")) {
		t.Fatal("expected different codes not to match")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(CodeStorageFailure, "journal append", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable via errors.Is")
	}
	if got := GetCode(err); got != CodeStorageFailure {
		t.Fatalf("code = %s, want %s", got, CodeStorageFailure)
	}
}

func TestGetCodeUnknownForForeignErrors(t *testing.T) {
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Fatalf("code = %s, want %s", got, CodeUnknown)
	}
	if got := GetCode(nil); got != CodeUnknown {
		t.Fatalf("code = %s, want %s", got, CodeUnknown)
	}
}

func TestGetMetadata(t *testing.T) {
	err := fmt.Errorf("wrap: %w", WithMetadata(CodePoolInsufficient, "pool short", map[string]string{"matching_amount": "120"}))
	meta := GetMetadata(err)
	if meta["matching_amount"] != "120" {
		t.Fatalf("metadata = %v, want matching_amount=120", meta)
	}
	if GetMetadata(errors.New("plain")) != nil {
		t.Fatal("expected nil metadata for foreign errors")
	}
}

func TestGRPCCodeMapping(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{CodeProjectNameEmpty, codes.InvalidArgument},
		{CodeAddressEmpty, codes.InvalidArgument},
		{CodeContributionAmountInvalid, codes.InvalidArgument},
		{CodeProjectNotFound, codes.NotFound},
		{CodeNotAdmin, codes.PermissionDenied},
		{CodeProjectSettled, codes.FailedPrecondition},
		{CodePoolEmpty, codes.FailedPrecondition},
		{CodePoolInsufficient, codes.FailedPrecondition},
		{CodePayoutFailed, codes.Aborted},
		{CodeArithmeticOverflow, codes.Internal},
		{CodeStorageFailure, codes.Internal},
		{Code("BOGUS"), codes.Unknown},
	}

	for _, tt := range tests {
		if got := tt.code.GRPCCode(); got != tt.want {
			t.Errorf("%s maps to %s, want %s", tt.code, got, tt.want)
		}
	}
}

func TestHandleErrorBuildsStatusWithDetails(t *testing.T) {
	err := WithMetadata(CodeProjectNotFound, "project not found", map[string]string{"project_id": "7"})

	st, ok := status.FromError(HandleError(err, "en-US"))
	if !ok {
		t.Fatal("expected a grpc status")
	}
	if st.Code() != codes.NotFound {
		t.Fatalf("status code = %s, want %s", st.Code(), codes.NotFound)
	}

	var info *errdetails.ErrorInfo
	var localized *errdetails.LocalizedMessage
	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			info = d
		case *errdetails.LocalizedMessage:
			localized = d
		}
	}
	if info == nil || info.Reason != string(CodeProjectNotFound) || info.Domain != Domain {
		t.Fatalf("unexpected error info: %+v", info)
	}
	if info.Metadata["project_id"] != "7" {
		t.Fatalf("metadata not carried: %v", info.Metadata)
	}
	if localized == nil || localized.Locale != "en-US" || localized.Message == "" {
		t.Fatalf("unexpected localized message: %+v", localized)
	}
}

func TestHandleErrorForeignError(t *testing.T) {
	st, ok := status.FromError(HandleError(errors.New("boom"), ""))
	if !ok {
		t.Fatal("expected a grpc status")
	}
	if st.Code() != codes.Internal {
		t.Fatalf("status code = %s, want %s", st.Code(), codes.Internal)
	}
}

func TestHandleErrorNil(t *testing.T) {
	if err := HandleError(nil, "en-US"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
