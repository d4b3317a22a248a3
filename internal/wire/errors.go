package wire

import (
	"context"
	"errors"

	"connectrpc.com/connect"
	"google.golang.org/genproto/googleapis/rpc/errdetails"

	"github.com/notrecocon/cocon/internal/assistant"
	"github.com/notrecocon/cocon/internal/auth"
	"github.com/notrecocon/cocon/internal/journal"
	"github.com/notrecocon/cocon/internal/models"
	"github.com/notrecocon/cocon/internal/storage"
)

// ErrorDomain is the ErrorInfo domain of every reason below.
const ErrorDomain = "cocon.v1"

// errorTable maps sentinel errors to a Connect code and a reason that stays
// stable across releases. The code comes from the first match.
var errorTable = []struct {
	err    error
	code   connect.Code
	reason string
}{
	{models.ErrPermissionDenied, connect.CodePermissionDenied, "PERMISSION_DENIED"},
	{models.ErrOtherRoleSlot, connect.CodePermissionDenied, "OTHER_ROLE_SLOT"},
	{journal.ErrUnknownRole, connect.CodePermissionDenied, "UNKNOWN_ROLE"},
	{storage.ErrNotFound, connect.CodeNotFound, "NOT_FOUND"},
	{models.ErrEvergreenProtected, connect.CodeFailedPrecondition, "EVERGREEN_PROTECTED"},
	{auth.ErrCodesNotConfigured, connect.CodeFailedPrecondition, "CODES_NOT_CONFIGURED"},
	{auth.ErrIncorrectCode, connect.CodeUnauthenticated, "INCORRECT_CODE"},
	{auth.ErrInvalidToken, connect.CodeUnauthenticated, "INVALID_TOKEN"},
	{auth.ErrMissingToken, connect.CodeUnauthenticated, "MISSING_TOKEN"},
	{models.ErrMissingDates, connect.CodeInvalidArgument, "MISSING_DATES"},
	{models.ErrInvalidDateRange, connect.CodeInvalidArgument, "INVALID_DATE_RANGE"},
	{models.ErrInvalidDate, connect.CodeInvalidArgument, "INVALID_DATE"},
	{models.ErrEmptyName, connect.CodeInvalidArgument, "EMPTY_NAME"},
	{journal.ErrOutOfRange, connect.CodeInvalidArgument, "OUT_OF_RANGE"},
	{journal.ErrEmptyText, connect.CodeInvalidArgument, "EMPTY_TEXT"},
	{journal.ErrNotImage, connect.CodeInvalidArgument, "NOT_IMAGE"},
	{journal.ErrPhotoSize, connect.CodeInvalidArgument, "PHOTO_SIZE"},
	{auth.ErrInvalidCode, connect.CodeInvalidArgument, "INVALID_CODE"},
	{auth.ErrSameCodes, connect.CodeInvalidArgument, "SAME_CODES"},
	{assistant.ErrEmptyInput, connect.CodeInvalidArgument, "EMPTY_INPUT"},
	{assistant.ErrNotConfigured, connect.CodeUnavailable, "ASSISTANT_NOT_CONFIGURED"},
	{assistant.ErrFetchFailed, connect.CodeUnavailable, "FETCH_FAILED"},
	{assistant.ErrBadResponse, connect.CodeUnavailable, "BAD_RESPONSE"},
	{assistant.ErrMissingFields, connect.CodeUnavailable, "MISSING_FIELDS"},
	{context.Canceled, connect.CodeCanceled, "CANCELED"},
	{context.DeadlineExceeded, connect.CodeDeadlineExceeded, "DEADLINE_EXCEEDED"},
}

// ToConnectError converts err into a Connect error with one ErrorInfo detail
// per sentinel it wraps. ok is false when err wraps no known sentinel.
func ToConnectError(err error) (cerr *connect.Error, ok bool) {
	for _, e := range errorTable {
		if !errors.Is(err, e.err) {
			continue
		}
		if cerr == nil {
			cerr = connect.NewError(e.code, err)
		}
		detail, derr := connect.NewErrorDetail(&errdetails.ErrorInfo{Reason: e.reason, Domain: ErrorDomain})
		if derr == nil {
			cerr.AddDetail(detail)
		}
	}
	return cerr, cerr != nil
}

// Sentinels returns the known errors named by the ErrorInfo details of cerr,
// in the order the server attached them.
func Sentinels(cerr *connect.Error) []error {
	var out []error
	for _, d := range cerr.Details() {
		msg, err := d.Value()
		if err != nil {
			continue
		}
		info, ok := msg.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorDomain {
			continue
		}
		if sentinel := sentinelFor(info.GetReason()); sentinel != nil {
			out = append(out, sentinel)
		}
	}
	return out
}

func sentinelFor(reason string) error {
	for _, e := range errorTable {
		if e.reason == reason {
			return e.err
		}
	}
	return nil
}
