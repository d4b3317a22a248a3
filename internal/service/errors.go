package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/notrecocon/cocon/internal/wire"
)

// toConnectError converts a domain error into a Connect error. Anything
// unrecognised is logged and reported as Internal without its details.
func (s *JournalService) toConnectError(op string, err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}
	if cerr, ok := wire.ToConnectError(err); ok {
		return cerr
	}
	s.logger.Error("Request failed", "op", op, "error", err)
	return connect.NewError(connect.CodeInternal, errors.New("internal error"))
}
