package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCode_UserFacingErrors(t *testing.T) {
	req := require.New(t)

	code, reason := Code(fmt.Errorf("line 3: %w", ErrLineBusy))
	req.Equal(CodeLineBusy, code)
	req.Equal(ErrLineBusy.Error(), reason)

	code, _ = Code(ErrNotInLine)
	req.Equal(CodeNotInLine, code)

	code, _ = Code(ErrInvalidToken)
	req.Equal(CodeInvalidRequest, code)

	code, _ = Code(ErrMailboxFull)
	req.Equal(CodeMailboxFull, code)
}

func TestCode_StoreErrorsNeverLeak(t *testing.T) {
	req := require.New(t)
	raw := fmt.Errorf("%w: badger: DB closed", ErrStoreUnavailable)

	code, reason := Code(raw)

	req.Equal(CodeInternal, code)
	req.Equal(ErrInternal.Error(), reason)
	req.NotContains(reason, "badger")
}

func TestMapToGRPCError(t *testing.T) {
	req := require.New(t)
	req.NoError(MapToGRPCError(nil))

	st, ok := status.FromError(MapToGRPCError(ErrLineBusy))
	req.True(ok)
	req.Equal(codes.ResourceExhausted, st.Code())

	st, _ = status.FromError(MapToGRPCError(fmt.Errorf("boom")))
	req.Equal(codes.Internal, st.Code())
}
