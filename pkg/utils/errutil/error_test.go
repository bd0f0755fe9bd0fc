package errutil_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octolens/pkg/utils/errutil"
)

func TestHandleError(t *testing.T) {
	// Without a configured Sentry DSN, CaptureException is a no-op; the call
	// must still log and return without panic.
	err := goerr.New("lookup failed", goerr.V("username", "octocat"))
	errutil.HandleError(context.Background(), "test error handling", err)
}

func TestHandleErrorPlain(t *testing.T) {
	errutil.HandleError(context.Background(), "plain error", context.Canceled)
}
