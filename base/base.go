package base

import (
	"context"
)

// Context cancelled on SIGTERM, shared by long running sub-commands
var Context, CancelContext = context.WithCancel(context.Background())
