package mock

import (
	"context"

	hourei "github.com/ToAmano/hourei-api"
)

var _ hourei.OutputWriter = (*OutputWriter)(nil)

// OutputWriter is a mock implementation of hourei.OutputWriter.
type OutputWriter struct {
	WriteOutputFn func(ctx context.Context, out *hourei.Output) error
}

func (w *OutputWriter) WriteOutput(ctx context.Context, out *hourei.Output) error {
	return w.WriteOutputFn(ctx, out)
}
