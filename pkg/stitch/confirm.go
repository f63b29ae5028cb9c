package stitch

import (
	"context"
	"fmt"
	"os"

	"github.com/matzehuels/spritestitch/pkg/atlas"
	"github.com/matzehuels/spritestitch/pkg/errors"
)

// Confirmer asks the user a yes/no question before a destructive action.
// The CLI implements it with a terminal prompt; tests and scripts use
// [AlwaysConfirm] or [NeverConfirm].
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

var (
	// AlwaysConfirm answers yes without asking.
	AlwaysConfirm Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) { return true, nil })

	// NeverConfirm answers no without asking.
	NeverConfirm Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) { return false, nil })
)

// DeleteOriginals asks confirm whether to remove the atlas image and its
// metadata, and removes both if the answer is yes. It reports whether the
// files were deleted. A file that is already gone is not an error; any
// other removal failure is DELETE_FAILED.
func (s *Stitcher) DeleteOriginals(ctx context.Context, atlasPath string, confirm Confirmer) (bool, error) {
	if confirm == nil {
		confirm = NeverConfirm
	}
	mdPath := atlas.MetadataPath(atlasPath)

	ok, err := confirm.Confirm(ctx, fmt.Sprintf("Delete the original atlas %s and its metadata?", atlasPath))
	if err != nil {
		return false, err
	}
	if !ok {
		s.Logger.Debug("keeping original atlas", "path", atlasPath)
		return false, nil
	}

	var failed []error
	for _, path := range []string{atlasPath, mdPath} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			failed = append(failed, err)
		}
	}
	if len(failed) > 0 {
		return false, errors.Wrap(errors.ErrCodeDeleteFailed, failed[0], "delete original atlas")
	}

	s.Logger.Info("deleted original atlas", "atlas", atlasPath, "metadata", mdPath)
	return true, nil
}
