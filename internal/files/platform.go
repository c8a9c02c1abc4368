package files

import (
	"context"
	"errors"

	"github.com/hexaaagon/tugascollecter/internal/logger"
)

// ErrNoExternalOpener is returned by the headless Opener; callers fall back
// to sharing.
var ErrNoExternalOpener = errors.New("no external application available")

// HeadlessPlatform implements Picker, Sharer and Opener for runs without a
// native shell: picking always cancels, sharing is logged, opening reports
// that no external application exists.
type HeadlessPlatform struct {
	logger *logger.Logger
}

func NewHeadlessPlatform(log *logger.Logger) *HeadlessPlatform {
	return &HeadlessPlatform{logger: log}
}

func (p *HeadlessPlatform) Pick(context.Context) (*PickedFile, error) {
	p.logger.Info().Msg("document picker unavailable, treating as cancelled")
	return nil, nil
}

func (p *HeadlessPlatform) Share(_ context.Context, path, mimeType string) error {
	p.logger.Info().Str("path", path).Str("mimeType", mimeType).Msg("share requested")
	return nil
}

func (p *HeadlessPlatform) Open(context.Context, string, string) error {
	return ErrNoExternalOpener
}
