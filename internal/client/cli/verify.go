package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/veriscan/veriscan-go/internal/client/models"
	"github.com/veriscan/veriscan-go/internal/client/verify"
	"github.com/veriscan/veriscan-go/internal/common"
)

// VerifyText prompts for a text sample and submits it for classification.
func (a *App) VerifyText(ctx context.Context) error {
	return a.protected(func(ctx context.Context) error {
		text, err := getMultiline(a.reader, "Paste the text to verify", a.out)
		if err != nil {
			return err
		}
		if text == "" {
			fmt.Fprintln(a.out, "Nothing to verify.")
			return nil
		}
		rec, err := a.submitter.SubmitText(ctx, text)
		return a.reportVerdict(rec, err)
	})(ctx)
}

// VerifyImage prompts for an image file path and submits it.
func (a *App) VerifyImage(ctx context.Context) error {
	return a.verifyFile(ctx, models.KindImage, "Enter path to the image file")
}

// VerifyVideo prompts for a video file path and submits it.
func (a *App) VerifyVideo(ctx context.Context) error {
	return a.verifyFile(ctx, models.KindVideo, "Enter path to the video file")
}

func (a *App) verifyFile(ctx context.Context, kind models.ContentKind, prompt string) error {
	return a.protected(func(ctx context.Context) error {
		path, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		if path == "" {
			fmt.Fprintln(a.out, "Nothing to verify.")
			return nil
		}
		rec, err := a.submitter.SubmitFile(ctx, kind, path)
		return a.reportVerdict(rec, err)
	})(ctx)
}

// reportVerdict prints either the classification verdict or an actionable
// failure message.
func (a *App) reportVerdict(rec *models.VerificationRecord, err error) error {
	if err != nil {
		switch {
		case errors.Is(err, common.ErrSubmissionInFlight):
			fmt.Fprintln(a.out, "A verification is already in progress, please wait.")
		case errors.Is(err, verify.ErrAuthRequired):
			fmt.Fprintln(a.out, "Please sign in to verify content.")
		default:
			fmt.Fprintln(a.out, err.Error())
		}
		return err
	}

	verdict := "human-created"
	if rec.Result {
		verdict = "AI-generated"
	}
	fmt.Fprintf(a.out, "Verdict: %s (%d%% confidence)\n", verdict, rec.ConfidencePercent())
	return nil
}
