package cli

import (
	"context"
	"fmt"

	"github.com/veriscan/veriscan-go/internal/client/api"
)

// Contact prompts for a message to the service team and sends it. It is
// available without signing in.
func (a *App) Contact(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Your name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Your email", a.out)
	if err != nil {
		return err
	}
	message, err := getMultiline(a.reader, "Your message", a.out)
	if err != nil {
		return err
	}

	if err := a.client.Contact(ctx, name, email, message); err != nil {
		fmt.Fprintln(a.out, api.Detail(err, "Could not send the message. Please try again."))
		return err
	}
	fmt.Fprintln(a.out, "Message sent. Thank you!")
	return nil
}
