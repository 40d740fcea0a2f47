package agent

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/manifoldco/promptui"
	"github.com/mitchellh/mapstructure"
)

// EmailArgs are the send_email arguments shown to the user before sending
type EmailArgs struct {
	Subject   string `mapstructure:"subject"`
	Body      string `mapstructure:"body"`
	Recipient string `mapstructure:"recipient"`
}

// DecodeEmailArgs reads the model's send_email call arguments
func DecodeEmailArgs(args map[string]any) (EmailArgs, error) {
	var out EmailArgs
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return out, err
	}
	if err := dec.Decode(args); err != nil {
		return out, errors.Wrap(err, "decode send_email arguments")
	}
	return out, nil
}

// Confirmer approves an email before it leaves
type Confirmer interface {
	Confirm(email EmailArgs) (bool, error)
}

// AutoApprove sends without asking
type AutoApprove struct{}

func (AutoApprove) Confirm(EmailArgs) (bool, error) {
	return true, nil
}

// PromptConfirmer prints the draft and asks y/N on the terminal
type PromptConfirmer struct {
	Out io.Writer
}

func (p PromptConfirmer) Confirm(email EmailArgs) (bool, error) {
	fmt.Fprintf(p.Out, "\nTo: %s\nSubject: %s\n\n%s\n\n", email.Recipient, email.Subject, email.Body)

	prompt := promptui.Prompt{
		Label:     "Send this email",
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
