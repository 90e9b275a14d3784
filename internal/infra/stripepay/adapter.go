package stripepay

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"bellebook/internal/infra"
	"bellebook/internal/pkg/config"
	"bellebook/internal/usecase/commands"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// Adapter confirms the payment authorization the upstream service opened with
// the processor. It works purely off the client secret carried in the wizard
// session, so a confirmation can be resumed after an external redirect with
// the same secret. It never retries on its own; retry is always a fresh
// user-initiated call.
type Adapter struct {
	api    *client.API
	logger *slog.Logger
}

func NewAdapter(cfg config.StripeConfig, logger *slog.Logger) *Adapter {
	api := &client.API{}
	api.Init(cfg.APIKey, nil)
	return &Adapter{api: api, logger: logger}
}

func (a *Adapter) Confirm(ctx context.Context, clientSecret, paymentMethodID, returnURL string) (commands.PaymentOutcome, error) {
	intentID, err := intentIDFromSecret(clientSecret)
	if err != nil {
		return commands.PaymentOutcome{}, infra.WrapGatewayErr(a.logger, infra.KindUnavailable, "malformed client secret", err)
	}

	params := &stripe.PaymentIntentConfirmParams{
		Params:        stripe.Params{Context: ctx},
		PaymentMethod: stripe.String(paymentMethodID),
		ReturnURL:     stripe.String(returnURL),
	}

	pi, err := a.api.PaymentIntents.Confirm(intentID, params)
	if err != nil {
		return commands.PaymentOutcome{}, a.wrapProcessorErr(err)
	}
	return a.outcomeFromStatus(pi)
}

func (a *Adapter) Resume(ctx context.Context, clientSecret string) (commands.PaymentOutcome, error) {
	intentID, err := intentIDFromSecret(clientSecret)
	if err != nil {
		return commands.PaymentOutcome{}, infra.WrapGatewayErr(a.logger, infra.KindUnavailable, "malformed client secret", err)
	}

	params := &stripe.PaymentIntentParams{
		Params:       stripe.Params{Context: ctx},
		ClientSecret: stripe.String(clientSecret),
	}

	pi, err := a.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		return commands.PaymentOutcome{}, a.wrapProcessorErr(err)
	}
	return a.outcomeFromStatus(pi)
}

func (a *Adapter) outcomeFromStatus(pi *stripe.PaymentIntent) (commands.PaymentOutcome, error) {
	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		return commands.PaymentOutcome{Status: commands.PaymentConfirmed}, nil
	case stripe.PaymentIntentStatusRequiresAction:
		out := commands.PaymentOutcome{Status: commands.PaymentRequiresRedirect}
		if pi.NextAction != nil && pi.NextAction.RedirectToURL != nil {
			out.RedirectURL = pi.NextAction.RedirectToURL.URL
		}
		return out, nil
	case stripe.PaymentIntentStatusProcessing:
		return commands.PaymentOutcome{Status: commands.PaymentPending}, nil
	case stripe.PaymentIntentStatusRequiresPaymentMethod:
		// Reached on Resume after a failed attempt: surface as a decline so
		// the user retries with fresh payment details.
		return commands.PaymentOutcome{}, infra.WrapGatewayErr(a.logger, infra.KindBusinessRule,
			"payment was not completed, please try again", nil)
	default:
		return commands.PaymentOutcome{}, infra.WrapGatewayErr(a.logger, infra.KindUnavailable,
			"unexpected payment intent status: "+string(pi.Status), nil)
	}
}

// wrapProcessorErr keeps the processor's human-readable message when there is
// one; everything else is a transport failure.
func (a *Adapter) wrapProcessorErr(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return infra.WrapGatewayErr(a.logger, infra.KindBusinessRule, stripeErr.Msg, err)
	}
	return infra.WrapGatewayErr(a.logger, infra.KindUnavailable, "payment processor call failed", err)
}

func intentIDFromSecret(clientSecret string) (string, error) {
	id, _, found := strings.Cut(clientSecret, "_secret")
	if !found || id == "" {
		return "", errors.New("client secret does not embed an intent id")
	}
	return id, nil
}
