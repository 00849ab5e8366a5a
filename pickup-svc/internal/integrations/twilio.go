package integrations

import (
	"context"
	"errors"
	"fmt"

	"github.com/dotku/ai-restaurant/pickup-svc/internal/service"

	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Twilio error code for a malformed or unroutable "To" number.
const twilioInvalidToNumber = 21211

type MessageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type TwilioSender struct {
	messages MessageCreator
	from     string
}

// NewTwilioSender returns a sender reporting service.ErrSMSNotConfigured when
// any credential is missing.
func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	if accountSID == "" || authToken == "" || from == "" {
		return &TwilioSender{}
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{messages: client.Api, from: from}
}

func NewTwilioSenderWithClient(messages MessageCreator, from string) *TwilioSender {
	return &TwilioSender{messages: messages, from: from}
}

func (s *TwilioSender) Send(_ context.Context, to, body string) error {
	if s.messages == nil {
		return service.ErrSMSNotConfigured
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.messages.CreateMessage(params); err != nil {
		var restErr *twilioclient.TwilioRestError
		if errors.As(err, &restErr) && restErr.Code == twilioInvalidToNumber {
			return fmt.Errorf("%w: %s", service.ErrInvalidPhoneNumber, restErr.Message)
		}
		return err
	}
	return nil
}
