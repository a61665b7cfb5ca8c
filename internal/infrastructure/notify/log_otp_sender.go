package notify

import (
	"context"
	"strings"

	"jiyajewellery/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// LogOTPSender stands in for an SMS provider. It logs the masked phone and,
// outside production, the code itself so visits can be verified locally.
type LogOTPSender struct {
	revealCode bool
}

var _ interfaces.IOTPSender = (*LogOTPSender)(nil)

func NewLogOTPSender(revealCode bool) *LogOTPSender {
	return &LogOTPSender{revealCode: revealCode}
}

func (s *LogOTPSender) Send(ctx context.Context, phone, code string) error {
	ev := log.Ctx(ctx).Info().Str("phone", MaskPhone(phone))
	if s.revealCode {
		ev = ev.Str("code", code)
	}
	ev.Msg("[visit][notify] otp dispatched")
	return nil
}

// MaskPhone keeps the last four digits.
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if len(phone) <= 4 {
		return strings.Repeat("*", len(phone))
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
