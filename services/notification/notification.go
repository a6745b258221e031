package notification

import (
	"fmt"
	"strings"

	"frontdesk/types"
	"frontdesk/utils"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

// MelodyService broadcasts to every dashboard connected on /ws.
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// Discard drops every message.
type Discard struct{}

func (Discard) SendMessage(string) error { return nil }

// MessageBuilder renders a daily report as a one-line dashboard notice.
type MessageBuilder struct {
	currency string
	report   types.DailyReport
}

func NewMessageBuilder(currency string, report types.DailyReport) *MessageBuilder {
	return &MessageBuilder{
		currency: currency,
		report:   report,
	}
}

func (b *MessageBuilder) Build() string {
	r := b.report
	parts := []string{
		"revenue " + utils.FormatAmount(b.currency, r.Revenue),
		"expenses " + utils.FormatAmount(b.currency, r.Expenses),
		"profit " + utils.FormatAmount(b.currency, r.Profit),
	}
	if r.Refunds.IsPositive() {
		parts = append(parts, "refunds "+utils.FormatAmount(b.currency, r.Refunds))
	}
	return fmt.Sprintf("Daily summary %s: %s (%d checkouts)", r.Date, strings.Join(parts, ", "), r.BookingsCount)
}

// BookingEvent renders a front-desk transition notice.
func BookingEvent(action, guest, room string) string {
	return fmt.Sprintf("Room %s: %s %s", room, guest, action)
}
