// Package notification delivers reminder messages for upcoming medications
// and appointments: template rendering, pluggable senders, and a per-session
// in-memory outbox with retry.
package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/phr/phr/internal/domain/agenda"
)

// Channel is the delivery channel for a message.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelPush  Channel = "push"
)

func (c Channel) IsValid() bool {
	switch c {
	case ChannelEmail, ChannelSMS, ChannelPush:
		return true
	}
	return false
}

// Status tracks a message through the outbox.
type Status string

const (
	StatusSent   Status = "sent"
	StatusFailed Status = "failed"
)

var (
	ErrDisabled = errors.New("notifications are disabled")
	ErrNotFound = errors.New("notification not found")
)

// Message is a single outbound reminder held in the outbox.
type Message struct {
	ID         uuid.UUID  `json:"id"`
	Channel    Channel    `json:"channel"`
	Recipient  string     `json:"recipient"`
	Subject    string     `json:"subject,omitempty"`
	Body       string     `json:"body"`
	TemplateID string     `json:"template_id,omitempty"`
	Status     Status     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	SentAt     *time.Time `json:"sent_at,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// EmailSender delivers email messages.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// SMSSender delivers SMS messages.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// PushSender delivers push messages.
type PushSender interface {
	SendPush(ctx context.Context, to, title, body string) error
}

// LogSender writes messages to the log instead of delivering them. It is the
// default sender for all three channels when no real transport is configured.
type LogSender struct {
	log zerolog.Logger
}

func NewLogSender(log zerolog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) SendEmail(_ context.Context, to, subject, body string) error {
	s.log.Info().Str("channel", "email").Str("to", to).Str("subject", subject).Msg(body)
	return nil
}

func (s *LogSender) SendSMS(_ context.Context, to, body string) error {
	s.log.Info().Str("channel", "sms").Str("to", to).Msg(body)
	return nil
}

func (s *LogSender) SendPush(_ context.Context, to, title, body string) error {
	s.log.Info().Str("channel", "push").Str("to", to).Str("title", title).Msg(body)
	return nil
}

// Template defines a reusable reminder template.
type Template struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

const (
	TemplateMedication  = "medication-reminder"
	TemplateAppointment = "appointment-reminder"
)

// TemplateEngine manages reminder templates and renders them with data.
type TemplateEngine struct {
	mu        sync.RWMutex
	templates map[string]*Template
}

// NewTemplateEngine creates a TemplateEngine with the built-in reminder
// templates pre-registered.
func NewTemplateEngine() *TemplateEngine {
	e := &TemplateEngine{templates: make(map[string]*Template)}
	e.registerBuiltIn()
	return e
}

func (e *TemplateEngine) registerBuiltIn() {
	builtIn := []Template{
		{
			ID:      TemplateMedication,
			Name:    "Medication Reminder",
			Subject: "Medication Reminder: {{name}}",
			Body:    "Time to take {{name}} ({{dosage}}) at {{time}}.",
		},
		{
			ID:      TemplateAppointment,
			Name:    "Appointment Reminder",
			Subject: "Appointment Reminder: {{doctor}}",
			Body:    "You have an appointment with {{doctor}} on {{date}} at {{time}}. {{detail}}",
		},
	}
	for i := range builtIn {
		t := builtIn[i]
		e.templates[t.ID] = &t
	}
}

// RegisterTemplate adds or replaces a template in the engine.
func (e *TemplateEngine) RegisterTemplate(t Template) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.templates[t.ID] = &t
}

// Render looks up a template by ID and performs {{key}} replacement using the
// supplied data map. Keys present in the template but absent from data are
// left as-is.
func (e *TemplateEngine) Render(templateID string, data map[string]string) (subject, body string, err error) {
	e.mu.RLock()
	t, ok := e.templates[templateID]
	e.mu.RUnlock()
	if !ok {
		return "", "", fmt.Errorf("template %q not found", templateID)
	}

	subject = t.Subject
	body = t.Body
	for k, v := range data {
		placeholder := "{{" + k + "}}"
		subject = strings.ReplaceAll(subject, placeholder, v)
		body = strings.ReplaceAll(body, placeholder, v)
	}
	return subject, strings.TrimSpace(body), nil
}

// Settings is the session's notification preference: a master toggle plus the
// channel and recipient reminders go to.
type Settings struct {
	Enabled   bool    `json:"enabled"`
	Channel   Channel `json:"channel"`
	Recipient string  `json:"recipient,omitempty"`
}

// Outbox queues, dispatches, and retains reminder messages for one session.
type Outbox struct {
	email     EmailSender
	sms       SMSSender
	push      PushSender
	templates *TemplateEngine

	mu       sync.RWMutex
	settings Settings
	messages map[uuid.UUID]*Message
	order    []uuid.UUID
}

// NewOutbox constructs an Outbox. Notifications start enabled on the push
// channel until the session says otherwise.
func NewOutbox(email EmailSender, sms SMSSender, push PushSender, tpl *TemplateEngine) *Outbox {
	return &Outbox{
		email:     email,
		sms:       sms,
		push:      push,
		templates: tpl,
		settings:  Settings{Enabled: true, Channel: ChannelPush},
		messages:  make(map[uuid.UUID]*Message),
	}
}

// Settings returns the current notification settings.
func (o *Outbox) Settings() Settings {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.settings
}

// UpdateSettings replaces the settings wholesale.
func (o *Outbox) UpdateSettings(s Settings) (Settings, error) {
	if !s.Channel.IsValid() {
		return Settings{}, fmt.Errorf("unsupported channel: %q", s.Channel)
	}
	o.mu.Lock()
	o.settings = s
	o.mu.Unlock()
	return s, nil
}

// Send dispatches a message through its channel, assigns an ID and
// timestamps, and retains the result. A delivery failure is recorded on the
// message and returned.
func (o *Outbox) Send(ctx context.Context, m *Message) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now().UTC()

	sendErr := o.dispatch(ctx, m)
	if sendErr != nil {
		m.Status = StatusFailed
		m.Error = sendErr.Error()
	} else {
		m.Status = StatusSent
		sentAt := time.Now().UTC()
		m.SentAt = &sentAt
	}

	o.mu.Lock()
	o.messages[m.ID] = m
	o.order = append(o.order, m.ID)
	o.mu.Unlock()

	return sendErr
}

func (o *Outbox) dispatch(ctx context.Context, m *Message) error {
	switch m.Channel {
	case ChannelEmail:
		return o.email.SendEmail(ctx, m.Recipient, m.Subject, m.Body)
	case ChannelSMS:
		return o.sms.SendSMS(ctx, m.Recipient, m.Body)
	case ChannelPush:
		return o.push.SendPush(ctx, m.Recipient, m.Subject, m.Body)
	default:
		return fmt.Errorf("unsupported channel: %q", m.Channel)
	}
}

// QueueForAgenda renders one reminder per agenda occurrence and sends each
// through the configured channel. Delivery failures are recorded per message
// rather than aborting the batch.
func (o *Outbox) QueueForAgenda(ctx context.Context, occs []agenda.Occurrence) ([]*Message, error) {
	o.mu.RLock()
	settings := o.settings
	o.mu.RUnlock()

	if !settings.Enabled {
		return nil, ErrDisabled
	}

	out := make([]*Message, 0, len(occs))
	for _, occ := range occs {
		templateID, data := occurrenceTemplate(occ)
		subject, body, err := o.templates.Render(templateID, data)
		if err != nil {
			return out, err
		}
		m := &Message{
			Channel:    settings.Channel,
			Recipient:  settings.Recipient,
			Subject:    subject,
			Body:       body,
			TemplateID: templateID,
		}
		_ = o.Send(ctx, m)
		out = append(out, m)
	}
	return out, nil
}

func occurrenceTemplate(occ agenda.Occurrence) (string, map[string]string) {
	if occ.Kind == agenda.KindAppointment {
		return TemplateAppointment, map[string]string{
			"doctor": occ.Title,
			"date":   occ.Date,
			"time":   occ.Time,
			"detail": occ.Detail,
		}
	}
	return TemplateMedication, map[string]string{
		"name":   occ.Title,
		"dosage": occ.Detail,
		"time":   occ.Time,
	}
}

// Get retrieves a message by ID.
func (o *Outbox) Get(id uuid.UUID) (*Message, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	m, ok := o.messages[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *m
	return &cp, nil
}

// List returns all retained messages in insertion order.
func (o *Outbox) List() []*Message {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]*Message, 0, len(o.order))
	for _, id := range o.order {
		cp := *o.messages[id]
		out = append(out, &cp)
	}
	return out
}

// Retry re-sends a failed message. It is an error to retry a message that
// did not fail.
func (o *Outbox) Retry(ctx context.Context, id uuid.UUID) error {
	o.mu.RLock()
	m, ok := o.messages[id]
	o.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	if m.Status != StatusFailed {
		return fmt.Errorf("message %s is not in failed status (current: %s)", id, m.Status)
	}

	sendErr := o.dispatch(ctx, m)

	o.mu.Lock()
	if sendErr != nil {
		m.Status = StatusFailed
		m.Error = sendErr.Error()
	} else {
		m.Status = StatusSent
		sentAt := time.Now().UTC()
		m.SentAt = &sentAt
		m.Error = ""
	}
	o.mu.Unlock()

	return sendErr
}

// Stats returns counts of messages grouped by status.
func (o *Outbox) Stats() map[Status]int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	stats := make(map[Status]int)
	for _, m := range o.messages {
		stats[m.Status]++
	}
	return stats
}
