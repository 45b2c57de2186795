// Package redirect builds outbound contact links and hands them to the
// browser. Nothing is awaited: if the browser refuses to open a new window
// the visitor simply sees nothing happen.
package redirect

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/premiumiptv/landing/web/templates"
)

var ErrUnknownTarget = errors.New("redirect: unknown target")

// Target names an outbound destination.
type Target string

const (
	TargetWhatsApp  Target = "whatsapp"
	TargetSupport   Target = "support"
	TargetLiveChat  Target = "livechat"
	TargetSubscribe Target = "subscribe"
	TargetTelegram  Target = "telegram"
	TargetEmail     Target = "email"
)

// Params are interpolated into the message templates.
type Params struct {
	Plan   string
	Price  string
	Period string
}

type Config struct {
	WhatsAppPhone  string
	TelegramHandle string
	SupportEmail   string
}

// Opener asks the host environment to open url in a new browsing context.
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(url string) error

func (f OpenerFunc) Open(url string) error { return f(url) }

type Dispatcher struct {
	cfg   Config
	tmpls *templates.Tmpls
}

func NewDispatcher(cfg Config, tmpls *templates.Tmpls) *Dispatcher {
	return &Dispatcher{cfg: cfg, tmpls: tmpls}
}

// ParseTarget validates a target name from a route or signal.
func ParseTarget(s string) (Target, error) {
	switch t := Target(strings.ToLower(s)); t {
	case TargetWhatsApp, TargetSupport, TargetLiveChat, TargetSubscribe, TargetTelegram, TargetEmail:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTarget, s)
}

// Build returns the final outbound URL for target in lang.
func (d *Dispatcher) Build(target Target, lang string, p Params) (string, error) {
	switch target {
	case TargetTelegram:
		return Telegram(d.cfg.TelegramHandle), nil
	case TargetEmail:
		return Mailto(d.cfg.SupportEmail), nil
	case TargetSubscribe:
		msg, err := d.message(lang, "subscribe", templates.DataMessageSubscribe(p))
		if err != nil {
			return "", err
		}
		return WhatsApp(d.cfg.WhatsAppPhone, msg), nil
	case TargetWhatsApp, TargetSupport, TargetLiveChat:
		msg, err := d.message(lang, string(target), templates.DataMessageSupport{})
		if err != nil {
			return "", err
		}
		return WhatsApp(d.cfg.WhatsAppPhone, msg), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTarget, target)
}

// Dispatch builds the URL and passes it to o without waiting for or
// checking the result. Only a failure to build the URL is reported.
func (d *Dispatcher) Dispatch(o Opener, target Target, lang string, p Params) (string, error) {
	u, err := d.Build(target, lang, p)
	if err != nil {
		return "", err
	}
	_ = o.Open(u)
	return u, nil
}

func (d *Dispatcher) message(lang, name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := d.tmpls.ExecuteTemplate(&buf, lang, name, data); err != nil {
		return "", fmt.Errorf("redirect: render %s message: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// WhatsApp returns a wa.me deep link with the message as the text parameter.
// Spaces are encoded as %20 rather than '+'.
func WhatsApp(phone, message string) string {
	phone = strings.TrimPrefix(strings.TrimSpace(phone), "+")
	u := "https://wa.me/" + url.PathEscape(phone)
	if message == "" {
		return u
	}
	return u + "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}

func Telegram(handle string) string {
	return "https://t.me/" + url.PathEscape(strings.TrimPrefix(handle, "@"))
}

func Mailto(address string) string {
	return (&url.URL{Scheme: "mailto", Opaque: address}).String()
}
