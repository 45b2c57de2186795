package redirect

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premiumiptv/landing/web/messages"
	"github.com/premiumiptv/landing/web/templates"
)

func newDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	tmpls, err := templates.LoadTemplates(messages.FS, "", ".txt.tmpl", "en")
	require.NoError(t, err)
	return NewDispatcher(Config{
		WhatsAppPhone:  "+212723279328",
		TelegramHandle: "@premiumiptvsupport",
		SupportEmail:   "support@example.com",
	}, tmpls)
}

func TestWhatsAppEncodesMessage(t *testing.T) {
	got := WhatsApp("212723279328", "Hi! 50% off & more?")
	require.Equal(t, "https://wa.me/212723279328?text=Hi%21%2050%25%20off%20%26%20more%3F", got)

	u, err := url.Parse(got)
	require.NoError(t, err)
	require.Equal(t, "Hi! 50% off & more?", u.Query().Get("text"))

	require.Equal(t, "https://wa.me/212723279328", WhatsApp("212723279328", ""))
}

func TestBuildSubscribe(t *testing.T) {
	d := newDispatcher(t)

	got, err := d.Build(TargetSubscribe, "en", Params{Plan: "PREMIUM", Price: "25", Period: "/3 months"})
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/212723279328", u.Path)
	assert.Equal(t, "Hi! I want to subscribe to the PREMIUM plan for $25/3 months", u.Query().Get("text"))
}

func TestBuildFallsBackToDefaultLocale(t *testing.T) {
	d := newDispatcher(t)

	got, err := d.Build(TargetLiveChat, "sq", Params{})
	require.NoError(t, err)
	u, err := url.Parse(got)
	require.NoError(t, err)
	require.Equal(t, "Hi! I need live chat support for IPTV service", u.Query().Get("text"))
}

func TestBuildStaticTargets(t *testing.T) {
	d := newDispatcher(t)

	got, err := d.Build(TargetTelegram, "en", Params{})
	require.NoError(t, err)
	require.Equal(t, "https://t.me/premiumiptvsupport", got)

	got, err = d.Build(TargetEmail, "fr", Params{})
	require.NoError(t, err)
	require.Equal(t, "mailto:support@example.com", got)

	_, err = d.Build(Target("fax"), "en", Params{})
	require.ErrorIs(t, err, ErrUnknownTarget)
}

func TestDispatchIgnoresOpenerFailure(t *testing.T) {
	d := newDispatcher(t)

	var opened []string
	blocked := OpenerFunc(func(u string) error {
		opened = append(opened, u)
		return errors.New("pop-up blocked")
	})

	u, err := d.Dispatch(blocked, TargetSupport, "en", Params{})
	require.NoError(t, err)
	require.Equal(t, []string{u}, opened)
}

func TestParseTarget(t *testing.T) {
	got, err := ParseTarget("WhatsApp")
	require.NoError(t, err)
	require.Equal(t, TargetWhatsApp, got)

	_, err = ParseTarget("../etc")
	require.ErrorIs(t, err, ErrUnknownTarget)
}
