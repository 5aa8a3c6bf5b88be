// Command actionmenu-demo opens a message-actions menu like the one a
// notification would show: a Reply submenu with canned responses, plus
// Like and Dismiss leaf actions. Sending a reply freezes the menu while
// a fake network call runs, then closes into a confirmation screen.
package main

import (
	"embed"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/atomic"
	"golang.org/x/text/language"

	"github.com/cobblekit/actionmenu/pkg/actionmenu"
	"github.com/cobblekit/actionmenu/pkg/actionmenu/constants"
	"github.com/cobblekit/actionmenu/pkg/actionmenu/platform/sdlhost"
)

//go:embed locales/*.toml
var localeFS embed.FS

func main() {
	host, err := sdlhost.Init(sdlhost.Options{
		WindowTitle:      "Action Menu Demo",
		ThemePath:        os.Getenv("ACTIONMENU_THEME"),
		ButtonDevicePath: os.Getenv("ACTIONMENU_BUTTON_DEVICE"),
		LogPath:          "actionmenu-demo.log",
	})
	if err != nil {
		os.Exit(1)
	}
	defer host.Close()

	log := actionmenu.GetLogger()
	loc := newLocalizer()

	sendDone := atomic.NewBool(false)

	reply := actionmenu.NewLevel(3)
	reply.SetDisplayMode(actionmenu.DisplayModeThin)

	root := actionmenu.NewLevel(3)
	root.AddChild(reply, loc.msg("Reply"))
	root.AddAction(loc.msg("Like"), func(menu *actionmenu.Menu, item *actionmenu.Item, context any) {
		log.Info("message liked")
		menu.SetResultScreen(newConfirmWindow(host, loc.msg("Liked")))
	}, nil)
	root.AddAction(loc.msg("Dismiss"), func(menu *actionmenu.Menu, item *actionmenu.Item, context any) {
		log.Info("message dismissed")
	}, nil)

	sendReply := func(menu *actionmenu.Menu, item *actionmenu.Item, context any) {
		text := item.ActionData().(string)
		log.Info("sending reply", "text", text)
		menu.SetResultScreen(newConfirmWindow(host, loc.msg("Sent")))
		menu.Freeze()
		go func() {
			time.Sleep(1200 * time.Millisecond)
			sendDone.Store(true)
		}()
	}
	reply.AddAction(loc.msg("ReplyYes"), sendReply, "yes")
	reply.AddAction(loc.msg("ReplyNo"), sendReply, "no")
	reply.AddAction(loc.msg("ReplyOnMyWay"), sendReply, "omw")

	theme := host.Theme()
	menu := actionmenu.Open(actionmenu.Config{
		Root: root,
		Colors: actionmenu.Colors{
			Background: sdlhost.ThemeColor(theme.CrumbBackground),
			Foreground: sdlhost.ThemeColor(theme.CrumbForeground),
		},
		DidClose: func(menu *actionmenu.Menu, performed *actionmenu.Item, context any) {
			if performed != nil {
				log.Info("menu closed", "performed", performed.Label())
			} else {
				log.Info("menu closed without action")
			}
			actionmenu.DestroyHierarchy(root, nil, nil)
		},
	})
	if menu == nil {
		log.Error("failed to open menu")
		os.Exit(1)
	}

	// Completions from the fake send land back on the loop goroutine.
	host.FrameFunc = func() {
		if sendDone.Swap(false) {
			menu.Unfreeze()
			menu.Close(true)
		}
	}

	if err := host.Run(); err != nil {
		log.Error("event loop failed", "error", err)
	}
}

type localizer struct {
	inner *i18n.Localizer
}

func newLocalizer() localizer {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.LoadMessageFileFS(localeFS, "locales/active.en.toml")
	bundle.LoadMessageFileFS(localeFS, "locales/active.es.toml")
	return localizer{inner: i18n.NewLocalizer(bundle, os.Getenv("LANG"), "en")}
}

func (l localizer) msg(id string) string {
	s, err := l.inner.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return s
}

// confirmWindow is the follow-up screen presented after the menu closes.
// Any button dismisses it, which empties the stack and ends the demo.
type confirmWindow struct {
	host  *sdlhost.Host
	text  string
	frame actionmenu.Rect
}

func newConfirmWindow(host *sdlhost.Host, text string) *confirmWindow {
	return &confirmWindow{host: host, text: text}
}

func (w *confirmWindow) Frame() actionmenu.Rect     { return w.frame }
func (w *confirmWindow) SetFrame(r actionmenu.Rect) { w.frame = r }
func (w *confirmWindow) Load()                      {}
func (w *confirmWindow) Disappear()                 {}
func (w *confirmWindow) Unload()                    {}

func (w *confirmWindow) HandleButton(b constants.VirtualButton) {
	w.host.Dismiss(w, true)
}

func (w *confirmWindow) Render(c *sdlhost.Canvas) {
	theme := w.host.Theme()
	c.FillRect(w.frame, sdlhost.ThemeColor(theme.BackgroundColor))
	bounds := w.frame
	bounds.X += 12
	bounds.W -= 24
	bounds.Y += w.frame.H / 3
	c.DrawText(w.text, bounds, sdlhost.ThemeColor(theme.TextColor))
}
