//go:build js && wasm

// Command wasm is the browser client of nightlight. It applies the stored theme when the
// page has loaded and toggles it on click. The preference goes to the cookie the server
// paints the page from, mirrored in local storage.
package main

import (
	"syscall/js"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/nightlight/app/theme"
	"github.com/umputun/nightlight/app/wasm/client"
)

func main() {
	log.Setup(log.Msec)
	bind(js.Global())
	select {} // handlers live as long as the page
}

// bind makes the client for the page, registers the toggle handlers and starts it.
func bind(global js.Value) *client.Client {
	doc := global.Get("document")
	form := doc.Call("getElementById", client.FormID)
	settings := client.SettingsFromDataset(dataset(form))

	var storage theme.Storage = documentCookie{doc: doc, path: settings.CookiePath}
	if local, err := newLocalStorage(global); err == nil {
		storage = theme.Mirror(storage, local)
	} else {
		log.Printf("[INFO] %v, using cookie only", err)
	}

	ctrl := theme.New(document{v: doc}, storage, settings.Theme, theme.WithLogger(log.Default()))
	c := client.New(ctrl)

	toggle := js.FuncOf(func(_ js.Value, args []js.Value) any {
		c.Toggle(asEvent(args))
		return nil
	})
	global.Set("toggleDarkMode", toggle)
	if present(form) {
		form.Call("addEventListener", "submit", toggle)
	}

	c.Start(doc.Get("readyState").String(), func(fn func()) {
		onLoad := js.FuncOf(func(js.Value, []js.Value) any {
			fn()
			return nil
		})
		global.Call("addEventListener", "load", onLoad, map[string]any{"once": true})
	})
	return c
}
