//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/umputun/nightlight/app/theme"
	"github.com/umputun/nightlight/app/wasm/client"
)

// element wraps a DOM element and works on its classList.
type element struct {
	v js.Value
}

func (e element) AddClass(name string) { e.v.Get("classList").Call("add", name) }
func (e element) RemoveClass(name string) { e.v.Get("classList").Call("remove", name) }
func (e element) ToggleClass(name string) bool {
	return e.v.Get("classList").Call("toggle", name).Bool()
}
func (e element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

// document is theme.Document over the browser document.
type document struct {
	v js.Value
}

func (d document) Body() (theme.Element, bool) {
	return wrap(d.v.Get("body"))
}

func (d document) ElementByID(id string) (theme.Element, bool) {
	return wrap(d.v.Call("getElementById", id))
}

func wrap(v js.Value) (theme.Element, bool) {
	if !present(v) {
		return nil, false
	}
	return element{v: v}, true
}

func present(v js.Value) bool { return !v.IsNull() && !v.IsUndefined() }

// localStorage is theme.Storage over window.localStorage. Browsers throw on access when
// storage is disabled or full, those exceptions come back as errors.
type localStorage struct {
	v js.Value
}

func newLocalStorage(global js.Value) (st localStorage, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("local storage unavailable: %v", r)
		}
	}()
	v := global.Get("localStorage")
	if !present(v) {
		return localStorage{}, fmt.Errorf("local storage unavailable")
	}
	return localStorage{v: v}, nil
}

func (s localStorage) GetItem(key string) (val string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			val, ok = "", false
		}
	}()
	v := s.v.Call("getItem", key)
	if !present(v) {
		return "", false
	}
	return v.String(), true
}

func (s localStorage) SetItem(key, value string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("set %s: %v", key, r)
		}
	}()
	s.v.Call("setItem", key, value)
	return nil
}

// documentCookie is theme.Storage over document.cookie, the cookie the server paints from.
type documentCookie struct {
	doc  js.Value
	path string
}

func (c documentCookie) GetItem(key string) (string, bool) {
	return theme.CookieValue(c.doc.Get("cookie").String(), key)
}

func (c documentCookie) SetItem(key, value string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("set cookie %s: %v", key, r)
		}
	}()
	cookie := theme.NewCookie(key, value, c.path).String()
	if cookie == "" {
		return fmt.Errorf("invalid cookie %s=%s", key, value)
	}
	c.doc.Set("cookie", cookie)
	return nil
}

// event is client.Event over a DOM event.
type event struct {
	v js.Value
}

func (e event) PreventDefault() { e.v.Call("preventDefault") }

// asEvent returns the first callback argument as an event if it can be canceled.
func asEvent(args []js.Value) client.Event {
	if len(args) == 0 || args[0].Type() != js.TypeObject || args[0].Get("preventDefault").Type() != js.TypeFunction {
		return nil
	}
	return event{v: args[0]}
}

// dataset returns a lookup of data attributes of the element, "" for absent ones.
func dataset(el js.Value) func(name string) string {
	if !present(el) {
		return nil
	}
	ds := el.Get("dataset")
	return func(name string) string {
		v := ds.Get(name)
		if !present(v) {
			return ""
		}
		return v.String()
	}
}
