package download

import (
	"github.com/pkg/browser"
)

// Opener hands a URL to a new browsing context. It does not observe the transfer.
type Opener interface {
	Open(url string) error
}

type OpenerFunc func(url string) error

func (f OpenerFunc) Open(url string) error {
	return f(url)
}

// BrowserOpener opens URLs in the system's default browser.
type BrowserOpener struct{}

func NewBrowserOpener() *BrowserOpener {
	return &BrowserOpener{}
}

func (BrowserOpener) Open(url string) error {
	return browser.OpenURL(url)
}
