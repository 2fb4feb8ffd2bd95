// Package locale holds the user-facing strings shown by the renderers and the
// command line.
package locale

import (
	_ "embed"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed en.po
var english []byte

var (
	once sync.Once
	po   *gotext.Po
)

func catalog() *gotext.Po {
	once.Do(func() {
		po = gotext.NewPo()
		po.Parse(english)
	})
	return po
}

// Get returns the translation of key, formatted with vars. Keys missing from
// the catalog are returned untranslated.
func Get(key string, vars ...any) string {
	return catalog().Get(key, vars...)
}
