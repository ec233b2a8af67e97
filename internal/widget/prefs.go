package widget

import (
	"errors"
	"os"
	"sync"

	"github.com/spf13/viper"
)

const prefHidden = "hidden"

// Prefs is the widget's persisted settings, independent of the main
// session. Writes go straight to disk so the state survives restarts.
type Prefs struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

func NewPrefs(path string) (*Prefs, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault(prefHidden, false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
		// no file yet: defaults apply
	}

	return &Prefs{v: v, path: path}, nil
}

// Hidden reports whether the total is masked. Defaults to false.
func (p *Prefs) Hidden() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.v.GetBool(prefHidden)
}

func (p *Prefs) SetHidden(hidden bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.v.Set(prefHidden, hidden)
	return p.v.WriteConfigAs(p.path)
}

// Toggle flips the hidden flag and persists it, returning the new value.
func (p *Prefs) Toggle() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	hidden := !p.v.GetBool(prefHidden)
	p.v.Set(prefHidden, hidden)
	return hidden, p.v.WriteConfigAs(p.path)
}
