package keygroup

import (
	"embed"
	"fmt"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/keygroup/pkg/keygroup/constants"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

// Hint is a footer help entry: the buttons and what they do.
type Hint struct {
	Buttons    []constants.VirtualButton
	ButtonText string // Localized button names, e.g. "Up/Down"
	Label      string // Localized action, e.g. "Select"
}

var buttonMessageIDs = map[constants.VirtualButton]string{
	constants.VirtualButtonUp:    "ButtonUp",
	constants.VirtualButtonDown:  "ButtonDown",
	constants.VirtualButtonLeft:  "ButtonLeft",
	constants.VirtualButtonRight: "ButtonRight",
}

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			bundleErr = err
			return
		}

		for _, entry := range entries {
			name := path.Join("locales", entry.Name())
			data, err := localeFS.ReadFile(name)
			if err != nil {
				bundleErr = err
				return
			}
			if _, err := b.ParseMessageFileBytes(data, name); err != nil {
				bundleErr = fmt.Errorf("parse %s: %w", name, err)
				return
			}
		}

		bundle = b
	})
	return bundle, bundleErr
}

// NewLocalizer returns a localizer for the given language preferences
// (BCP 47 tags or Accept-Language values). English is the fallback.
func NewLocalizer(langs ...string) (*i18n.Localizer, error) {
	b, err := loadBundle()
	if err != nil {
		return nil, err
	}
	return i18n.NewLocalizer(b, langs...), nil
}

// Hints describes the group's navigation for a footer. The first hint
// covers the buttons that move the selection; the second, present only
// once the group has a child, covers the buttons handed to that child.
// A nil localizer uses English.
func Hints(g *Group, loc *i18n.Localizer) ([]Hint, error) {
	if loc == nil {
		var err error
		if loc, err = NewLocalizer(language.English.String()); err != nil {
			return nil, err
		}
	}

	prev, next := g.GroupButtons()
	selectHint, err := localizeHint(loc, "HintSelect", prev, next)
	if err != nil {
		return nil, err
	}

	hints := []Hint{selectHint}

	if g.Len() == 0 {
		return hints, nil
	}

	up, down := g.ChildButtons()
	changeHint, err := localizeHint(loc, "HintChange", up, down)
	if err != nil {
		return nil, err
	}

	return append(hints, changeHint), nil
}

func localizeHint(loc *i18n.Localizer, messageID string, first, second constants.VirtualButton) (Hint, error) {
	firstName, err := loc.Localize(&i18n.LocalizeConfig{MessageID: buttonMessageIDs[first]})
	if err != nil {
		return Hint{}, err
	}
	secondName, err := loc.Localize(&i18n.LocalizeConfig{MessageID: buttonMessageIDs[second]})
	if err != nil {
		return Hint{}, err
	}

	buttonText, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    "ButtonPair",
		TemplateData: map[string]string{"First": firstName, "Second": secondName},
	})
	if err != nil {
		return Hint{}, err
	}

	label, err := loc.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return Hint{}, err
	}

	return Hint{
		Buttons:    []constants.VirtualButton{first, second},
		ButtonText: buttonText,
		Label:      label,
	}, nil
}
