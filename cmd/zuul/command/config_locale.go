package command

import (
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"
	"github.com/pixil98/go-errors"
	"golang.org/x/text/language"
)

// LocaleConfig points at gettext catalogs laid out as
// <path>/<language>/default.po. Without a path the game speaks English.
type LocaleConfig struct {
	Path     string `json:"path"`
	Language string `json:"language"`
}

func (c *LocaleConfig) validate() error {
	if c.Path == "" {
		return nil
	}

	el := errors.NewErrorList()

	_, err := os.Stat(c.Path)
	if err != nil {
		el.Add(fmt.Errorf("locale: invalid path %q: %w", c.Path, err))
	}

	if c.Language == "" {
		el.Add(fmt.Errorf("locale: language is required when path is set"))
	} else if _, err := language.Parse(c.Language); err != nil {
		el.Add(fmt.Errorf("locale: parsing language %q: %w", c.Language, err))
	}

	return el.Err()
}

// apply loads the configured catalogs for every later gotext lookup.
func (c *LocaleConfig) apply() {
	if c.Path == "" {
		return
	}
	tag := language.MustParse(c.Language)
	gotext.Configure(c.Path, gotextLanguage(tag), "default")
}

// gotextLanguage renders a tag the way catalog directories are named (en_US).
func gotextLanguage(tag language.Tag) string {
	base, _ := tag.Base()
	region, conf := tag.Region()
	if conf == language.No {
		return base.String()
	}
	return base.String() + "_" + region.String()
}
