package commands

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/leonelquinteros/gotext"
	"github.com/pixil98/go-zuul/internal/game"
)

var templateFuncs = sprig.TxtFuncMap()

const roomTemplate = `You are {{ .Description }}.
Exits:{{ range .Exits }} {{ . }}{{ end }}
{{- if .Items }}
Items:
{{- range .Items }}
  {{ . }}
{{- end }}
{{- end }}`

const helpTemplate = `You are lost. You are alone. You wander
around at the university.

Your command words are:
{{ join " " .Verbs }}`

type roomData struct {
	Description string
	Exits       []string
	Items       []string
}

// LongDescription renders a room the way the player sees it on entry: the
// description, its exits, and every item lying in it.
func LongDescription(room *game.Room) (string, error) {
	data := roomData{
		Description: room.Description(),
		Exits:       room.ExitNames(),
	}
	for _, item := range room.Items() {
		data.Items = append(data.Items, item.Describe())
	}

	return ExpandTemplate(gotext.Get(roomTemplate), data)
}

// HoldingStatus reports what is in the player's hand.
func HoldingStatus(held game.Holdable) string {
	if held == nil {
		return gotext.Get("Player is not holding anything")
	}
	return gotext.Get("Player is holding %s", held.Name())
}

// printRoom prints the current room followed by a blank line and the
// holding status.
func printRoom(cmdCtx *CommandContext) error {
	desc, err := LongDescription(cmdCtx.World.Current())
	if err != nil {
		return err
	}

	cmdCtx.Print(desc)
	cmdCtx.Print("")
	cmdCtx.Print(HoldingStatus(cmdCtx.World.Held()))
	return nil
}

// ExpandTemplate renders tmplStr with sprig functions available.
func ExpandTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}
