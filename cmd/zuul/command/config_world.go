package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-zuul/internal/game"
	"github.com/pixil98/go-zuul/internal/storage"
)

// WorldConfig selects the layout every session plays. Leaving it empty plays
// the built-in campus.
type WorldConfig struct {
	Rooms AssetConfig[*game.RoomSpec] `json:"rooms"`
	Items AssetConfig[*game.ItemSpec] `json:"items"`
	Start string                      `json:"start"`
}

func (c *WorldConfig) isBuiltIn() bool {
	return c.Rooms.Path == "" && c.Items.Path == "" && c.Start == ""
}

func (c *WorldConfig) validate() error {
	if c.isBuiltIn() {
		return nil
	}

	el := errors.NewErrorList()
	el.Add(c.Rooms.Validate("world.rooms"))
	el.Add(c.Items.Validate("world.items"))
	if c.Start == "" {
		el.Add(fmt.Errorf("world.start is required"))
	}
	return el.Err()
}

// BuildLayout loads the configured layout and checks that it can be built.
func (c *WorldConfig) BuildLayout() (*game.Layout, error) {
	if c.isBuiltIn() {
		return game.Campus(), nil
	}

	rooms, err := c.Rooms.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating room store: %w", err)
	}
	items, err := c.Items.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}

	layout := &game.Layout{
		Rooms: rooms.GetAll(),
		Items: items.GetAll(),
		Start: c.Start,
	}

	err = layout.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating layout: %w", err)
	}

	return layout, nil
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
