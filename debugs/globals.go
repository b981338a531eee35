package debugs

import (
	"context"

	"github.com/reusee/babel/ciphers"
	"github.com/reusee/babel/coords"
	"github.com/reusee/babel/searches"
	"go.starlark.net/starlark"
)

// Globals returns the engine operations as Starlark globals.
type Globals func(ctx context.Context) map[string]any

func (Module) Globals(
	engine *searches.Engine,
) Globals {
	return func(ctx context.Context) map[string]any {
		config := engine.Config()

		textOp := func(name string, op func(context.Context, string) (searches.Result, error)) *starlark.Builtin {
			return starlark.NewBuiltin(name, func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
				var text string
				if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &text); err != nil {
					return nil, err
				}
				res, err := op(ctx, text)
				if err != nil {
					return nil, err
				}
				return toStarlarkValue(res), nil
			})
		}

		return map[string]any{
			"config":      config.Options(),
			"page":        textOp("page", engine.Lookup),
			"by_address":  textOp("by_address", engine.ByAddress),
			"title":       textOp("title", engine.Title),
			"search":      textOp("search", engine.Search),
			"regex":       textOp("regex", engine.Regex),
			"scan":        textOp("scan", engine.Scan),
			"embed":       textOp("embed", engine.Embed),
			"embed_exact": textOp("embed_exact", engine.EmbedExact),
			"embed_title": textOp("embed_title", engine.EmbedTitle),

			"address": func(wall, shelf, volume, page int) string {
				return coords.Address(coords.Coordinates{
					Wall:   wall,
					Shelf:  shelf,
					Volume: volume,
					Page:   page,
				})
			},
			"classify": func(input string) string {
				return searches.Classify(input).String()
			},

			"decipher": starlark.NewBuiltin("decipher", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
				var text, address string
				if err := starlark.UnpackArgs(b.Name(), args, kwargs, "text", &text, "address", &address); err != nil {
					return nil, err
				}
				c, err := coords.Parse(address, config.Bounds())
				if err != nil {
					return nil, err
				}
				plain, err := ciphers.Decipher(text, c, config)
				if err != nil {
					return nil, err
				}
				return starlark.String(plain), nil
			}),
		}
	}
}
