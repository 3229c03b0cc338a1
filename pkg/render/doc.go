// Package render serializes committed render trees to HTML.
//
// The renderer handles the host prop conventions the adapter produces:
//
//   - className is written as class, htmlFor as for
//   - style mappings are written as sorted CSS declarations
//   - event handlers, refs and reserved adapter props are skipped
//   - void and boolean attributes follow HTML5
//
// Component nodes must already be expanded by a host; the renderer reports an
// error when it meets one.
//
//	renderer := render.NewRenderer(render.RendererConfig{Pretty: true})
//	html, err := renderer.RenderToString(root.Tree())
//
// Text and attribute values are always escaped.
package render
