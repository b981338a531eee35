// Package coords parses, formats and validates page addresses.
//
// A page lives at (wall, shelf, volume, page). The canonical text form is
// "wall-shelf-volume-page"; spaces are accepted as separators too. An address
// may carry a leading 40 character token, "token-wall-shelf-volume-page",
// derived from the coordinates for display. The token never affects generation.
//
// Page 0 is reserved: it addresses the title slot of a volume rather than a page.
package coords
