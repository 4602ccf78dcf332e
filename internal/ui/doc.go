// Package ui holds the shared terminal styling used by ptop: the ANSI color
// palette, status symbols, and a non-interactive wrapper around the Bubbles
// table component.
//
// Tables are rendered unfocused, so they never react to key presses. Scrolling
// is owned by the caller, which passes in only the rows that should be
// visible:
//
//	t := ui.NewTable(columns, rows)
//	fmt.Println(t.View())
package ui
