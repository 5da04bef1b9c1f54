/*
Package behavior coordinates a bottom navigation bar with the floating
views that share the bottom of the screen with it.

A Behavior watches nested scroll input and hides the navigation bar when
content scrolls up and shows it again when content scrolls down. Small
jitters are absorbed by a slop threshold and fast flings bypass it. While
the bar animates, every dependent overlay (an action button, a banner, or
anything else the host registers) has its bottom margin recomputed so it
stays glued to the bar instead of overlapping it.

The package does no layout or drawing itself. The host supplies an Anchor
(the bar) and Overlays, reports scroll events, and calls Tick once per
frame while Animating reports true. All methods must be called from the
goroutine that owns the UI.
*/
package behavior
