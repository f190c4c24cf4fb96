// Package input models raw device input, the semantic events derived from
// it, and which widget currently captures the mouse or keyboard.
//
// Raw Input values arrive from a windowing layer in window coordinates
// with the origin at the window centre and y pointing up. The Ui turns
// them into targeted Events, queues them in a Global for one frame and
// hands each widget a Widget view that filters the queue down to the
// events relevant to it, translated into widget-relative coordinates.
package input
