// SPDX-License-Identifier: EPL-2.0

// Package wavsnip plays, trims and exports a region of a PCM wav file.
//
// An Editor ties together the pieces kept in the subpackages:
//   - formats/wav reads the file and writes exported regions
//   - region holds the selected frame range and its PCM data
//   - command parses boundary nudges such as "l-0.5" or "r1"
//   - playback drives the output device through Stopped/Playing/Paused
//
// # Quick Start
//
//	newSpeaker := func(info audio.Info) (playback.Device, error) {
//	    return playback.NewSpeaker(info, logger)
//	}
//	ed, err := wavsnip.Open("take.wav", newSpeaker, wavsnip.Options{Post: post})
//
//	ed.Play()                 // play the region from its start
//	ed.Apply("l0.5")          // move the start half a second later
//	ed.Apply("r-1")           // move the end one second earlier
//	ed.Random()               // same length, random place
//	path, err := ed.Export()  // take[4000-12000].wav
//
// Changing or exporting the region stops playback first.
//
// # Events
//
// The Editor is not safe for concurrent use. Device idle events arrive on
// the device's goroutine and must be funneled back to the goroutine that
// owns the Editor with Options.Post, then passed to Editor.Handle. Progress
// ticks are delivered the same way as playback.Notify events:
//
//	ed.Subscribe(func(p playback.Progress) {
//	    fmt.Println(wavsnip.FormatElapsed(p), p.Fraction)
//	})
//	ed.Handle(playback.Event{Kind: playback.Notify})
//
// # Errors
//
// Parse errors (command.ErrInvalidCommand) and placement errors
// (region.ErrCannotPlace) leave the region and playback untouched. Region
// bounds are clamped, never rejected.
package wavsnip
