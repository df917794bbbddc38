// SPDX-License-Identifier: EPL-2.0

// Package playback drives an audio output device through the
// Stopped/Playing/Paused state machine.
//
// # State Machine
//
//	Stopped --Play--> Playing --Pause--> Paused --Resume--> Playing
//	Playing --Idle, loop off--> Stopped
//	Playing --Idle, loop on--> Playing (restart from clip start)
//	any     --Stop--> Stopped
//	any     --Play--> Playing (restart from clip start)
//
// Play always restarts: the device is stopped and the clip buffer rewound
// before the next Start.
//
// # Events
//
// Devices report back through a closed set of events handled by
// Driver.Handle: Idle when the buffer is exhausted and Notify for the
// periodic progress tick. Idle is raised by the device, usually on its own
// goroutine, and forwarded with Options.Post so that the event loop owning
// the Driver handles it. Notify ticks come from the event loop's timer.
//
//	drv := playback.NewDriver(dev, playback.Options{Post: func(ev playback.Event) { events <- ev }})
//	drv.Subscribe(func(p playback.Progress) { fmt.Printf("%.3f\n", p.Elapsed.Seconds()) })
//	drv.Load(pcm, regionStart, fileDuration)
//	drv.Play()
//
// # Devices
//
// Speaker is the system output, built on github.com/gopxl/beep/v2.
package playback
