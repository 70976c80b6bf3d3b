// Package analysis summarises series sampled from an indexed view.
//
//   - [Spectrum]: power spectrum of an evenly spaced series
//   - [DominantPeriod]: index distance of the strongest oscillation
//   - [Summarize]: mean, minimum and maximum of a series
//
// A series sampled at one sheet point over time is the response of that
// point; its dominant period shows how the activity moving across the
// sheet revisits it:
//
//	series, _ := view.Sample(p)
//	period, _ := analysis.DominantPeriod(series, dt)
package analysis
