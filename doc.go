// Package cyclecast predicts menstrual cycles from a history of recorded
// cycle start and end dates.
//
// cyclecast is a pure computation engine: it performs no I/O, keeps no state
// between calls, and never persists its output. Callers hand it an in-memory
// snapshot of cycle records and receive a CyclePrediction value carrying the
// predicted next period start, cycle and period lengths, estimated ovulation
// date, fertile window, a three-tier confidence label, and an irregularity
// flag. Every operation is a total function of its arguments; degenerate
// input (empty history, a single record) yields documented defaults rather
// than an error.
//
// Basic usage:
//
//	p := cyclecast.NewPredictor(cyclecast.Config{})
//
//	records := []cyclecast.CycleRecord{
//	    {Start: jan1, End: jan6, Confirmed: true},
//	    {Start: jan29, End: feb3, Confirmed: true},
//	}
//	prediction := p.PredictNextPeriod(records)
//	phase := p.CurrentPhase(records[len(records)-1].Start, prediction)
//
// All date arithmetic goes through the Calendar interface, so month and DST
// boundaries are handled in one substitutable place.
package cyclecast
