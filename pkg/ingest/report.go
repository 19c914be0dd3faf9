package ingest

import (
	"time"

	"github.com/karnadigital/atlas/pkg/catalogs"
	"github.com/karnadigital/atlas/pkg/reconcile"
	"github.com/karnadigital/atlas/pkg/sources"
)

// Status is how a source fared in a run.
type Status string

// Source statuses.
const (
	StatusOK        Status = "ok"
	StatusMissing   Status = "missing"
	StatusMalformed Status = "malformed"
	StatusFailed    Status = "failed"
	StatusDisabled  Status = "disabled"
)

// SourceReport describes one declared source.
type SourceReport struct {
	ID       sources.ID
	Path     string
	Policy   reconcile.Policy
	Status   Status
	Stats    reconcile.Stats
	Images   int
	Err      error
	Duration time.Duration
}

// Report summarizes a run.
type Report struct {
	Sources    []SourceReport
	Totals     reconcile.Stats
	Objects    int
	Images     int
	Categories map[catalogs.Category]int
}

func (r *Report) add(rep SourceReport) {
	r.Sources = append(r.Sources, rep)
}

func (r *Report) finish(acc *Accumulator, snapshot *catalogs.Snapshot) {
	r.Totals = acc.Stats()
	r.Objects = len(snapshot.Objects)
	r.Images = acc.Gallery().Total()
	r.Categories = snapshot.Categories.Counts()
}

// Source returns the report for id.
func (r *Report) Source(id sources.ID) (SourceReport, bool) {
	for _, rep := range r.Sources {
		if rep.ID == id {
			return rep, true
		}
	}
	return SourceReport{}, false
}

// Problems returns the sources that were enabled but not fully ingested.
func (r *Report) Problems() []SourceReport {
	var out []SourceReport
	for _, rep := range r.Sources {
		if rep.Status != StatusOK && rep.Status != StatusDisabled {
			out = append(out, rep)
		}
	}
	return out
}
