// Package report renders footprint estimates as text tables, JSON or NDJSON.
package report

import (
	"fmt"

	"github.com/rshade/footprint/internal/footprint"
)

// Format is an output encoding.
type Format string

const (
	FormatTable  Format = "table"
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
)

// DefaultPrecision is the number of decimals used when Options.Precision
// is negative.
const DefaultPrecision = 2

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatJSON, FormatNDJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: output format %q (want table, json or ndjson)", footprint.ErrInvalidEnumeration, s)
	}
}

// Options controls rendering.
type Options struct {
	Format    Format
	Precision int
}

func (o Options) precision() int {
	if o.Precision < 0 {
		return DefaultPrecision
	}
	return o.Precision
}

// Report is one estimated profile with its classification and advice.
type Report struct {
	Name        string                  `json:"name,omitempty"`
	Source      string                  `json:"source,omitempty"`
	Result      footprint.ResultProfile `json:"result"`
	Tier        footprint.Tier          `json:"tier"`
	TierTitle   string                  `json:"tier_title"`
	TierMessage string                  `json:"tier_message"`
	Advisories  []footprint.Advisory    `json:"advisories"`
	Breakdown   footprint.Breakdown     `json:"breakdown,omitempty"`
	Tips        []string                `json:"tips,omitempty"`
	Facts       []footprint.Fact        `json:"facts,omitempty"`
	Usage       footprint.UsageProfile  `json:"usage"`
}

// Input names a usage profile to report on.
type Input struct {
	Name   string
	Source string
	Usage  footprint.UsageProfile
}

// Build estimates in.Usage and assembles the report. With details the
// per-activity breakdown, general tips and sector facts are included.
func Build(est *footprint.Estimator, in Input, details bool) Report {
	result := est.Estimate(in.Usage)
	tier := footprint.Classify(result)

	advisories := footprint.Advise(in.Usage)
	if advisories == nil {
		advisories = []footprint.Advisory{}
	}

	r := Report{
		Name:        in.Name,
		Source:      in.Source,
		Result:      result,
		Tier:        tier,
		TierTitle:   tier.Title(),
		TierMessage: tier.Message(),
		Advisories:  advisories,
		Usage:       in.Usage,
	}
	if details {
		r.Breakdown = est.Breakdown(in.Usage)
		r.Tips = footprint.Tips()
		r.Facts = footprint.Facts()
	}
	return r
}
